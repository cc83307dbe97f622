package image

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/jmylchreest/texgen/internal/pixbuf"
)

// Format is an output encoding.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatPNG, FormatBMP, FormatTIFF}
}

// ParseFormat parses a format name case-insensitively. "tif" is accepted
// for TIFF and the empty string selects PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "", "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (supported: %s)", s, formatList())
	}
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// EncodeError reports a failure to encode or persist a texture. The
// buffer itself was complete; regenerating and retrying is always safe.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to encode image: %v", e.Err)
	}
	return fmt.Sprintf("failed to write image %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// IsEncodeError reports whether err is or wraps an *EncodeError.
func IsEncodeError(err error) bool {
	var ee *EncodeError
	return errors.As(err, &ee)
}

// Encode writes buf to w in the given format.
func Encode(w io.Writer, buf *pixbuf.Buffer, format Format) error {
	if buf == nil {
		return &EncodeError{Err: errors.New("nil buffer")}
	}

	img := buf.Image()
	var err error
	switch format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

// EncodeBytes encodes buf in memory.
func EncodeBytes(buf *pixbuf.Buffer, format Format) ([]byte, error) {
	var b bytes.Buffer
	if err := Encode(&b, buf, format); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Save encodes buf and writes it to path with WriteAtomic. It returns the
// number of bytes written.
func Save(buf *pixbuf.Buffer, path string, format Format) (int64, error) {
	data, err := EncodeBytes(buf, format)
	if err != nil {
		var ee *EncodeError
		if errors.As(err, &ee) {
			ee.Path = path
		}
		return 0, err
	}
	if err := WriteAtomic(path, data); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// WriteAtomic writes encoded image data to path, creating parent
// directories. The data goes to a temporary file that is renamed over
// path, so a failed write never leaves a truncated image behind.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Output directory is user-facing
		return &EncodeError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmpName)
		return &EncodeError{Path: path, Err: errors.Join(writeErr, closeErr)}
	}

	if err := os.Chmod(tmpName, 0o644); err != nil { // #nosec G302 - Textures are world-readable assets
		_ = os.Remove(tmpName)
		return &EncodeError{Path: path, Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &EncodeError{Path: path, Err: err}
	}

	return nil
}
