// Package compression writes and reads the tar archives that bundle a
// generation run's textures.
package compression

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/texgen/internal/security"
)

// Kind is an archive compression scheme.
type Kind string

// Supported bundle kinds.
const (
	KindTarXz Kind = "tar.xz"
	KindTarGz Kind = "tar.gz"
	KindTar   Kind = "tar"
)

// DetectKind infers the archive kind from a file name.
func DetectKind(name string) (Kind, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".tar.xz"), strings.HasSuffix(lower, ".txz"):
		return KindTarXz, nil
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return KindTarGz, nil
	case strings.HasSuffix(lower, ".tar"):
		return KindTar, nil
	default:
		return "", fmt.Errorf("unsupported bundle extension: %s (supported: .tar.xz, .tar.gz, .tar)", filepath.Base(name))
	}
}

// File is one entry to add to a bundle.
type File struct {
	// Name is the slash-separated path inside the archive.
	Name string
	Data []byte
}

// Write writes files as a tar archive compressed according to kind.
// Entries keep the order given and carry a fixed modification time so the
// same inputs always produce the same archive.
func Write(w io.Writer, kind Kind, files []File, modTime time.Time) error {
	var (
		compressor io.WriteCloser
		err        error
	)
	switch kind {
	case KindTarXz:
		compressor, err = xz.NewWriter(w)
		if err != nil {
			return fmt.Errorf("failed to create xz writer: %w", err)
		}
	case KindTarGz:
		compressor = gzip.NewWriter(w)
	case KindTar:
		compressor = nopCloser{w}
	default:
		return fmt.Errorf("unsupported bundle kind: %s", kind)
	}

	tw := tar.NewWriter(compressor)
	for _, f := range files {
		if err := security.ValidateFilePath(f.Name, "."); err != nil {
			return fmt.Errorf("invalid bundle entry %q: %w", f.Name, err)
		}
		hdr := &tar.Header{
			Name:    f.Name,
			Mode:    0o644,
			Size:    int64(len(f.Data)),
			ModTime: modTime,
			Format:  tar.FormatPAX,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("failed to write tar header for %s: %w", f.Name, err)
		}
		if _, err := tw.Write(f.Data); err != nil {
			return fmt.Errorf("failed to write %s to tar: %w", f.Name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finalise tar archive: %w", err)
	}
	if err := compressor.Close(); err != nil {
		return fmt.Errorf("failed to finalise %s stream: %w", kind, err)
	}
	return nil
}

// WriteFile writes a bundle to path, choosing the kind from its extension.
func WriteFile(path string, files []File, modTime time.Time) error {
	kind, err := DetectKind(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { // #nosec G301 - Output directory is user-facing
		return fmt.Errorf("failed to create bundle directory: %w", err)
	}

	out, err := os.Create(path) // #nosec G304 - Bundle path controlled by the user
	if err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}

	writeErr := Write(out, kind, files, modTime)
	closeErr := out.Close()
	if writeErr != nil {
		_ = os.Remove(path)
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close bundle: %w", closeErr)
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
