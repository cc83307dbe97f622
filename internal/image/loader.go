// Package image decodes mask images and encodes generated textures.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/texgen/internal/pixbuf"
)

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: PNG, JPEG, GIF, WebP, BMP, TIFF.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if err := ValidateImagePath(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// LoadBuffer loads an image through l and converts it to a pixel buffer.
func LoadBuffer(l Loader, path string) (*pixbuf.Buffer, error) {
	img, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	buf, err := pixbuf.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", path, err)
	}
	return buf, nil
}

// ValidateImagePath checks that path names an existing regular file with a
// supported image extension.
func ValidateImagePath(path string) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", path)
		}
		return fmt.Errorf("failed to stat image file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if !isImageFile(path) {
		return fmt.Errorf("unsupported image extension %q (supported: %s)",
			filepath.Ext(path), strings.Join(SupportedImageExtensions(), ", "))
	}

	return nil
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// Info describes an image file without decoding its pixels.
type Info struct {
	Width  int
	Height int
	Format string
}

// Inspect returns the dimensions and format of an image file.
func Inspect(path string) (Info, error) {
	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return Info{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	config, format, err := image.DecodeConfig(file)
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode image config: %w", err)
	}

	return Info{Width: config.Width, Height: config.Height, Format: format}, nil
}
