package compression

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/texgen/internal/security"
)

// maxBundleBytes caps how much decompressed data List will read.
const maxBundleBytes = 1 << 30

// Entry describes one file inside a bundle.
type Entry struct {
	Name string
	Size int64
}

// List reads a bundle and returns its regular-file entries in archive order.
func List(r io.Reader, kind Kind) ([]Entry, error) {
	var src io.Reader
	switch kind {
	case KindTarXz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		src = xzr
	case KindTarGz:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		src = gzr
	case KindTar:
		src = r
	default:
		return nil, fmt.Errorf("unsupported bundle kind: %s", kind)
	}

	tr := tar.NewReader(security.NewLimitedReader(src, maxBundleBytes))
	var entries []Entry
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		if err := security.ValidateFilePath(header.Name, "."); err != nil {
			return nil, fmt.Errorf("unsafe bundle entry %q: %w", header.Name, err)
		}
		entries = append(entries, Entry{Name: header.Name, Size: header.Size})
	}
	return entries, nil
}

// ListFile lists the bundle at path.
func ListFile(path string) ([]Entry, error) {
	kind, err := DetectKind(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path) // #nosec G304 - Bundle path controlled by the user
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle: %w", err)
	}
	defer f.Close()
	return List(f, kind)
}
