// Package security provides path and size validation for texgen's file output.
package security

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ValidateFilePath validates a relative file path (a texture's output name
// or an archive entry) to prevent directory traversal.
func ValidateFilePath(filePath, baseDir string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}

	// Check for dangerous patterns
	for _, part := range strings.Split(filepath.ToSlash(filePath), "/") {
		if part == ".." {
			return fmt.Errorf("file path contains directory traversal (..) - not allowed")
		}
	}

	if filepath.IsAbs(filePath) || strings.HasPrefix(filePath, "/") {
		return fmt.Errorf("absolute paths are not allowed")
	}

	// Ensure the final path would be within baseDir
	finalPath := filepath.Join(baseDir, filePath)
	cleanFinal := filepath.Clean(finalPath)
	cleanBase := filepath.Clean(baseDir)

	if cleanBase == "." {
		if cleanFinal == "." {
			return fmt.Errorf("file path resolves to the base directory")
		}
		return nil
	}

	if !strings.HasPrefix(cleanFinal, cleanBase+string(filepath.Separator)) {
		return fmt.Errorf("file path would escape base directory")
	}

	return nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// This prevents decompression bomb attacks when reading archives.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, fmt.Errorf("decompression size limit exceeded")
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
