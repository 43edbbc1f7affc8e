package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docmirror"
)

// Ensure Writer implements docmirror.ArtifactWriter at compile time.
var _ docmirror.ArtifactWriter = (*Writer)(nil)

// Writer writes artifacts as files in a single directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
// The directory is created on first write.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArtifact writes content to baseDir/name, replacing any previous file.
func (w *Writer) WriteArtifact(ctx context.Context, name, content string) (*docmirror.Artifact, error) {
	if name == "" {
		return nil, docmirror.Errorf(docmirror.EINVALID, "artifact name required")
	}
	if name != filepath.Base(name) || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return nil, docmirror.Errorf(docmirror.EINVALID, "invalid artifact name %q: path traversal", name)
	}

	fullPath := filepath.Join(w.baseDir, name)
	if err := writeFileAtomic(fullPath, []byte(content), 0644); err != nil {
		return nil, err
	}

	return &docmirror.Artifact{
		Path:  fullPath,
		Bytes: len(content),
		Hash:  ContentHash(content),
	}, nil
}

// ContentHash computes a hash of the content using xxhash.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
