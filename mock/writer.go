package mock

import (
	"context"

	"github.com/fwojciec/docmirror"
)

var _ docmirror.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of docmirror.ArtifactWriter.
type ArtifactWriter struct {
	WriteArtifactFn func(ctx context.Context, name, content string) (*docmirror.Artifact, error)
}

func (w *ArtifactWriter) WriteArtifact(ctx context.Context, name, content string) (*docmirror.Artifact, error) {
	return w.WriteArtifactFn(ctx, name, content)
}
