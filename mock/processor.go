package mock

import (
	"context"

	"github.com/fwojciec/docmirror"
)

var _ docmirror.Processor = (*Processor)(nil)

// Processor is a mock implementation of docmirror.Processor.
type Processor struct {
	ProcessFn func(ctx context.Context, item string) (*docmirror.Artifact, error)
}

func (p *Processor) Process(ctx context.Context, item string) (*docmirror.Artifact, error) {
	return p.ProcessFn(ctx, item)
}
