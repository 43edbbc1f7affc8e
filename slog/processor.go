package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docmirror"
)

// Ensure LoggingProcessor implements docmirror.Processor.
var _ docmirror.Processor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a Processor with logging.
type LoggingProcessor struct {
	next   docmirror.Processor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next docmirror.Processor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// Process delegates to the wrapped processor and logs the artifact it produced.
func (p *LoggingProcessor) Process(ctx context.Context, item string) (art *docmirror.Artifact, err error) {
	defer func(begin time.Time) {
		attrs := []any{"item", item}
		if art != nil {
			attrs = append(attrs, "path", art.Path, "bytes", art.Bytes, "hash", art.Hash)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		p.logger.Info("process", attrs...)
	}(time.Now())
	return p.next.Process(ctx, item)
}
