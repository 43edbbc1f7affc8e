package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docmirror"
)

// Ensure LoggingLedgerStore implements docmirror.LedgerStore.
var _ docmirror.LedgerStore = (*LoggingLedgerStore)(nil)

// LoggingLedgerStore wraps a LedgerStore with logging.
type LoggingLedgerStore struct {
	next   docmirror.LedgerStore
	logger *slog.Logger
}

// NewLoggingLedgerStore creates a new LoggingLedgerStore.
func NewLoggingLedgerStore(next docmirror.LedgerStore, logger *slog.Logger) *LoggingLedgerStore {
	return &LoggingLedgerStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the ledger size.
func (s *LoggingLedgerStore) Load(ctx context.Context) (ledger *docmirror.Ledger, err error) {
	defer func(begin time.Time) {
		completed, failed := counts(ledger)
		s.logger.Info("ledger load",
			"completed", completed,
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped store and logs the ledger size.
func (s *LoggingLedgerStore) Save(ctx context.Context, ledger *docmirror.Ledger) (err error) {
	defer func(begin time.Time) {
		completed, failed := counts(ledger)
		s.logger.Info("ledger save",
			"completed", completed,
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, ledger)
}

func counts(ledger *docmirror.Ledger) (completed, failed int) {
	if ledger == nil {
		return 0, 0
	}
	return len(ledger.Completed), len(ledger.Failed)
}
