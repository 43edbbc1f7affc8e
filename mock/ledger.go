package mock

import (
	"context"

	"github.com/fwojciec/docmirror"
)

var _ docmirror.LedgerStore = (*LedgerStore)(nil)

// LedgerStore is a mock implementation of docmirror.LedgerStore.
type LedgerStore struct {
	LoadFn func(ctx context.Context) (*docmirror.Ledger, error)
	SaveFn func(ctx context.Context, ledger *docmirror.Ledger) error
}

func (s *LedgerStore) Load(ctx context.Context) (*docmirror.Ledger, error) {
	return s.LoadFn(ctx)
}

func (s *LedgerStore) Save(ctx context.Context, ledger *docmirror.Ledger) error {
	return s.SaveFn(ctx, ledger)
}
