package fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/fwojciec/docmirror"
)

// Ensure LedgerStore implements docmirror.LedgerStore at compile time.
var _ docmirror.LedgerStore = (*LedgerStore)(nil)

// LedgerStore keeps a ledger in a JSON file:
//
//	{
//	  "completed": ["/", "/markup/"],
//	  "failed": ["/api/"]
//	}
//
// Every Save replaces the file atomically.
type LedgerStore struct {
	path string
}

// NewLedgerStore creates a LedgerStore backed by the file at path.
func NewLedgerStore(path string) *LedgerStore {
	return &LedgerStore{path: path}
}

// Path returns the location of the ledger file.
func (s *LedgerStore) Path() string {
	return s.path
}

// Load reads the ledger file. A missing file yields an empty ledger.
func (s *LedgerStore) Load(ctx context.Context) (*docmirror.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return docmirror.NewLedger(), nil
	} else if err != nil {
		return nil, err
	}

	ledger := docmirror.NewLedger()
	if err := json.Unmarshal(data, ledger); err != nil {
		return nil, docmirror.Errorf(docmirror.EINVALID, "invalid ledger file %s: %v", s.path, err)
	}

	// Older files may carry null lists.
	if ledger.Completed == nil {
		ledger.Completed = []string{}
	}
	if ledger.Failed == nil {
		ledger.Failed = []string{}
	}
	return ledger, nil
}

// Save writes the ledger as indented JSON.
func (s *LedgerStore) Save(ctx context.Context, ledger *docmirror.Ledger) error {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, append(data, '\n'), 0644)
}
