package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/docmirror"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docmirror.LedgerStore = (*LedgerStore)(nil)

const (
	statusCompleted = "completed"
	statusFailed    = "failed"
)

// Entry is one ledger row with the bookkeeping the JSON ledger cannot hold.
type Entry struct {
	Item      string
	Status    string
	RunID     string
	UpdatedAt time.Time
}

// LedgerStore implements docmirror.LedgerStore on a SQLite table. Several
// jobs can share one database; rows are scoped by job name.
type LedgerStore struct {
	db    *DB
	job   string
	runID string
	now   func() time.Time
}

// NewLedgerStore creates a ledger store for job. Rows first written by this
// store are stamped with a fresh run ID.
func NewLedgerStore(db *DB, job string) *LedgerStore {
	return &LedgerStore{
		db:    db,
		job:   job,
		runID: uuid.NewString(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// RunID returns the ID stamped on rows written by this store.
func (s *LedgerStore) RunID() string {
	return s.runID
}

// Load returns the job's ledger, empty if no rows exist.
func (s *LedgerStore) Load(ctx context.Context) (*docmirror.Ledger, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT status, item FROM ledger_items
		WHERE job = ?
		ORDER BY status, position
	`, s.job)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	ledger := docmirror.NewLedger()
	for rows.Next() {
		var status, item string
		if err := rows.Scan(&status, &item); err != nil {
			return nil, err
		}
		switch status {
		case statusCompleted:
			ledger.Completed = append(ledger.Completed, item)
		case statusFailed:
			ledger.Failed = append(ledger.Failed, item)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// Save replaces the job's ledger in a single transaction. Rows already
// present keep their run ID and timestamp.
func (s *LedgerStore) Save(ctx context.Context, ledger *docmirror.Ledger) error {
	if ledger == nil {
		return docmirror.Errorf(docmirror.EINVALID, "ledger required")
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin ledger save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		CREATE TEMP TABLE IF NOT EXISTS ledger_keep (status TEXT NOT NULL, item TEXT NOT NULL)
	`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ledger_keep`); err != nil {
		return err
	}

	updatedAt := s.now().Format(time.RFC3339)
	write := func(status string, items []string) error {
		for i, item := range items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO ledger_items (job, status, item, position, run_id, updated_at)
				VALUES (?, ?, ?, ?, ?, ?)
				ON CONFLICT (job, status, item) DO UPDATE SET position = excluded.position
			`, s.job, status, item, i, s.runID, updatedAt); err != nil {
				return fmt.Errorf("write %s item %q: %w", status, item, err)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO ledger_keep (status, item) VALUES (?, ?)
			`, status, item); err != nil {
				return err
			}
		}
		return nil
	}
	if err := write(statusCompleted, ledger.Completed); err != nil {
		return err
	}
	if err := write(statusFailed, ledger.Failed); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM ledger_items
		WHERE job = ?
		AND NOT EXISTS (
			SELECT 1 FROM ledger_keep k
			WHERE k.status = ledger_items.status AND k.item = ledger_items.item
		)
	`, s.job); err != nil {
		return fmt.Errorf("prune ledger: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ledger save: %w", err)
	}
	return nil
}

// Entries returns every row of the job's ledger, completed items first.
func (s *LedgerStore) Entries(ctx context.Context) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item, status, run_id, updated_at FROM ledger_items
		WHERE job = ?
		ORDER BY status, position
	`, s.job)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var updatedAt string
		if err := rows.Scan(&e.Item, &e.Status, &e.RunID, &updatedAt); err != nil {
			return nil, err
		}
		if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at of %q: %w", e.Item, err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
