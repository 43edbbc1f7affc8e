package docmirror

import (
	"context"
	"slices"
)

// Ledger records which work items a batch job has completed or failed.
// Both lists preserve insertion order and never hold duplicates.
type Ledger struct {
	Completed []string `json:"completed"`
	Failed    []string `json:"failed"`
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Completed: []string{},
		Failed:    []string{},
	}
}

// IsCompleted reports whether item has been processed successfully.
func (l *Ledger) IsCompleted(item string) bool {
	return slices.Contains(l.Completed, item)
}

// IsFailed reports whether the most recent attempt at item failed.
func (l *Ledger) IsFailed(item string) bool {
	return slices.Contains(l.Failed, item)
}

// MarkCompleted records a successful attempt. The item is dropped from
// the failed list so a retried item is never reported as both.
func (l *Ledger) MarkCompleted(item string) {
	if !l.IsCompleted(item) {
		l.Completed = append(l.Completed, item)
	}
	l.Failed = slices.DeleteFunc(l.Failed, func(s string) bool { return s == item })
}

// MarkFailed records a failed attempt.
func (l *Ledger) MarkFailed(item string) {
	if !l.IsFailed(item) {
		l.Failed = append(l.Failed, item)
	}
}

// Reset forgets everything known about item so the next run processes it again.
// Returns true if the item was present in either list.
func (l *Ledger) Reset(item string) bool {
	n := len(l.Completed) + len(l.Failed)
	l.Completed = slices.DeleteFunc(l.Completed, func(s string) bool { return s == item })
	l.Failed = slices.DeleteFunc(l.Failed, func(s string) bool { return s == item })
	return len(l.Completed)+len(l.Failed) != n
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{
		Completed: append([]string{}, l.Completed...),
		Failed:    append([]string{}, l.Failed...),
	}
}

// LedgerStore persists a ledger as a whole.
type LedgerStore interface {
	// Load returns the stored ledger.
	// Returns an empty ledger if nothing has been stored yet.
	Load(ctx context.Context) (*Ledger, error)

	// Save replaces the stored ledger. When Save returns nil the ledger
	// must survive an abrupt termination of the process.
	Save(ctx context.Context, ledger *Ledger) error
}
