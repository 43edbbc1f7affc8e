package docmirror

import "context"

// Processor performs the domain action for one work item.
// A nil error means the item is done; any error marks it failed.
// Process must be safe to call again for an item that previously failed.
type Processor interface {
	Process(ctx context.Context, item string) (*Artifact, error)
}

// ProcessorFunc adapts an ordinary function to the Processor interface.
type ProcessorFunc func(ctx context.Context, item string) (*Artifact, error)

// Process calls f(ctx, item).
func (f ProcessorFunc) Process(ctx context.Context, item string) (*Artifact, error) {
	return f(ctx, item)
}

// ItemSource lists the work items of a batch job. The list is fixed for
// the duration of a run.
type ItemSource interface {
	Items(ctx context.Context) ([]string, error)
}

// StaticSource is an ItemSource backed by a fixed list.
type StaticSource []string

// Items returns a copy of the list.
func (s StaticSource) Items(ctx context.Context) ([]string, error) {
	return append([]string{}, s...), nil
}

// Summary reports the outcome of one batch run.
type Summary struct {
	// Outcomes of this run.
	Completed int
	Failed    int
	Skipped   int
	Bytes     int

	// Totals held by the ledger after the run.
	LedgerCompleted int
	LedgerFailed    int
}
