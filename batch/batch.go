// Package batch runs a fixed list of work items through a per-item
// operation, recording every outcome in a durable ledger so that an
// interrupted run can be restarted without repeating completed work.
package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/docmirror"
	"github.com/google/uuid"
)

// Runner applies a Processor to each work item exactly once across the
// lifetime of its ledger. Items are processed sequentially, in order.
type Runner struct {
	Ledger    docmirror.LedgerStore
	Processor docmirror.Processor
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	RunID     string
	Completed int
	Total     int
	Item      string
	Artifact  *docmirror.Artifact
	Error     error
	Summary   *docmirror.Summary
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSkipped
	ProgressProcessing
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run processes items in order, skipping those the ledger already marks
// completed. The ledger is saved after every attempted item. An item
// failure never stops the run; a ledger failure always does.
//
// If ctx is canceled, Run stops before the next item and returns the
// partial summary together with the context error.
func (r *Runner) Run(ctx context.Context, items []string, progress ProgressFunc) (*docmirror.Summary, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	ledger, err := r.Ledger.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	runID := uuid.NewString()
	total := len(items)
	summary := &docmirror.Summary{}

	progress(ProgressEvent{Type: ProgressStarted, RunID: runID, Total: total})

	for i, item := range items {
		if ledger.IsCompleted(item) {
			summary.Skipped++
			progress(ProgressEvent{
				Type:      ProgressSkipped,
				RunID:     runID,
				Completed: i + 1,
				Total:     total,
				Item:      item,
			})
			continue
		}

		if err := ctx.Err(); err != nil {
			finish(summary, ledger)
			return summary, err
		}

		progress(ProgressEvent{
			Type:      ProgressProcessing,
			RunID:     runID,
			Completed: i,
			Total:     total,
			Item:      item,
		})

		art, perr := r.Processor.Process(ctx, item)
		if perr != nil && ctx.Err() != nil && errors.Is(perr, ctx.Err()) {
			// Interrupted, not failed: leave the item for the next run.
			finish(summary, ledger)
			return summary, ctx.Err()
		}

		if perr != nil {
			ledger.MarkFailed(item)
		} else {
			ledger.MarkCompleted(item)
		}

		// Persist before reporting so an observer never sees an outcome
		// that a crash could still lose. The outcome is saved even when
		// ctx was canceled during the item; the next check stops the run.
		if err := r.Ledger.Save(context.WithoutCancel(ctx), ledger); err != nil {
			finish(summary, ledger)
			return summary, &LedgerError{Item: item, Err: err}
		}

		if perr != nil {
			summary.Failed++
			progress(ProgressEvent{
				Type:      ProgressFailed,
				RunID:     runID,
				Completed: i + 1,
				Total:     total,
				Item:      item,
				Error:     perr,
			})
			continue
		}

		summary.Completed++
		if art != nil {
			summary.Bytes += art.Bytes
		}
		progress(ProgressEvent{
			Type:      ProgressCompleted,
			RunID:     runID,
			Completed: i + 1,
			Total:     total,
			Item:      item,
			Artifact:  art,
		})
	}

	finish(summary, ledger)
	progress(ProgressEvent{
		Type:      ProgressFinished,
		RunID:     runID,
		Completed: total,
		Total:     total,
		Summary:   summary,
	})

	return summary, nil
}

func finish(summary *docmirror.Summary, ledger *docmirror.Ledger) {
	summary.LedgerCompleted = len(ledger.Completed)
	summary.LedgerFailed = len(ledger.Failed)
}

// LedgerError reports that the ledger could not be saved after an item.
// The outcome of Item is not durable and the run was aborted.
type LedgerError struct {
	Item string
	Err  error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("saving ledger after %s: %v", e.Item, e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}
