package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/batch"
	"github.com/fwojciec/docmirror/crawl"
)

// runBatch lists the work items and runs them through deps.Runner,
// printing one line per event. Item failures are reported but do not
// fail the command; ledger failures and interruption do.
func runBatch(deps *Dependencies, verb string) error {
	items, err := deps.Items.Items(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return reported(err)
	}

	summary, err := deps.Runner.Run(deps.Ctx, items, progressPrinter(deps.Stdout, verb))
	if errors.Is(err, context.Canceled) && summary != nil {
		fmt.Fprintf(deps.Stderr, "\nInterrupted. Completed: %d, Failed: %d. Run again to resume.\n",
			summary.LedgerCompleted, summary.LedgerFailed)
		return reported(err)
	}

	var lerr *batch.LedgerError
	if errors.As(err, &lerr) {
		fmt.Fprintf(deps.Stderr, "error: progress for %s could not be saved: %v\n", lerr.Item, lerr.Err)
		return reported(err)
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return reported(err)
	}

	return nil
}

func progressPrinter(w io.Writer, verb string) batch.ProgressFunc {
	return func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressSkipped:
			fmt.Fprintf(w, "Skipping (already done): %s\n", e.Item)
		case batch.ProgressProcessing:
			fmt.Fprintf(w, "%s: %s\n", verb, e.Item)
		case batch.ProgressCompleted:
			if e.Artifact != nil {
				fmt.Fprintf(w, "  -> Saved to %s (%s)\n", e.Artifact.Path, crawl.FormatBytes(e.Artifact.Bytes))
			}
		case batch.ProgressFailed:
			fmt.Fprintf(w, "  -> Failed: %v\n", e.Error)
		case batch.ProgressFinished:
			fmt.Fprintf(w, "\nDone! Completed: %d, Failed: %d\n", e.Summary.LedgerCompleted, e.Summary.LedgerFailed)
		}
	}
}
