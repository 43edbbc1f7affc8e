package main

import (
	"fmt"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/crawl"
)

const statusItemWidth = 60

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	ledger, err := deps.Ledger.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return reported(err)
	}

	fmt.Fprintf(deps.Stdout, "Ledger: %s\n", c.Ledger)
	fmt.Fprintf(deps.Stdout, "Completed: %d\n", len(ledger.Completed))
	fmt.Fprintf(deps.Stdout, "Failed: %d\n", len(ledger.Failed))

	if len(ledger.Failed) == 0 {
		return nil
	}

	// SQLite ledgers also know when each failure was recorded.
	recorded := map[string]string{}
	if deps.History != nil {
		entries, err := deps.History.Entries(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
			return reported(err)
		}
		for _, e := range entries {
			if e.Status == "failed" {
				recorded[e.Item] = e.UpdatedAt.Format("2006-01-02 15:04:05")
			}
		}
	}

	fmt.Fprintln(deps.Stdout, "\nFailed items:")
	for _, item := range ledger.Failed {
		if at, ok := recorded[item]; ok {
			fmt.Fprintf(deps.Stdout, "  %s  (%s)\n", crawl.TruncatePath(item, statusItemWidth), at)
			continue
		}
		fmt.Fprintf(deps.Stdout, "  %s\n", crawl.TruncatePath(item, statusItemWidth))
	}
	return nil
}
