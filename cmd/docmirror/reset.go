package main

import (
	"fmt"
	"slices"

	"github.com/fwojciec/docmirror"
)

// Run executes the reset command.
func (c *ResetCmd) Run(deps *Dependencies) error {
	ledger, err := deps.Ledger.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return reported(err)
	}

	removed := 0
	switch {
	case len(c.Items) == 0 && c.FailedOnly:
		removed = len(ledger.Failed)
		ledger.Failed = []string{}
	case len(c.Items) == 0:
		removed = len(ledger.Completed) + len(ledger.Failed)
		ledger = docmirror.NewLedger()
	default:
		for _, item := range c.Items {
			if c.FailedOnly {
				if !ledger.IsFailed(item) {
					fmt.Fprintf(deps.Stderr, "warning: %s is not marked failed\n", item)
					continue
				}
				ledger.Failed = slices.DeleteFunc(ledger.Failed, func(s string) bool { return s == item })
				removed++
				continue
			}
			if !ledger.Reset(item) {
				fmt.Fprintf(deps.Stderr, "warning: %s is not in the ledger\n", item)
				continue
			}
			removed++
		}
	}

	if removed == 0 {
		fmt.Fprintln(deps.Stdout, "Nothing to reset.")
		return nil
	}

	if err := deps.Ledger.Save(deps.Ctx, ledger); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return reported(err)
	}

	fmt.Fprintf(deps.Stdout, "Reset %d item(s). Completed: %d, Failed: %d\n",
		removed, len(ledger.Completed), len(ledger.Failed))
	return nil
}
