package main

import (
	"fmt"

	"github.com/fwojciec/docmirror"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	err := runBatch(deps, "Converting")
	if docmirror.ErrorCode(err) == docmirror.ENOTFOUND {
		fmt.Fprintln(deps.Stderr, "Hint: run 'docmirror scrape' first or set --html-dir")
	}
	return err
}
