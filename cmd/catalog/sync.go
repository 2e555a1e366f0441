package main

import (
	"fmt"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/crawl"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	if deps.Syncer == nil {
		return catalog.Errorf(catalog.EINTERNAL, "syncer not configured")
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressPage:
			fmt.Fprintf(deps.Stdout, "  page %d: %d listings\n", event.Completed, event.Total)
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d courses\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 60), event.Error)
		}
	}

	result, err := deps.Syncer.Sync(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error syncing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d courses from %d pages (%d failed, %s)\n",
		result.Saved, result.Pages, result.Failed, crawl.FormatBytes(result.Bytes))
	return nil
}
