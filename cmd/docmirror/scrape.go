package main

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	return runBatch(deps, "Scraping")
}
