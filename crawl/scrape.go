// Package crawl provides the per-item operations of the mirroring jobs:
// fetching a documentation page to disk and converting a saved page to
// Markdown.
package crawl

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/fs"
)

// Ensure Scraper implements docmirror.Processor at compile time.
var _ docmirror.Processor = (*Scraper)(nil)

// Scraper fetches one page path and saves its raw HTML body.
type Scraper struct {
	BaseURL string
	Fetcher docmirror.Fetcher
	Writer  docmirror.ArtifactWriter

	// Throttle, if set, is waited on before every fetch.
	Throttle *Throttle

	// RetryDelays are the waits between fetch attempts. Nil means a single attempt.
	RetryDelays []time.Duration

	// Logger, if set, receives retry messages.
	Logger LogFunc
}

// URL returns the absolute URL of a page path.
func (s *Scraper) URL(path string) string {
	base := strings.TrimSuffix(s.BaseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// Process fetches the page at path and writes it to the output directory.
func (s *Scraper) Process(ctx context.Context, path string) (*docmirror.Artifact, error) {
	if s.Throttle != nil {
		if err := s.Throttle.Wait(ctx); err != nil {
			return nil, err
		}
	}

	fetch := func(ctx context.Context, url string) (string, error) {
		return s.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, s.URL(path), fetch, s.Logger, s.RetryDelays)
	if err != nil {
		return nil, err
	}

	art, err := s.Writer.WriteArtifact(ctx, fs.PageFileName(path), html)
	if err != nil {
		return nil, err
	}
	art.Item = path
	return art, nil
}
