// Package trafilatura extracts page content with go-trafilatura. It serves
// pages that lack the markup the goquery extractor expects.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/docmirror"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docmirror.Extractor at compile time.
var _ docmirror.Extractor = (*Extractor)(nil)

// Extractor finds the main text of a page with trafilatura, falling back to
// its readability and dom-distiller passes when the primary pass finds
// too little. Links are kept so cross references survive conversion.
type Extractor struct {
	opts trafilatura.Options
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL sets the URL the page was fetched from.
func WithPageURL(u *url.URL) Option {
	return func(e *Extractor) {
		e.opts.OriginalURL = u
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			IncludeLinks:   true,
			IncludeImages:  true,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the main content of rawHTML rendered back to HTML.
func (e *Extractor) Extract(rawHTML string) (*docmirror.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docmirror.Errorf(docmirror.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "no main content found: %v", err)
	}
	if result.ContentNode == nil {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "no main content found")
	}

	var sb strings.Builder
	if err := html.Render(&sb, result.ContentNode); err != nil {
		return nil, err
	}

	return &docmirror.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: sb.String(),
	}, nil
}
