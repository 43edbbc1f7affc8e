// Package readability extracts page content with go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/docmirror"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docmirror.Extractor at compile time.
var _ docmirror.Extractor = (*Extractor)(nil)

// Extractor picks the main article of a page with the Readability
// heuristics. It needs no site-specific selectors.
type Extractor struct {
	pageURL *url.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL sets the URL relative links are resolved against.
func WithPageURL(u *url.URL) Option {
	return func(e *Extractor) {
		e.pageURL = u
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the article Readability scores highest.
func (e *Extractor) Extract(rawHTML string) (*docmirror.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docmirror.Errorf(docmirror.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, docmirror.Errorf(docmirror.EINVALID, "parse HTML: %v", err)
	}

	content := strings.TrimSpace(article.Content)
	if content == "" {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "no readable content found")
	}

	return &docmirror.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: content,
	}, nil
}
