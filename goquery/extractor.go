// Package goquery extracts the content region of saved documentation pages
// using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmirror"
)

// DefaultContentSelector selects the article of a reveal.js documentation page.
const DefaultContentSelector = "article.article"

// DefaultFooterSelector selects the page footer inside the content region.
// Only its first match is removed.
const DefaultFooterSelector = "footer"

// DefaultRemoveSelectors match the live presentation demos inside the
// content region. Every match is removed.
var DefaultRemoveSelectors = []string{
	"div.reveal-example",
	"div.reveal",
}

// Ensure Extractor implements docmirror.Extractor at compile time.
var _ docmirror.Extractor = (*Extractor)(nil)

// Extractor selects a single content region and strips unwanted elements from it.
type Extractor struct {
	content string
	footer  string
	remove  []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContentSelector sets the selector of the content region.
// The first match is used.
func WithContentSelector(selector string) Option {
	return func(e *Extractor) {
		e.content = selector
	}
}

// WithFooterSelector sets the selector whose first match inside the content
// region is removed. An empty selector keeps every footer.
func WithFooterSelector(selector string) Option {
	return func(e *Extractor) {
		e.footer = selector
	}
}

// WithRemoveSelectors replaces the selectors of elements removed from the
// content region.
func WithRemoveSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.remove = selectors
	}
}

// NewExtractor creates a new Extractor using the reveal.js defaults.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		content: DefaultContentSelector,
		footer:  DefaultFooterSelector,
		remove:  DefaultRemoveSelectors,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the content region of html as HTML.
// Returns ENOTFOUND if no element matches the content selector.
func (e *Extractor) Extract(html string) (*docmirror.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, docmirror.Errorf(docmirror.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docmirror.Errorf(docmirror.EINVALID, "failed to parse HTML: %v", err)
	}

	content := doc.Find(e.content).First()
	if content.Length() == 0 {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "no element matches %q", e.content)
	}

	if e.footer != "" {
		content.Find(e.footer).First().Remove()
	}
	for _, selector := range e.remove {
		content.Find(selector).Remove()
	}

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, err
	}

	return &docmirror.ExtractResult{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		ContentHTML: contentHTML,
	}, nil
}
