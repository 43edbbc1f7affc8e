package docmirror

import "context"

// Fetcher retrieves the body of a documentation page.
type Fetcher interface {
	// Fetch returns the body of the page at url. Any status other than
	// success is an error. The context bounds the request.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases connections or browser processes held by the fetcher.
	Close() error
}

// ExtractResult is the content region found in a saved page.
type ExtractResult struct {
	Title string

	// ContentHTML is the region's outer HTML with demo markup removed.
	ContentHTML string
}

// Extractor locates the content region of a saved page.
type Extractor interface {
	// Extract returns ENOTFOUND when the page has no content region.
	Extract(html string) (*ExtractResult, error)
}

// Converter renders a content region as Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
