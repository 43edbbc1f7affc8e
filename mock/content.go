package mock

import "github.com/fwojciec/docmirror"

var (
	_ docmirror.Extractor = (*Extractor)(nil)
	_ docmirror.Converter = (*Converter)(nil)
)

// Extractor is a mock implementation of docmirror.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docmirror.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docmirror.ExtractResult, error) {
	return e.ExtractFn(html)
}

// Converter is a mock implementation of docmirror.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
