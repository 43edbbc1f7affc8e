package crawl

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/fs"
)

// Ensure Transformer implements docmirror.Processor at compile time.
var _ docmirror.Processor = (*Transformer)(nil)

// Transformer converts one saved HTML file to Markdown.
type Transformer struct {
	SourceDir string
	Extractor docmirror.Extractor
	Converter docmirror.Converter
	Writer    docmirror.ArtifactWriter
}

// Process reads SourceDir/name, extracts its content region, converts it
// and writes the Markdown under the same stem with an .md extension.
// Nothing is written when any step fails.
func (t *Transformer) Process(ctx context.Context, name string) (*docmirror.Artifact, error) {
	data, err := os.ReadFile(filepath.Join(t.SourceDir, name))
	if err != nil {
		return nil, err
	}

	extracted, err := t.Extractor.Extract(string(data))
	if err != nil {
		return nil, err
	}

	markdown, err := t.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}
	if markdown == "" {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "could not extract content from %s", name)
	}

	art, err := t.Writer.WriteArtifact(ctx, fs.MarkdownFileName(name), markdown)
	if err != nil {
		return nil, err
	}
	art.Item = name
	return art, nil
}
