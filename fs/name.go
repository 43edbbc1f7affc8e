package fs

import (
	"path/filepath"
	"strings"
)

// PageFileName converts a site path to the file name its HTML is saved under.
// Example: /docs/api/ → docs_api.html, / → home.html
func PageFileName(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "home.html"
	}
	return strings.ReplaceAll(trimmed, "/", "_") + ".html"
}

// MarkdownFileName converts a saved HTML file name to its Markdown file name.
// Example: markup.html → markup.md
func MarkdownFileName(htmlName string) string {
	return strings.TrimSuffix(htmlName, filepath.Ext(htmlName)) + ".md"
}
