package docmirror

import "context"

// Artifact describes the file a per-item operation produced.
type Artifact struct {
	Item  string `json:"item"`
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
	Hash  string `json:"hash"`
}

// ArtifactWriter persists the output of a per-item operation.
type ArtifactWriter interface {
	// WriteArtifact stores content under name and describes the result.
	// A failed write must not leave a partial file behind.
	WriteArtifact(ctx context.Context, name, content string) (*Artifact, error)
}
