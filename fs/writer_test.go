package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ docmirror.ArtifactWriter = &fs.Writer{}
}

func TestWriter_WriteArtifact(t *testing.T) {
	t.Parallel()

	t.Run("writes content and describes the file", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		art, err := w.WriteArtifact(context.Background(), "markup.md", "# Markup")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(baseDir, "markup.md"), art.Path)
		assert.Equal(t, 8, art.Bytes)
		assert.Equal(t, fs.ContentHash("# Markup"), art.Hash)

		content, err := os.ReadFile(art.Path)
		require.NoError(t, err)
		assert.Equal(t, "# Markup", string(content))
	})

	t.Run("creates the base directory", func(t *testing.T) {
		t.Parallel()

		baseDir := filepath.Join(t.TempDir(), "html_pages")
		w := fs.NewWriter(baseDir)

		_, err := w.WriteArtifact(context.Background(), "home.html", "<html></html>")

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(baseDir, "home.html"))
		require.NoError(t, err)
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		_, err := w.WriteArtifact(context.Background(), "api.md", "old")
		require.NoError(t, err)
		_, err = w.WriteArtifact(context.Background(), "api.md", "new")
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(baseDir, "api.md"))
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		_, err := w.WriteArtifact(context.Background(), "api.md", "content")
		require.NoError(t, err)

		entries, err := os.ReadDir(baseDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "api.md", entries[0].Name())
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteArtifact(context.Background(), "../../etc/passwd", "bad content")

		require.Error(t, err)
		assert.Equal(t, docmirror.EINVALID, docmirror.ErrorCode(err))
		assert.Contains(t, docmirror.ErrorMessage(err), "path traversal")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteArtifact(context.Background(), "", "content")

		require.Error(t, err)
		assert.Equal(t, docmirror.EINVALID, docmirror.ErrorCode(err))
	})
}

func TestContentHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fs.ContentHash("abc"), fs.ContentHash("abc"))
	assert.NotEqual(t, fs.ContentHash("abc"), fs.ContentHash("abd"))
	assert.Len(t, fs.ContentHash(""), 16)
}
