package fs

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/fwojciec/docmirror"
)

// Ensure DirSource implements docmirror.ItemSource at compile time.
var _ docmirror.ItemSource = (*DirSource)(nil)

// DirSource lists the files in a directory whose names match a glob pattern.
type DirSource struct {
	Dir     string
	Pattern string
}

// NewDirSource creates a DirSource.
func NewDirSource(dir, pattern string) *DirSource {
	return &DirSource{Dir: dir, Pattern: pattern}
}

// Items returns the matching file names (not paths), sorted.
// A missing directory is ENOTFOUND.
func (s *DirSource) Items(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.Dir)
	if os.IsNotExist(err) {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "directory %s does not exist", s.Dir)
	} else if err != nil {
		return nil, err
	} else if !info.IsDir() {
		return nil, docmirror.Errorf(docmirror.EINVALID, "%s is not a directory", s.Dir)
	}

	matches, err := filepath.Glob(filepath.Join(s.Dir, s.Pattern))
	if err != nil {
		return nil, docmirror.Errorf(docmirror.EINVALID, "invalid pattern %q: %v", s.Pattern, err)
	}

	items := make([]string, 0, len(matches))
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil || fi.IsDir() {
			continue
		}
		items = append(items, filepath.Base(m))
	}
	slices.Sort(items)
	return items, nil
}
