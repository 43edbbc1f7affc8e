package crawl_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/batch"
	"github.com/fwojciec/docmirror/crawl"
	"github.com/fwojciec/docmirror/fs"
	dmhttp "github.com/fwojciec/docmirror/http"
	"github.com/fwojciec/docmirror/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_URL(t *testing.T) {
	t.Parallel()

	s := &crawl.Scraper{BaseURL: "https://revealjs.com/"}

	assert.Equal(t, "https://revealjs.com/", s.URL("/"))
	assert.Equal(t, "https://revealjs.com/markup/", s.URL("/markup/"))
	assert.Equal(t, "https://revealjs.com/api/", s.URL("api/"))
}

func TestScraper_Process(t *testing.T) {
	t.Parallel()

	t.Run("saves fetched body under the page file name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var fetched string
		s := &crawl.Scraper{
			BaseURL: "https://revealjs.com",
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetched = url
					return "<html>markup</html>", nil
				},
			},
			Writer: fs.NewWriter(dir),
		}

		art, err := s.Process(context.Background(), "/markup/")

		require.NoError(t, err)
		assert.Equal(t, "https://revealjs.com/markup/", fetched)
		assert.Equal(t, "/markup/", art.Item)
		assert.Equal(t, filepath.Join(dir, "markup.html"), art.Path)
		content, err := os.ReadFile(art.Path)
		require.NoError(t, err)
		assert.Equal(t, "<html>markup</html>", string(content))
	})

	t.Run("root path is saved as home.html", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s := &crawl.Scraper{
			BaseURL: "https://revealjs.com",
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "<html>home</html>", nil
				},
			},
			Writer: fs.NewWriter(dir),
		}

		art, err := s.Process(context.Background(), "/")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "home.html"), art.Path)
	})

	t.Run("fetch failure writes nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s := &crawl.Scraper{
			BaseURL: "https://revealjs.com",
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "", errors.New("HTTP 503")
				},
			},
			Writer: fs.NewWriter(dir),
		}

		_, err := s.Process(context.Background(), "/api/")

		require.EqualError(t, err, "HTTP 503")
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("retries transient fetch failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		s := &crawl.Scraper{
			BaseURL: "https://revealjs.com",
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					calls++
					if calls == 1 {
						return "", errors.New("timeout")
					}
					return "<html></html>", nil
				},
			},
			Writer:      fs.NewWriter(t.TempDir()),
			RetryDelays: []time.Duration{0},
		}

		_, err := s.Process(context.Background(), "/api/")

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("waits on the throttle before fetching", func(t *testing.T) {
		t.Parallel()

		s := &crawl.Scraper{
			BaseURL: "https://revealjs.com",
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "<html></html>", nil
				},
			},
			Writer:   fs.NewWriter(t.TempDir()),
			Throttle: crawl.NewThrottle(100 * time.Millisecond),
		}

		start := time.Now()
		_, err := s.Process(context.Background(), "/a/")
		require.NoError(t, err)
		_, err = s.Process(context.Background(), "/b/")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})
}

// Story: Resumable scrape
// A scrape interrupted by failures picks up only the missing pages

func TestScraper_ResumableRun(t *testing.T) {
	t.Parallel()

	// Given a site where /broken/ fails on the first run only
	var mu sync.Mutex
	broken := true
	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		requests = append(requests, r.URL.Path)
		if r.URL.Path == "/broken/" && broken {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("<html>" + r.URL.Path + "</html>"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	fetcher := dmhttp.NewFetcher()
	defer fetcher.Close()
	runner := &batch.Runner{
		Ledger: fs.NewLedgerStore(filepath.Join(dir, "scrape_progress.json")),
		Processor: &crawl.Scraper{
			BaseURL: srv.URL,
			Fetcher: fetcher,
			Writer:  fs.NewWriter(filepath.Join(dir, "html_pages")),
		},
	}
	pages := []string{"/", "/broken/", "/markup/"}

	// When I run the scrape
	summary, err := runner.Run(context.Background(), pages, nil)

	// Then the broken page is failed and the others are saved
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 1, summary.Failed)
	_, err = os.Stat(filepath.Join(dir, "html_pages", "home.html"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "html_pages", "broken.html"))
	assert.True(t, os.IsNotExist(err))

	// When the site recovers and I run again
	mu.Lock()
	broken = false
	requests = nil
	mu.Unlock()
	summary, err = runner.Run(context.Background(), pages, nil)

	// Then only the failed page is fetched
	require.NoError(t, err)
	mu.Lock()
	assert.Equal(t, []string{"/broken/"}, requests)
	mu.Unlock()
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 3, summary.LedgerCompleted)
	assert.Equal(t, 0, summary.LedgerFailed)
}

func TestDefaultPages(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, p := range crawl.DefaultPages {
		assert.False(t, seen[p], "duplicate page %s", p)
		seen[p] = true
	}
	assert.Len(t, crawl.DefaultPages, 39)
	assert.Equal(t, "/", crawl.DefaultPages[0])
}

var _ docmirror.Processor = (*crawl.Scraper)(nil)
