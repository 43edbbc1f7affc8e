package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/batch"
	"github.com/fwojciec/docmirror/crawl"
	"github.com/fwojciec/docmirror/fs"
	"github.com/fwojciec/docmirror/goquery"
	"github.com/fwojciec/docmirror/htmltomarkdown"
	dmhttp "github.com/fwojciec/docmirror/http"
	"github.com/fwojciec/docmirror/readability"
	"github.com/fwojciec/docmirror/rod"
	dmslog "github.com/fwojciec/docmirror/slog"
	"github.com/fwojciec/docmirror/sqlite"
	"github.com/fwojciec/docmirror/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		ReportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// reportedError wraps an error a command has already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// reported marks err as already printed to the user.
func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// ReportError prints err to w unless a command already printed it.
func ReportError(w io.Writer, err error) {
	var rerr *reportedError
	if err == nil || errors.As(err, &rerr) {
		return
	}
	fmt.Fprintln(w, err)
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the HTTP and browser fetchers when set. Used by
	// end-to-end tests.
	Fetcher docmirror.Fetcher

	// SQLite database backing the ledger, if the ledger path names one.
	DB *sqlite.DB

	fetcher docmirror.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close releases the database and any fetcher opened by Run.
func (m *Main) Close() error {
	var errs []error
	if m.fetcher != nil {
		errs = append(errs, m.fetcher.Close())
		m.fetcher = nil
	}
	if m.DB != nil {
		errs = append(errs, m.DB.Close())
		m.DB = nil
	}
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docmirror"),
		kong.Description("Mirror a documentation site to local Markdown, resumably"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docmirror --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	if cli.Debug {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	switch command := strings.Fields(kongCtx.Command())[0]; command {
	case "scrape":
		if err := m.wireScrape(deps, &cli.Scrape); err != nil {
			return err
		}
	case "convert":
		if err := m.wireConvert(deps, &cli.Convert); err != nil {
			return err
		}
	case "status":
		if err := m.wireLedger(deps, cli.Status.Ledger, cli.Status.Job); err != nil {
			return err
		}
	case "reset":
		if err := m.wireLedger(deps, cli.Reset.Ledger, cli.Reset.Job); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) wireScrape(deps *Dependencies, c *ScrapeCmd) error {
	if err := m.wireLedger(deps, c.Ledger, jobScrape); err != nil {
		return err
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		if c.Render {
			rf, err := rod.NewFetcher(rod.WithFetchTimeout(c.Timeout))
			if err != nil {
				fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rf
		} else {
			fetcher = dmhttp.NewFetcher(dmhttp.WithTimeout(c.Timeout))
		}
		m.fetcher = fetcher
	}
	if deps.Logger != nil {
		fetcher = dmslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	pages := c.Pages
	if len(pages) == 0 {
		pages = crawl.DefaultPages
	}
	deps.Items = docmirror.StaticSource(pages)

	stderr := deps.Stderr
	deps.Runner = &batch.Runner{
		Ledger: deps.Ledger,
		Processor: m.decorate(deps, &crawl.Scraper{
			BaseURL:     c.BaseURL,
			Fetcher:     fetcher,
			Writer:      fs.NewWriter(c.HTMLDir),
			Throttle:    crawl.NewThrottle(c.Delay),
			RetryDelays: crawl.RetryDelays(c.Retries),
			Logger: func(format string, args ...any) {
				fmt.Fprintf(stderr, format+"\n", args...)
			},
		}),
	}
	return nil
}

func (m *Main) wireConvert(deps *Dependencies, c *ConvertCmd) error {
	if err := m.wireLedger(deps, c.Ledger, jobConvert); err != nil {
		return err
	}

	extractor, err := newExtractor(c.Extractor, c.BaseURL)
	if err != nil {
		return err
	}

	deps.Items = fs.NewDirSource(c.HTMLDir, "*.html")
	deps.Runner = &batch.Runner{
		Ledger: deps.Ledger,
		Processor: m.decorate(deps, &crawl.Transformer{
			SourceDir: c.HTMLDir,
			Extractor: extractor,
			Converter: htmltomarkdown.NewConverter(),
			Writer:    fs.NewWriter(c.MarkdownDir),
		}),
	}
	return nil
}

// wireLedger opens the ledger at path. Paths ending in .db or .sqlite are
// SQLite databases holding one ledger per job; anything else is a JSON file.
func (m *Main) wireLedger(deps *Dependencies, path, job string) error {
	var store docmirror.LedgerStore
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			m.DB = nil
			return fmt.Errorf("failed to open ledger database at %q: %w", path, err)
		}
		ls := sqlite.NewLedgerStore(m.DB, job)
		deps.History = ls
		store = ls
	default:
		store = fs.NewLedgerStore(path)
	}

	if deps.Logger != nil {
		store = dmslog.NewLoggingLedgerStore(store, deps.Logger)
	}
	deps.Ledger = store
	return nil
}

func (m *Main) decorate(deps *Dependencies, p docmirror.Processor) docmirror.Processor {
	if deps.Logger == nil {
		return p
	}
	return dmslog.NewLoggingProcessor(p, deps.Logger)
}

// newExtractor builds the named extractor. The heuristic extractors
// resolve relative links against baseURL.
func newExtractor(name, baseURL string) (docmirror.Extractor, error) {
	var pageURL *url.URL
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, docmirror.Errorf(docmirror.EINVALID, "invalid base URL %q: %v", baseURL, err)
		}
		pageURL = u
	}

	switch name {
	case "", "goquery":
		return goquery.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(trafilatura.WithPageURL(pageURL)), nil
	case "readability":
		return readability.NewExtractor(readability.WithPageURL(pageURL)), nil
	default:
		return nil, docmirror.Errorf(docmirror.EINVALID, "unknown extractor %q", name)
	}
}

const (
	jobScrape  = "scrape"
	jobConvert = "convert"
)
