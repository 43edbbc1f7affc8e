package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/batch"
	"github.com/fwojciec/docmirror/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives debug records. Nil unless --debug is set.
	Logger *slog.Logger

	Ledger docmirror.LedgerStore
	Items  docmirror.ItemSource
	Runner *batch.Runner

	// History is set when the ledger lives in SQLite.
	History LedgerHistory
}

// LedgerHistory lists ledger rows with the run that wrote them.
type LedgerHistory interface {
	Entries(ctx context.Context) ([]*sqlite.Entry, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log every fetch, ledger write and item to stderr" env:"DOCMIRROR_DEBUG"`

	Scrape  ScrapeCmd  `cmd:"" help:"Fetch documentation pages and save their HTML"`
	Convert ConvertCmd `cmd:"" help:"Convert saved HTML pages to Markdown"`
	Status  StatusCmd  `cmd:"" help:"Show what a ledger records"`
	Reset   ResetCmd   `cmd:"" help:"Forget ledger entries so they are processed again"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	BaseURL string        `name:"base-url" default:"https://revealjs.com" env:"DOCMIRROR_BASE_URL" help:"Site to fetch pages from"`
	HTMLDir string        `name:"html-dir" default:"html_pages" env:"DOCMIRROR_HTML_DIR" help:"Directory for saved HTML pages"`
	Ledger  string        `default:"scrape_progress.json" env:"DOCMIRROR_SCRAPE_LEDGER" help:"Ledger file (.json, or .db/.sqlite for SQLite)"`
	Timeout time.Duration `short:"t" default:"30s" env:"DOCMIRROR_TIMEOUT" help:"Fetch timeout per page"`
	Delay   time.Duration `default:"500ms" env:"DOCMIRROR_DELAY" help:"Pause between page fetches"`
	Retries int           `default:"0" help:"Extra attempts per page, with exponential backoff"`
	Render  bool          `help:"Render pages in headless Chrome before saving"`
	Pages   []string      `name:"page" short:"p" help:"Page path to fetch (repeatable, default: built-in page list)"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	HTMLDir     string `name:"html-dir" default:"html_pages" env:"DOCMIRROR_HTML_DIR" help:"Directory of saved HTML pages"`
	MarkdownDir string `name:"markdown-dir" default:"markdown_pages" env:"DOCMIRROR_MARKDOWN_DIR" help:"Directory for Markdown output"`
	Ledger      string `default:"convert_progress.json" env:"DOCMIRROR_CONVERT_LEDGER" help:"Ledger file (.json, or .db/.sqlite for SQLite)"`
	Extractor   string `default:"goquery" enum:"goquery,trafilatura,readability" help:"Content extractor (goquery, trafilatura, readability)"`
	BaseURL     string `name:"base-url" default:"https://revealjs.com" env:"DOCMIRROR_BASE_URL" help:"Site the pages came from, for resolving relative links"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct {
	Ledger string `required:"" env:"DOCMIRROR_LEDGER" help:"Ledger file to inspect"`
	Job    string `default:"scrape" enum:"scrape,convert" help:"Job whose ledger to read from a SQLite database"`
}

// ResetCmd is the "reset" subcommand.
type ResetCmd struct {
	Ledger     string   `required:"" env:"DOCMIRROR_LEDGER" help:"Ledger file to modify"`
	Job        string   `default:"scrape" enum:"scrape,convert" help:"Job whose ledger to modify in a SQLite database"`
	FailedOnly bool     `name:"failed-only" help:"Forget only failed items"`
	Items      []string `arg:"" optional:"" help:"Items to forget (default: all)"`
}
