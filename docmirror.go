// Package docmirror mirrors documentation sites to local Markdown.
// It fetches a fixed list of pages, saves the raw HTML, extracts the
// content region of each saved page and converts it to Markdown. Both
// steps run as resumable batch jobs that record every outcome in a ledger.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package docmirror
