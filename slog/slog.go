// Package slog provides logging decorators for docmirror services.
// Each decorator logs one structured record per call and delegates to the
// wrapped implementation.
package slog
