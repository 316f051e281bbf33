// Package output provides output formatting for quotes.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"fba-cost/core/engine"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *Result) error
}

// Result is everything a formatter renders
type Result struct {
	// Quotes are the priced products, in input order
	Quotes []*engine.Quote `json:"quotes"`

	// Summary totals the quotes when more than one was priced
	Summary *engine.Summary `json:"summary,omitempty"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the quote was produced
	Timestamp string `json:"timestamp"`

	// TableVersion is the content hash of the rate tables
	TableVersion string `json:"table_version"`

	// Version is the tool version
	Version string `json:"version"`

	// Source is the input source (flags or a scenario file)
	Source string `json:"source,omitempty"`
}

// NewResult wraps quotes, adding a summary for batches
func NewResult(quotes []*engine.Quote, meta Metadata) *Result {
	r := &Result{Quotes: quotes, Metadata: meta}
	if len(quotes) > 1 {
		s := engine.Summarize(quotes)
		r.Summary = &s
	}
	return r
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the built-in formatters
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	_ = r.Register(NewCLIFormatter())
	_ = r.Register(NewJSONFormatter())
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter %s already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns a formatter for a format type
func (r *Registry) Get(format Format) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[format]
	return f, ok
}

// Formats lists registered formats in sorted order
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var defaultRegistry = NewRegistry()

// Get returns a built-in formatter
func Get(format Format) (Formatter, bool) {
	return defaultRegistry.Get(format)
}

// Formats lists the built-in formats
func Formats() []Format {
	return defaultRegistry.Formats()
}
