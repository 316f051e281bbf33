// Package history provides the quote history store.
// Supports multiple backends: memory, file and SQLite.
package history

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fba-cost/core/engine"
	"fba-cost/internal/errors"
)

// Backend is a storage backend type
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Store is the history store interface
type Store interface {
	// Save stores a record, assigning ID and CreatedAt when blank
	Save(ctx context.Context, record *Record) error

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*Record, error)

	// List lists records newest first
	List(ctx context.Context, filter *Filter) ([]*Record, error)

	// Delete removes a record
	Delete(ctx context.Context, id string) error

	// Close closes the store
	Close() error
}

// Record is a saved quote
type Record struct {
	// ID is unique identifier
	ID string `json:"id"`

	// Name is the product name
	Name string `json:"name"`

	// Source is where the input came from (flags or a scenario file)
	Source string `json:"source,omitempty"`

	// CreatedAt timestamp
	CreatedAt time.Time `json:"created_at"`

	// SizeTier of the quoted product
	SizeTier string `json:"size_tier"`

	// TableVersion is the rate table hash the quote was priced with
	TableVersion string `json:"table_version"`

	// NetProfit per unit
	NetProfit decimal.Decimal `json:"net_profit"`

	// Quote is the full quote
	Quote *engine.Quote `json:"quote"`
}

// NewRecord builds a record from a quote
func NewRecord(q *engine.Quote, source string) *Record {
	return &Record{
		Name:         q.Name,
		Source:       source,
		SizeTier:     q.SizeTier.Tier.String(),
		TableVersion: q.TableVersion,
		NetProfit:    q.Profit.NetProfit,
		Quote:        q,
	}
}

// Filter filters record listing
type Filter struct {
	// Name matches records whose name contains it, case-insensitively
	Name         string
	SizeTier     string
	Since        time.Time
	Until        time.Time
	Unprofitable bool
	Limit        int
	Offset       int
}

// Config selects and configures a backend
type Config struct {
	Backend Backend `json:"backend"`

	// Path is the directory (file) or database file (sqlite)
	Path string `json:"path"`
}

// Open creates a store by backend type
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendFile:
		path := cfg.Path
		if path == "" {
			path = ".fba-cost/history"
		}
		return NewFileStore(path)
	case BackendSQLite:
		path := cfg.Path
		if path == "" {
			path = ".fba-cost/history.db"
		}
		return NewSQLiteStore(path)
	case BackendMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, errors.Newf(errors.TypeNotSupported, "unsupported history backend: %s", cfg.Backend)
	}
}

func prepare(record *Record, now time.Time) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.CreatedAt = record.CreatedAt.UTC()
}

func (f *Filter) matches(r *Record) bool {
	if f == nil {
		return true
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.SizeTier != "" && r.SizeTier != f.SizeTier {
		return false
	}
	if !f.Since.IsZero() && r.CreatedAt.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && r.CreatedAt.After(f.Until) {
		return false
	}
	if f.Unprofitable && !r.NetProfit.IsNegative() {
		return false
	}
	return true
}

// apply filters, orders newest first, then pages
func (f *Filter) apply(records []*Record) []*Record {
	out := records[:0:0]
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if f != nil {
		if f.Offset > 0 {
			if f.Offset >= len(out) {
				return nil
			}
			out = out[f.Offset:]
		}
		if f.Limit > 0 && f.Limit < len(out) {
			out = out[:f.Limit]
		}
	}
	return out
}

// Ensure interfaces are implemented
var (
	_ io.Closer = (*FileStore)(nil)
	_ io.Closer = (*MemoryStore)(nil)
	_ io.Closer = (*SQLiteStore)(nil)
	_ Store     = (*FileStore)(nil)
	_ Store     = (*MemoryStore)(nil)
	_ Store     = (*SQLiteStore)(nil)
)
