package history

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"fba-cost/internal/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	sqliteDialect = "sqlite3"

	// fixed width so text ordering matches time ordering
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// goose keeps its dialect and filesystem in package globals
var gooseMu sync.Mutex

// SQLiteStore keeps records in a SQLite database
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (creating if needed) the database at path and runs
// pending migrations. ":memory:" gives a private in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.Storage("failed to create history directory", err)
		}
	}

	db, err := openSQLite(path)
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Storage("open sqlite database", err)
	}
	// one connection: SQLite serializes writers and ":memory:" is per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, errors.Storage("set sqlite pragmas", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Storage("ping sqlite database", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(sqliteDialect); err != nil {
		return errors.Storage("set goose dialect", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Storage("run goose up migrations", err)
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, record *Record) error {
	prepare(record, s.now())

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Storage("failed to marshal record", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quotes (id, name, source, created_at, size_tier, table_version, net_profit, record_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			source = excluded.source,
			created_at = excluded.created_at,
			size_tier = excluded.size_tier,
			table_version = excluded.table_version,
			net_profit = excluded.net_profit,
			record_json = excluded.record_json
	`, record.ID, record.Name, record.Source, record.CreatedAt.Format(timeLayout),
		record.SizeTier, record.TableVersion, record.NetProfit.String(), string(data))
	if err != nil {
		return errors.Storage("failed to insert record", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT record_json FROM quotes WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("quote", id)
	}
	if err != nil {
		return nil, errors.Storage("failed to query record", err)
	}
	return decodeRecord(data)
}

func decodeRecord(data string) (*Record, error) {
	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.Storage("failed to unmarshal record", err)
	}
	return &record, nil
}

func (s *SQLiteStore) List(ctx context.Context, filter *Filter) ([]*Record, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter != nil {
		if filter.Name != "" {
			where = append(where, "LOWER(name) LIKE ?")
			args = append(args, "%"+strings.ToLower(filter.Name)+"%")
		}
		if filter.SizeTier != "" {
			where = append(where, "size_tier = ?")
			args = append(args, filter.SizeTier)
		}
		if !filter.Since.IsZero() {
			where = append(where, "created_at >= ?")
			args = append(args, filter.Since.UTC().Format(timeLayout))
		}
		if !filter.Until.IsZero() {
			where = append(where, "created_at <= ?")
			args = append(args, filter.Until.UTC().Format(timeLayout))
		}
	}

	query := "SELECT record_json FROM quotes"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Storage("failed to list records", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Storage("failed to scan record", err)
		}
		record, err := decodeRecord(data)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage("failed to list records", err)
	}

	// profitability and paging are applied on the decoded records
	return filter.apply(records), nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return errors.Storage("failed to delete record", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Storage("failed to delete record", err)
	}
	if n == 0 {
		return errors.NotFound("quote", id)
	}
	return nil
}

// Version reports the applied schema migration
func (s *SQLiteStore) Version(ctx context.Context) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := goose.SetDialect(sqliteDialect); err != nil {
		return 0, errors.Storage("failed to set migration dialect", err)
	}
	v, err := goose.GetDBVersionContext(ctx, s.db)
	if err != nil {
		return 0, errors.Storage("failed to read schema version", err)
	}
	return v, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
