package history

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"fba-cost/internal/errors"
)

// FileStore keeps one JSON file per record in a directory
type FileStore struct {
	basePath string
	mu       sync.RWMutex
	now      func() time.Time
}

// NewFileStore creates a file store
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, errors.Storage("failed to create history directory", err)
	}
	return &FileStore{basePath: basePath, now: time.Now}, nil
}

func (s *FileStore) path(id string) (string, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return filepath.Join(s.basePath, id+".json"), true
}

func (s *FileStore) Save(ctx context.Context, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(record, s.now())
	filePath, ok := s.path(record.ID)
	if !ok {
		return errors.Inputf("record id must be a UUID: %s", record.ID)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.Storage("failed to marshal record", err)
	}

	// write then rename so readers never see a partial file
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Storage("failed to write record", err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		_ = os.Remove(tmp)
		return errors.Storage("failed to write record", err)
	}

	return nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filePath, ok := s.path(id)
	if !ok {
		return nil, errors.NotFound("quote", id)
	}
	return readRecord(filePath, id)
}

func readRecord(filePath, id string) (*Record, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("quote", id)
		}
		return nil, errors.Storage("failed to read record", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Storage("failed to unmarshal record", err)
	}
	return &record, nil
}

func (s *FileStore) List(ctx context.Context, filter *Filter) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, errors.Storage("failed to read history directory", err)
	}

	var records []*Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := readRecord(filepath.Join(s.basePath, entry.Name()), entry.Name())
		if err != nil {
			// Skip unreadable files
			continue
		}
		records = append(records, record)
	}

	return filter.apply(records), nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filePath, ok := s.path(id)
	if !ok {
		return errors.NotFound("quote", id)
	}
	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound("quote", id)
		}
		return errors.Storage("failed to delete record", err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
