package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pagetools/internal/application/port/output"
)

var _ output.StoragePort = (*LocalStore)(nil)

// LocalStore persists run artifacts on the local filesystem: a key-value
// directory for named blobs and an append-only JSONL dataset for records.
type LocalStore struct {
	root string

	mu sync.Mutex
}

func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		root = "storage"
	}
	for _, dir := range []string{kvDir(root), datasetDir(root)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
		}
	}
	return &LocalStore{root: root}, nil
}

func kvDir(root string) string      { return filepath.Join(root, "key-value-store") }
func datasetDir(root string) string { return filepath.Join(root, "dataset") }

func (s *LocalStore) SetValue(key string, data []byte, _ string) error {
	path := filepath.Join(kvDir(s.root), key)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// PushData appends one JSON line to the dataset. Serialized writes keep the
// file valid under concurrent runs.
func (s *LocalStore) PushData(record any) error {
	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(filepath.Join(datasetDir(s.root), "data.jsonl"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

func (s *LocalStore) URL(key string) string {
	abs, err := filepath.Abs(filepath.Join(kvDir(s.root), key))
	if err != nil {
		return filepath.Join(kvDir(s.root), key)
	}
	return "file://" + abs
}
