package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSON-backed slots. One human-readable file per key under a directory.
// No locking; fine for a local single-user CLI.

const fileExt = ".json"

type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created on first Put.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+fileExt)
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read file: %w", err)
	}
	return b, true, nil
}

func (s *Store) Put(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	// Keep the file readable; fall back to the raw bytes if they are not JSON.
	var buf bytes.Buffer
	if err := json.Indent(&buf, value, "", "  "); err == nil {
		value = buf.Bytes()
	}
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
