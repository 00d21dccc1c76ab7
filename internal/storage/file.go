// Package storage provides the durable key-value stores the best score is
// kept in.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// FileStore keeps string values in a small JSON object on disk. Every Set
// rewrites the whole file through a temp file and rename.
type FileStore struct {
	path   string
	values map[string]string
}

// OpenFile loads the store at path. A missing file is an empty store; a
// corrupt one is logged and treated as empty so the game still starts.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		log.Printf("storage: ignoring corrupt store %s: %v", path, err)
		s.values = make(map[string]string)
	}
	return s, nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores the value and flushes it to disk. Write failures are logged:
// the in-memory value stays so the running session keeps the new best.
func (s *FileStore) Set(key, value string) {
	s.values[key] = value
	if err := s.flush(); err != nil {
		log.Printf("storage: failed to save %s: %v", s.path, err)
	}
}

func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Store is what both stores share.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Open opens the file store at path, falling back to memory when the file
// cannot be read. An empty path means memory only.
func Open(path string) Store {
	if path == "" {
		return NewMemoryStore()
	}
	s, err := OpenFile(path)
	if err != nil {
		log.Printf("storage: %v; best score will not be saved", err)
		return NewMemoryStore()
	}
	return s
}
