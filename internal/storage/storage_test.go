package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	s, err := OpenFile(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("expected missing file to open, got %v", err)
	}
	if _, ok := s.Get("highScore"); ok {
		t.Errorf("expected empty store")
	}
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.json")

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.Set("highScore", "35")

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok := reopened.Get("highScore"); !ok || v != "35" {
		t.Errorf("expected persisted value 35, got %q (present=%v)", v, ok)
	}

	// Временные файлы не должны оставаться рядом
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the store file in dir, got %d entries", len(entries))
	}
}

func TestFileStoreCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("expected corrupt file to be tolerated, got %v", err)
	}
	if _, ok := s.Get("highScore"); ok {
		t.Errorf("expected corrupt store to read as empty")
	}
}

func TestFileStoreUnwritableKeepsValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "best.json")
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	s.Set("highScore", "10")

	if v, _ := s.Get("highScore"); v != "10" {
		t.Errorf("expected in-memory value to survive a failed flush, got %q", v)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	s.Set("k", "v")
	if v, ok := s.Get("k"); !ok || v != "v" {
		t.Errorf("expected v, got %q", v)
	}
	if s.Writes != 1 {
		t.Errorf("expected 1 write, got %d", s.Writes)
	}
}

func TestOpenFallsBackToMemory(t *testing.T) {
	// Каталог вместо файла не читается
	s := Open(t.TempDir())
	if _, ok := s.(*MemoryStore); !ok {
		t.Fatalf("expected memory store fallback, got %T", s)
	}

	s = Open(filepath.Join(t.TempDir(), "best.json"))
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("expected file store, got %T", s)
	}
}
