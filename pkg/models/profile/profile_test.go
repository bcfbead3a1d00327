package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.json")

	first := Open(path)
	if got := RecordVisit(first); got != 1 {
		t.Fatalf("first visit: got %d want 1", got)
	}
	if first.Volatile() {
		t.Fatalf("store should not be volatile")
	}

	second := Open(path)
	if got := second.Get(); got != 1 {
		t.Fatalf("reopened get: got %d want 1", got)
	}
	if got := RecordVisit(second); got != 2 {
		t.Fatalf("second visit: got %d want 2", got)
	}

	second.Set(40)
	if got := Open(path).Increment(); got != 41 {
		t.Fatalf("increment after set: got %d want 41", got)
	}
}

func TestStoreCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Open(path)
	if got := s.Increment(); got != 1 {
		t.Fatalf("got %d want 1", got)
	}
	if s.Volatile() {
		t.Fatalf("corrupt contents should not disable persistence")
	}
}

func TestStoreFallsBackToMemory(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be makes both read and write fail
	path := filepath.Join(dir, "profile.json")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	s := Open(path)
	if got := s.Increment(); got != 1 {
		t.Fatalf("first increment: got %d want 1", got)
	}
	if !s.Volatile() {
		t.Fatalf("store should have fallen back to memory")
	}
	if got := s.Increment(); got != 2 {
		t.Fatalf("second increment: got %d want 2", got)
	}
	s.Set(7)
	if got := s.Get(); got != 7 {
		t.Fatalf("get after set: got %d want 7", got)
	}
}

func TestMemoryOnlyStore(t *testing.T) {
	s := Open("")
	if !s.Volatile() {
		t.Fatalf("empty path should be memory only")
	}
	if got := RecordVisit(s); got != 1 {
		t.Fatalf("got %d want 1", got)
	}
}
