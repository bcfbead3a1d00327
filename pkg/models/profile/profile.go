package profile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// PlayerProfile is the document persisted between launches.
type PlayerProfile struct {
	PlayCount  int       `json:"playCount"`
	LastPlayed time.Time `json:"last_played"`
}

// Counter is a persisted integer counter.
type Counter interface {
	Get() int
	Increment() int
	Set(n int)
}

// Store keeps the visit counter in a JSON file. Any storage failure switches
// it to an in-memory counter for the rest of the process.
type Store struct {
	path     string
	mem      int
	volatile bool
	now      func() time.Time
}

// Open returns a store backed by path. An empty path gives a memory-only store.
func Open(path string) *Store {
	return &Store{
		path:     path,
		volatile: path == "",
		now:      time.Now,
	}
}

// DefaultPath is the profile location under the user config directory, or ""
// when the platform has none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "trafficdodge", "profile.json")
}

// Volatile reports whether the store has fallen back to memory.
func (s *Store) Volatile() bool {
	return s.volatile
}

func (s *Store) Get() int {
	if s.volatile {
		return s.mem
	}
	p, err := s.load()
	if err != nil {
		s.volatile = true
		return s.mem
	}
	s.mem = p.PlayCount
	return p.PlayCount
}

func (s *Store) Set(n int) {
	s.mem = n
	if s.volatile {
		return
	}
	if err := s.save(PlayerProfile{PlayCount: n, LastPlayed: s.now()}); err != nil {
		s.volatile = true
	}
}

func (s *Store) Increment() int {
	n := s.Get() + 1
	s.Set(n)
	return n
}

func (s *Store) load() (*PlayerProfile, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &PlayerProfile{}, nil
	}
	if err != nil {
		return nil, err
	}

	var p PlayerProfile
	if err := json.Unmarshal(data, &p); err != nil {
		// unreadable contents count as a fresh profile
		return &PlayerProfile{}, nil
	}
	if p.PlayCount < 0 {
		p.PlayCount = 0
	}
	return &p, nil
}

func (s *Store) save(p PlayerProfile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// RecordVisit bumps the counter once for this launch and returns the new total.
func RecordVisit(c Counter) int {
	return c.Increment()
}
