package signal

import (
	"maps"
	"sync"
)

// MemoryStore implements Store with a plain map. It is the mock bus used
// when no transport is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	signals map[string]int
	opts    options
}

// NewMemoryStore creates a store pre-seeded with a copy of seed.
// A nil seed starts empty.
func NewMemoryStore(seed map[string]int, opts ...Option) *MemoryStore {
	signals := make(map[string]int, len(seed))
	maps.Copy(signals, seed)
	return &MemoryStore{
		signals: signals,
		opts:    buildOptions(opts),
	}
}

// Write sets name to value.
func (s *MemoryStore) Write(name string, value int) {
	s.mu.Lock()
	s.signals[name] = value
	s.mu.Unlock()

	s.opts.wrote(name, value)
}

// Read returns the current value of name, or ok=false if it is absent.
func (s *MemoryStore) Read(name string) (int, bool) {
	s.mu.RLock()
	value, ok := s.signals[name]
	s.mu.RUnlock()

	s.opts.read(name, value, ok)
	return value, ok
}

// Snapshot returns a copy of every signal currently held.
// It does not log or notify observers.
func (s *MemoryStore) Snapshot() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.signals)
}
