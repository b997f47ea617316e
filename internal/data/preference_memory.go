package data

import (
	"context"
	"maps"
	"sync"

	"github.com/bluelatex/blue-web/internal/ports"
)

var _ ports.PreferenceStore = (*MemoryPreferenceStore)(nil)

// MemoryPreferenceStore keeps preferences in process memory. Values are lost on restart.
type MemoryPreferenceStore struct {
	mu       sync.RWMutex
	profiles map[string]map[string]string
}

// NewMemoryPreferenceStore creates an empty store.
func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{profiles: make(map[string]map[string]string)}
}

// GetAll returns a copy of the profile's values.
func (s *MemoryPreferenceStore) GetAll(_ context.Context, profileID string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.profiles[profileID]))
	maps.Copy(out, s.profiles[profileID])
	return out, nil
}

// Set upserts the given keys.
func (s *MemoryPreferenceStore) Set(_ context.Context, profileID string, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[profileID]
	if !ok {
		p = make(map[string]string, len(values))
		s.profiles[profileID] = p
	}
	maps.Copy(p, values)
	return nil
}
