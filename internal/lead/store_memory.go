package lead

import (
	"context"
	"sync"
)

// MemoryStore is the in-process Store used in tests and local development.
type MemoryStore struct {
	mu    sync.RWMutex
	leads []*Lead
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, l *Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *l
	s.leads = append(s.leads, &clone)
	return nil
}

// ListRecent returns the newest leads first.
func (s *MemoryStore) ListRecent(_ context.Context, limit int) ([]*Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.leads)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*Lead, 0, n)
	for i := len(s.leads) - 1; i >= 0 && len(out) < n; i-- {
		clone := *s.leads[i]
		out = append(out, &clone)
	}
	return out, nil
}
