package project

import (
	"context"
	"sort"
	"sync"

	"plotdesk/pkg/platform/sentinel"
)

// MemoryStore is the in-process Store used in tests and local development.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string]*Project
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make(map[string]*Project)}
}

func (s *MemoryStore) Save(_ context.Context, p *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *p
	s.projects[p.Slug] = &clone
	return nil
}

// List returns projects ordered by name.
func (s *MemoryStore) List(_ context.Context) ([]*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Project, 0, len(s.projects))
	for _, p := range s.projects {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) FindBySlug(_ context.Context, slug string) (*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[slug]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *p
	return &clone, nil
}
