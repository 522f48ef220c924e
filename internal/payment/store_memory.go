package payment

import (
	"context"
	"sync"

	"plotdesk/pkg/platform/sentinel"
)

// MemoryStore is the in-process Store used in tests and local development.
type MemoryStore struct {
	mu       sync.RWMutex
	byOrder  map[string]*Booking
	bookings []*Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byOrder: make(map[string]*Booking)}
}

func (s *MemoryStore) SaveBooking(_ context.Context, b *Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byOrder[b.OrderID]; exists {
		return sentinel.ErrAlreadyUsed
	}
	clone := *b
	s.byOrder[b.OrderID] = &clone
	s.bookings = append(s.bookings, &clone)
	return nil
}

func (s *MemoryStore) FindByOrderID(_ context.Context, orderID string) (*Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.byOrder[orderID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

// Bookings returns a snapshot of everything saved, oldest first.
func (s *MemoryStore) Bookings() []*Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}
