package booking

import (
	"fmt"
	"sync"

	"laundr/models"
)

// BookingStore owns the in-memory booking records. Bookings are never
// deleted; terminal records are retained for audit and analytics.
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

// NewBookingStore returns an empty booking store.
func NewBookingStore() *BookingStore {
	return &BookingStore{bookings: make(map[string]models.Booking)}
}

// Insert adds a new booking record. Inserting an existing id is an error.
func (s *BookingStore) Insert(b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bookings[b.ID]; exists {
		return fmt.Errorf("booking %s already exists", b.ID)
	}
	s.bookings[b.ID] = b
	return nil
}

// Get returns a copy of the booking with the given id.
func (s *BookingStore) Get(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	return b, ok
}

// Save overwrites an existing booking record.
func (s *BookingStore) Save(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
}

// All returns a copy of every booking record.
func (s *BookingStore) All() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		all = append(all, b)
	}
	return all
}
