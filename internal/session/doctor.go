package session

import (
	"sync"

	"github.com/consult/consult/internal/model"
)

// DoctorStore holds at most one currently-selected doctor. The selection is
// always exactly one Doctor or none, never a collection.
type DoctorStore struct {
	mu       sync.RWMutex
	selected *model.Doctor
}

// NewDoctorStore returns a DoctorStore with no selection.
func NewDoctorStore() *DoctorStore {
	return &DoctorStore{}
}

// Select replaces the current selection unconditionally; selecting a new
// doctor discards the old selection.
func (s *DoctorStore) Select(d model.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &d
}

// Clear sets the selection to none. Idempotent.
func (s *DoctorStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Selected returns a copy of the current selection, or nil when none.
func (s *DoctorStore) Selected() *model.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	d := *s.selected
	return &d
}
