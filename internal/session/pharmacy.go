package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/consult/consult/internal/model"
)

// PharmacyStore holds three independent-but-related pieces of fulfillment
// state: the selected pharmacy, the working prescription-item list, and the
// finalized order once placed.
type PharmacyStore struct {
	mu       sync.RWMutex
	selected *model.Pharmacy
	items    []model.PrescriptionItem
	order    *model.PharmacyOrder
}

// PharmacySnapshot is a composite read of all three fields, taken under a
// single lock acquisition.
type PharmacySnapshot struct {
	Selected *model.Pharmacy          `json:"selected"`
	Items    []model.PrescriptionItem `json:"items"`
	Order    *model.PharmacyOrder     `json:"order"`
}

// NewPharmacyStore returns a PharmacyStore in its initial empty state.
func NewPharmacyStore() *PharmacyStore {
	return &PharmacyStore{items: []model.PrescriptionItem{}}
}

// SelectPharmacy replaces the selection unconditionally.
func (s *PharmacyStore) SelectPharmacy(p model.Pharmacy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &p
}

// SetPrescriptionItems replaces the working list wholesale; used when the
// prescription is (re)loaded. Not an incremental append.
func (s *PharmacyStore) SetPrescriptionItems(items []model.PrescriptionItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]model.PrescriptionItem(nil), items...)
}

// PlaceOrder records the finalized order. The caller is responsible for
// constructing an order consistent with its own view of the selection and
// working list; the store does not cross-check either. The stored order is a
// value snapshot, immune to later selection changes. An order arriving with
// a zero ID or CreatedAt gets them stamped here -- the one place a store
// synthesizes identity.
func (s *PharmacyStore) PlaceOrder(o model.PharmacyOrder) model.PharmacyOrder {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	o.Items = append([]model.PrescriptionItem(nil), o.Items...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = &o
	return o
}

// MarkDefault replaces the currently-selected pharmacy with a copy whose
// IsDefault flag is true only when its id matches pharmacyID, keeping the
// at-most-one-default invariant on the selected pharmacy. When no pharmacy
// is selected this is a no-op, not an error. It never reaches into any
// externally-held list of pharmacies.
func (s *PharmacyStore) MarkDefault(pharmacyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return
	}
	p := *s.selected
	p.IsDefault = p.ID == pharmacyID
	s.selected = &p
}

// Reset restores the selection, working list, and order to their initial
// empty state in one atomic update.
func (s *PharmacyStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.items = []model.PrescriptionItem{}
	s.order = nil
}

// Selected returns a copy of the selected pharmacy, or nil when none.
func (s *PharmacyStore) Selected() *model.Pharmacy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPharmacy(s.selected)
}

// PrescriptionItems returns a snapshot copy of the working list.
func (s *PharmacyStore) PrescriptionItems() []model.PrescriptionItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.PrescriptionItem, len(s.items))
	copy(out, s.items)
	return out
}

// Order returns a copy of the placed order, or nil before checkout.
func (s *PharmacyStore) Order() *model.PharmacyOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOrder(s.order)
}

// Snapshot reads all three fields under one lock acquisition.
func (s *PharmacyStore) Snapshot() PharmacySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]model.PrescriptionItem, len(s.items))
	copy(items, s.items)
	return PharmacySnapshot{
		Selected: copyPharmacy(s.selected),
		Items:    items,
		Order:    copyOrder(s.order),
	}
}

func copyPharmacy(p *model.Pharmacy) *model.Pharmacy {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}

func copyOrder(o *model.PharmacyOrder) *model.PharmacyOrder {
	if o == nil {
		return nil
	}
	out := *o
	out.Items = append([]model.PrescriptionItem(nil), o.Items...)
	return &out
}
