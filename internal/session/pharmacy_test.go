package session

import (
	"testing"

	"github.com/consult/consult/internal/model"
)

func pharmacy(id, name string) model.Pharmacy {
	return model.Pharmacy{
		ID:       id,
		Name:     name,
		Category: "24h",
		Address:  "Hauptstrasse 1",
		Distance: "0.8 km",
		Price:    "12.99",
	}
}

func items(ids ...string) []model.PrescriptionItem {
	out := make([]model.PrescriptionItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.PrescriptionItem{
			ID:       id,
			Name:     "Ibuprofen 400mg",
			Category: model.CategoryTablets,
			Quantity: "20",
		})
	}
	return out
}

func TestPharmacyStore_InitialState(t *testing.T) {
	s := NewPharmacyStore()
	snap := s.Snapshot()
	if snap.Selected != nil {
		t.Error("expected no initial selection")
	}
	if len(snap.Items) != 0 {
		t.Errorf("expected empty working list, got %d items", len(snap.Items))
	}
	if snap.Order != nil {
		t.Error("expected no initial order")
	}
}

func TestPharmacyStore_SelectReplacesPrior(t *testing.T) {
	s := NewPharmacyStore()
	s.SelectPharmacy(pharmacy("a", "City Pharmacy"))
	s.SelectPharmacy(pharmacy("b", "Central Pharmacy"))

	got := s.Selected()
	if got == nil || got.ID != "b" {
		t.Fatalf("expected pharmacy b selected, got %+v", got)
	}
}

func TestPharmacyStore_SetPrescriptionItemsWholesale(t *testing.T) {
	s := NewPharmacyStore()
	s.SetPrescriptionItems(items("p1", "p2"))
	s.SetPrescriptionItems(items("p3"))

	got := s.PrescriptionItems()
	if len(got) != 1 || got[0].ID != "p3" {
		t.Errorf("expected wholesale replace to [p3], got %+v", got)
	}
}

func TestPharmacyStore_MarkDefault_MatchingID(t *testing.T) {
	s := NewPharmacyStore()
	s.SelectPharmacy(pharmacy("a", "City Pharmacy"))
	s.MarkDefault("a")

	got := s.Selected()
	if !got.IsDefault {
		t.Error("expected selected pharmacy to be default after matching id")
	}
}

func TestPharmacyStore_MarkDefault_NonMatchingID(t *testing.T) {
	s := NewPharmacyStore()
	p := pharmacy("a", "City Pharmacy")
	p.IsDefault = true
	s.SelectPharmacy(p)
	s.MarkDefault("b")

	got := s.Selected()
	if got.IsDefault {
		t.Error("expected default flag cleared for non-matching id")
	}
}

func TestPharmacyStore_MarkDefault_NoSelectionIsNoop(t *testing.T) {
	s := NewPharmacyStore()
	s.MarkDefault("a")

	if s.Selected() != nil {
		t.Error("expected selection to stay nil")
	}
}

func TestPharmacyStore_OrderSnapshotImmuneToReselection(t *testing.T) {
	s := NewPharmacyStore()
	p1 := pharmacy("p1", "City Pharmacy")
	s.SelectPharmacy(p1)
	s.PlaceOrder(model.PharmacyOrder{
		Pharmacy:   p1,
		Items:      items("rx1"),
		TotalPrice: "24.50",
	})

	s.SelectPharmacy(pharmacy("p2", "Central Pharmacy"))

	order := s.Order()
	if order == nil {
		t.Fatal("expected a placed order")
	}
	if order.Pharmacy.ID != "p1" {
		t.Errorf("expected order pharmacy p1, got %s", order.Pharmacy.ID)
	}
}

func TestPharmacyStore_PlaceOrderStampsIDAndTime(t *testing.T) {
	s := NewPharmacyStore()
	placed := s.PlaceOrder(model.PharmacyOrder{
		Pharmacy:   pharmacy("a", "City Pharmacy"),
		TotalPrice: "9.99",
	})

	if placed.ID == "" {
		t.Error("expected order ID to be stamped")
	}
	if placed.CreatedAt.IsZero() {
		t.Error("expected order CreatedAt to be stamped")
	}
	stored := s.Order()
	if stored.ID != placed.ID {
		t.Errorf("expected stored order id %s, got %s", placed.ID, stored.ID)
	}
}

func TestPharmacyStore_PlaceOrderKeepsCallerIdentity(t *testing.T) {
	s := NewPharmacyStore()
	placed := s.PlaceOrder(model.PharmacyOrder{
		ID:         "order-7",
		Pharmacy:   pharmacy("a", "City Pharmacy"),
		TotalPrice: "9.99",
	})
	if placed.ID != "order-7" {
		t.Errorf("expected caller-supplied id preserved, got %s", placed.ID)
	}
}

func TestPharmacyStore_ResetRestoresAllThreeFields(t *testing.T) {
	s := NewPharmacyStore()
	s.SelectPharmacy(pharmacy("a", "City Pharmacy"))
	s.SetPrescriptionItems(items("p1", "p2"))
	s.PlaceOrder(model.PharmacyOrder{Pharmacy: pharmacy("a", "City Pharmacy"), TotalPrice: "5"})

	s.Reset()

	snap := s.Snapshot()
	if snap.Selected != nil {
		t.Error("expected selection nil after reset")
	}
	if len(snap.Items) != 0 {
		t.Errorf("expected empty working list after reset, got %d", len(snap.Items))
	}
	if snap.Order != nil {
		t.Error("expected order nil after reset")
	}
}

func TestPharmacyStore_SnapshotsAreCopies(t *testing.T) {
	s := NewPharmacyStore()
	s.SelectPharmacy(pharmacy("a", "City Pharmacy"))
	s.SetPrescriptionItems(items("p1"))
	s.PlaceOrder(model.PharmacyOrder{Pharmacy: pharmacy("a", "City Pharmacy"), Items: items("p1")})

	snap := s.Snapshot()
	snap.Selected.Name = "mutated"
	snap.Items[0].Name = "mutated"
	snap.Order.Items[0].Name = "mutated"

	fresh := s.Snapshot()
	if fresh.Selected.Name == "mutated" || fresh.Items[0].Name == "mutated" || fresh.Order.Items[0].Name == "mutated" {
		t.Error("mutating a snapshot leaked into store state")
	}
}
