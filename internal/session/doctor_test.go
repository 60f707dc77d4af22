package session

import (
	"testing"

	"github.com/consult/consult/internal/model"
)

func doctor(id, name string) model.Doctor {
	return model.Doctor{
		ID:         id,
		Name:       name,
		Title:      "Dr.",
		Specialty:  "General Medicine",
		Experience: "12 years",
		Location:   "Berlin",
	}
}

func TestDoctorStore_SelectReplacesPrior(t *testing.T) {
	s := NewDoctorStore()
	s.Select(doctor("d1", "Alice Weber"))
	s.Select(doctor("d2", "Jonas Krup"))

	got := s.Selected()
	if got == nil {
		t.Fatal("expected a selection")
	}
	if got.ID != "d2" {
		t.Errorf("expected d2 selected, got %s", got.ID)
	}
}

func TestDoctorStore_ClearRegardlessOfPrior(t *testing.T) {
	s := NewDoctorStore()
	if s.Selected() != nil {
		t.Fatal("expected no initial selection")
	}
	s.Select(doctor("d1", "Alice Weber"))
	s.Clear()
	if s.Selected() != nil {
		t.Error("expected no selection after clear")
	}
}

func TestDoctorStore_ClearIdempotent(t *testing.T) {
	s := NewDoctorStore()
	s.Select(doctor("d1", "Alice Weber"))
	s.Clear()
	s.Clear()
	if s.Selected() != nil {
		t.Error("expected no selection after double clear")
	}
}

func TestDoctorStore_SelectedIsACopy(t *testing.T) {
	s := NewDoctorStore()
	s.Select(doctor("d1", "Alice Weber"))

	snap := s.Selected()
	snap.Name = "mutated"

	if s.Selected().Name != "Alice Weber" {
		t.Error("mutating a snapshot leaked into store state")
	}
}
