package session

import (
	"testing"

	"github.com/consult/consult/internal/model"
)

func address() model.AddressData {
	return model.AddressData{
		Email:        "jan@example.com",
		Phone:        "+49 30 1234567",
		AddressLine1: "Hauptstrasse 1",
		AddressLine2: "Apt 4",
		PostalCode:   "10115",
		City:         "Berlin",
	}
}

func TestUserStore_InitialProfileIsNil(t *testing.T) {
	s := NewUserStore()
	if s.Profile() != nil {
		t.Error("expected nil profile before first write")
	}
}

func TestUserStore_FirstWriteDefaultsOtherFields(t *testing.T) {
	s := NewUserStore()
	s.SetKYCCompleted(true)

	p := s.Profile()
	if p == nil {
		t.Fatal("expected profile created on first write")
	}
	if p.Address != nil {
		t.Errorf("expected nil address on default-fill, got %+v", p.Address)
	}
	if !p.KYCCompleted {
		t.Error("expected KYC flag set")
	}
	if p.HIPAACompliant {
		t.Error("expected HIPAA flag defaulted to false")
	}
}

func TestUserStore_SetAddressOnNilProfile(t *testing.T) {
	s := NewUserStore()
	s.SetAddress(address())

	p := s.Profile()
	if p == nil || p.Address == nil {
		t.Fatal("expected profile with address")
	}
	if p.KYCCompleted || p.HIPAACompliant {
		t.Error("expected both flags defaulted to false")
	}
	if p.Address.City != "Berlin" {
		t.Errorf("expected city Berlin, got %s", p.Address.City)
	}
}

func TestUserStore_SettersPreserveExistingFields(t *testing.T) {
	s := NewUserStore()
	s.SetAddress(address())
	s.SetKYCCompleted(true)
	s.SetHIPAACompliant(true)

	p := s.Profile()
	if p.Address == nil {
		t.Error("expected address preserved across flag writes")
	}
	if !p.KYCCompleted || !p.HIPAACompliant {
		t.Errorf("expected both flags set, got %+v", p)
	}
}

func TestUserStore_ResetDestroysProfile(t *testing.T) {
	s := NewUserStore()
	s.SetHIPAACompliant(true)
	s.Reset()

	if s.Profile() != nil {
		t.Error("expected nil profile after reset, not a defaulted one")
	}
}

func TestUserStore_ProfileSnapshotIsACopy(t *testing.T) {
	s := NewUserStore()
	s.SetAddress(address())

	p := s.Profile()
	p.Address.City = "mutated"
	p.KYCCompleted = true

	fresh := s.Profile()
	if fresh.Address.City != "Berlin" {
		t.Error("mutating a snapshot address leaked into store state")
	}
	if fresh.KYCCompleted {
		t.Error("mutating a snapshot flag leaked into store state")
	}
}
