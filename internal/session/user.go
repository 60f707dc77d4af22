package session

import (
	"sync"

	"github.com/consult/consult/internal/model"
)

// UserStore holds the single per-session user profile. The profile is
// nullable: nil means "no profile yet", which is distinct from a profile
// whose fields carry their zero defaults. Every setter creates the profile
// on first write, so a setter on a nil profile yields a profile whose other
// fields take their defaults (nil address, false, false) rather than an
// error or a partially-unset object.
type UserStore struct {
	mu      sync.RWMutex
	profile *model.UserProfile
}

// NewUserStore returns a UserStore with no profile.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// profileOrDefault returns a value copy of existing, or a zero-field profile
// when existing is nil. Applied before every field update so defaulting is
// explicit rather than a side effect of the copy.
func profileOrDefault(existing *model.UserProfile) model.UserProfile {
	if existing == nil {
		return model.UserProfile{}
	}
	return *existing
}

// SetAddress sets the profile's address data, preserving the KYC and HIPAA
// flags when a profile already exists and defaulting them to false otherwise.
func (s *UserStore) SetAddress(data model.AddressData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := profileOrDefault(s.profile)
	p.Address = &data
	s.profile = &p
}

// SetKYCCompleted sets the KYC completion flag, preserving or defaulting the
// other fields.
func (s *UserStore) SetKYCCompleted(completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := profileOrDefault(s.profile)
	p.KYCCompleted = completed
	s.profile = &p
}

// SetHIPAACompliant sets the HIPAA acknowledgment flag, preserving or
// defaulting the other fields.
func (s *UserStore) SetHIPAACompliant(compliant bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := profileOrDefault(s.profile)
	p.HIPAACompliant = compliant
	s.profile = &p
}

// Reset destroys the profile entirely, returning it to nil -- the one
// operation that removes the profile rather than defaulting its fields.
func (s *UserStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
}

// Profile returns a snapshot copy of the profile, or nil when none exists.
// The address, when present, is copied too so callers cannot mutate stored
// state through the pointer.
func (s *UserStore) Profile() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	if p.Address != nil {
		addr := *p.Address
		p.Address = &addr
	}
	return &p
}
