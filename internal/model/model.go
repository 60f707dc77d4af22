// Package model holds the entities shared by every session store and by
// external consumers: the data model of a multi-step healthcare-consultation
// journey (symptom intake, medical profile, address/KYC, doctor selection,
// prescription, pharmacy fulfillment). Pure schema; no behavior.
package model

import "time"

// Message is a single chat message in the active conversation (doctor chat
// or medical-profile chat). Immutable once appended to a session.
type Message struct {
	Sender  string    `json:"sender"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

// Doctor is a practitioner available for consultation. Fetched externally;
// stores only reference it and never mutate it.
type Doctor struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Specialty  string  `json:"specialty"`
	Experience string  `json:"experience"`
	Location   string  `json:"location"`
	Initials   *string `json:"initials,omitempty"`
	Connected  *bool   `json:"connected,omitempty"`
}

// Pharmacy is a fulfillment location. Distance and Price are display strings
// as supplied by the external search flow. At most one pharmacy in the
// user's visible set carries IsDefault=true at any time.
type Pharmacy struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Address   string `json:"address"`
	Distance  string `json:"distance"`
	Price     string `json:"price"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// Dosage-form categories for PrescriptionItem.
const (
	CategoryTablets  = "tablets"
	CategoryCapsules = "capsules"
	CategoryOther    = "other"
)

// PrescriptionItem is one line of the prescription being fulfilled.
type PrescriptionItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
}

// PharmacyOrder aggregates one Pharmacy and the prescription items at the
// moment of checkout. It is a value snapshot, not a live reference: later
// changes to the selected pharmacy never reach into a placed order.
type PharmacyOrder struct {
	ID         string             `json:"id"`
	Pharmacy   Pharmacy           `json:"pharmacy"`
	Items      []PrescriptionItem `json:"items"`
	TotalPrice string             `json:"total_price"`
	PickupTime *string            `json:"pickup_time,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

// AddressData is the user's contact and delivery address. All fields are
// required strings once the address is set; "no address yet" is represented
// by a nil *AddressData on the profile, not by empty strings here.
type AddressData struct {
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	PostalCode   string `json:"postal_code"`
	City         string `json:"city"`
}

// UserProfile is the single per-session profile: address data plus the KYC
// and HIPAA acknowledgment flags gathered during the journey.
type UserProfile struct {
	Address        *AddressData `json:"address"`
	KYCCompleted   bool         `json:"kyc_completed"`
	HIPAACompliant bool         `json:"hipaa_compliant"`
}
