// Package routes holds the static screen-name to path table of the
// consultation journey. The stores never branch on these; they exist for the
// navigation layer and are exposed read-only over the API.
package routes

// Screen paths, in journey order.
const (
	Home              = "/"
	SymptomIntake     = "/consultation/symptoms"
	MedicalProfile    = "/consultation/medical-profile"
	AddressKYC        = "/consultation/address"
	DoctorSelection   = "/consultation/doctors"
	DoctorChat        = "/consultation/chat"
	Prescription      = "/consultation/prescription"
	PharmacySelection = "/consultation/pharmacies"
	OrderConfirmation = "/consultation/order"
)

// Table maps logical screen names to their paths.
func Table() map[string]string {
	return map[string]string{
		"home":               Home,
		"symptom_intake":     SymptomIntake,
		"medical_profile":    MedicalProfile,
		"address_kyc":        AddressKYC,
		"doctor_selection":   DoctorSelection,
		"doctor_chat":        DoctorChat,
		"prescription":       Prescription,
		"pharmacy_selection": PharmacySelection,
		"order_confirmation": OrderConfirmation,
	}
}
