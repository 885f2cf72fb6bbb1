package domain

// VitalsDraft is the vitals logger form.
type VitalsDraft struct {
	HeartRate   string
	Temperature string
}

// VitalsPayload is the POST /api/vitals body.
type VitalsPayload struct {
	HeartRate   string `json:"heartRate"`
	Temperature string `json:"temp"`
	UserID      int64  `json:"user_id"`
}

// SymptomDraft is the symptom reporter form.
type SymptomDraft struct {
	Description string
}

// SymptomPayload is the POST /api/symptoms body.
type SymptomPayload struct {
	UserID      int64  `json:"user_id"`
	Description string `json:"description"`
}

// PrescriptionDraft is the prescription issuer form.
type PrescriptionDraft struct {
	PatientName string
	Medication  string
}

// PrescriptionPayload is the POST /api/prescriptions body.
type PrescriptionPayload struct {
	PatientName string `json:"patientName"`
	Medication  string `json:"meds"`
	UserID      int64  `json:"user_id"`
}

// SpecialistQuery holds the search filters; empty fields are not sent.
type SpecialistQuery struct {
	Specialty string
	Location  string
}

// Specialist is one specialist search result.
type Specialist struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
}

// ActionReceipt is the ad-hoc {message} body returned by write endpoints.
type ActionReceipt struct {
	Message string `json:"message"`
}

// Portal endpoints.
const (
	EndpointHealth        = "/api/health"
	EndpointLogin         = "/api/login"
	EndpointRegister      = "/api/register"
	EndpointVitals        = "/api/vitals"
	EndpointSymptoms      = "/api/symptoms"
	EndpointPrescriptions = "/api/prescriptions"
	EndpointSpecialists   = "/api/search/specialists"
)
