package domain

// VisitTypeValues distinguishes inpatient from outpatient visits.
var VisitTypeValues = []string{"IP", "OP"}

// HospitalVisit records a client taken to hospital. Discharge may legally
// predate the visit date here: no cross-field ordering rule exists, only
// per-field format checks.
type HospitalVisit struct {
	FormMeta

	FileNumber         string   `json:"fileNumber"`
	Name               string   `json:"name"`
	TypeOfVisit        string   `json:"typeOfVisit"`
	HospitalName       string   `json:"hospitalName"`
	DateOfVisit        string   `json:"dateOfVisit"`
	DateOfDischarge    string   `json:"dateOfDischarge,omitempty"`
	Reason             string   `json:"reason"`
	CostToOrganization *float64 `json:"costToOrganization,omitempty"`
	Location           string   `json:"location,omitempty"`
	ResidingPlace      string   `json:"residingPlace,omitempty"`
}

func (h *HospitalVisit) Validate() []string {
	return Violations([]Rule{
		{"facility", "Facility is required", func() bool { return notEmpty(h.Facility) }},
		{"fileNumber", "File number is required", func() bool { return notEmpty(h.FileNumber) }},
		{"name", "Name is required", func() bool { return notEmpty(h.Name) }},
		{"typeOfVisit", "Invalid visit type", func() bool { return oneOf(h.TypeOfVisit, VisitTypeValues) }},
		{"hospitalName", "Hospital name is required", func() bool { return notEmpty(h.HospitalName) }},
		{"dateOfVisit", "Invalid date format", func() bool { return isDate(h.DateOfVisit) }},
		{"reason", "Reason for visit is required", func() bool { return notEmpty(h.Reason) }},
		{"dateOfDischarge", "Invalid date format", func() bool { return optionalDate(h.DateOfDischarge) }},
	})
}
