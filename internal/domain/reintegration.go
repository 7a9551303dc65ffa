package domain

// ReintegratedWithValues is the closed set for the reintegration outcome.
var ReintegratedWithValues = []string{"Family", "NGO", "Home Again", "Other"}

// Reintegration records a client returned from a facility to family, an NGO
// or other placement.
type Reintegration struct {
	FormMeta

	SNo                    *int   `json:"sno"`
	District               string `json:"district"`
	FileNo                 string `json:"fileno"`
	Name                   string `json:"name"`
	Gender                 string `json:"gender"`
	DateOfAdmission        string `json:"dateOfAdmission,omitempty"`
	DateOfReintegration    string `json:"dateOfReintegration,omitempty"`
	DaysOfStay             *int   `json:"daysOfStay,omitempty"`
	ReintegratedWith       string `json:"reintegratedWith,omitempty"`
	Address                string `json:"address,omitempty"`
	Contact                string `json:"contact,omitempty"`
	State                  string `json:"state,omitempty"`
	ReintegratedToDistrict string `json:"reintegratedToDistrict,omitempty"`
	ACStatus               string `json:"acStatus,omitempty"`
	Reasons                string `json:"reasons,omitempty"`
	TreatmentOption        string `json:"treatmentOption,omitempty"`
}

func (r *Reintegration) Validate() []string {
	return Violations([]Rule{
		{"facility", "Facility is required", func() bool { return notEmpty(r.Facility) }},
		{"sno", "Serial number must be a number", func() bool { return r.SNo != nil }},
		{"district", "District is required", func() bool { return notEmpty(r.District) }},
		{"fileno", "File number is required", func() bool { return notEmpty(r.FileNo) }},
		{"name", "Name is required", func() bool { return notEmpty(r.Name) }},
		{"gender", "Invalid gender", func() bool { return oneOf(r.Gender, GenderValues) }},
		{"dateOfAdmission", "Invalid date format", func() bool { return optionalDate(r.DateOfAdmission) }},
		{"dateOfReintegration", "Invalid date format", func() bool { return optionalDate(r.DateOfReintegration) }},
		{"reintegratedWith", "Invalid reintegration type", func() bool { return optionalOneOf(r.ReintegratedWith, ReintegratedWithValues) }},
	})
}
