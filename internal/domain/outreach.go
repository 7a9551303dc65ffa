package domain

// GenderValues is the closed set accepted for gender fields.
var GenderValues = []string{"Male", "Female"}

// Outreach is one community outreach contact. The date/month/year fields are
// plain bounded integers recorded separately, not a composed calendar date.
type Outreach struct {
	FormMeta

	SNo                     *int   `json:"sno"`
	District                string `json:"district"`
	Date                    *int   `json:"date,omitempty"`
	Month                   *int   `json:"month,omitempty"`
	Year                    *int   `json:"year,omitempty"`
	Age                     *int   `json:"age,omitempty"`
	Area                    string `json:"area,omitempty"`
	Taluk                   string `json:"taluk,omitempty"`
	Name                    string `json:"name"`
	Gender                  string `json:"gender"`
	PersonWithMentalIllness string `json:"personWithMentalIllness,omitempty"`
	ServiceProvided         string `json:"serviceProvided,omitempty"`
	Category                string `json:"category,omitempty"`
	Tier                    string `json:"tier,omitempty"`
	Notes                   string `json:"notes,omitempty"`
	DoneBy                  string `json:"doneBy,omitempty"`
}

func (o *Outreach) Validate() []string {
	return Violations([]Rule{
		{"facility", "Facility is required", func() bool { return notEmpty(o.Facility) }},
		{"sno", "Serial number must be a number", func() bool { return o.SNo != nil }},
		{"district", "District is required", func() bool { return notEmpty(o.District) }},
		{"name", "Name is required", func() bool { return notEmpty(o.Name) }},
		{"gender", "Invalid gender", func() bool { return oneOf(o.Gender, GenderValues) }},
		{"date", "Date must be between 1 and 31", func() bool { return optionalRange(o.Date, 1, 31) }},
		{"month", "Month must be between 1 and 12", func() bool { return optionalRange(o.Month, 1, 12) }},
		{"year", "Year must be 2000 or later", func() bool { return optionalMin(o.Year, 2000) }},
	})
}
