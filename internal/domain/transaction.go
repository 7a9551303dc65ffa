package domain

// Transaction is one money movement (petty cash, travel support, etc.) for a
// client. Gender is free text here, unlike the outreach form.
type Transaction struct {
	FormMeta

	SNo           *int     `json:"sno"`
	Date          *int     `json:"date,omitempty"`
	Month         *int     `json:"month,omitempty"`
	Year          *int     `json:"year,omitempty"`
	Name          string   `json:"name"`
	Age           *int     `json:"age,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Amount        *float64 `json:"amount"`
	Purpose       string   `json:"purpose"`
	ModeOfPayment string   `json:"modeOfPayment"`
	Status        string   `json:"status,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

func (t *Transaction) Validate() []string {
	return Violations([]Rule{
		{"facility", "Facility is required", func() bool { return notEmpty(t.Facility) }},
		{"sno", "Serial number must be a number", func() bool { return t.SNo != nil }},
		{"name", "Name is required", func() bool { return notEmpty(t.Name) }},
		{"amount", "Amount must be a number", func() bool { return t.Amount != nil }},
		{"purpose", "Purpose is required", func() bool { return notEmpty(t.Purpose) }},
		{"modeOfPayment", "Mode of payment is required", func() bool { return notEmpty(t.ModeOfPayment) }},
		{"date", "Date must be between 1 and 31", func() bool { return optionalRange(t.Date, 1, 31) }},
		{"month", "Month must be between 1 and 12", func() bool { return optionalRange(t.Month, 1, 12) }},
		{"year", "Year must be 2000 or later", func() bool { return optionalMin(t.Year, 2000) }},
	})
}
