package domain

// ProgramTypeValues is the closed set for awareness meeting kinds.
var ProgramTypeValues = []string{"Awareness program", "Grievance meeting", "MHRB"}

// AwarenessMeeting records one community program or review meeting. Every
// declared field is required.
type AwarenessMeeting struct {
	FormMeta

	SerialNo             *int   `json:"serialNo"`
	DateOfProgram        string `json:"dateOfProgram"`
	TypeOfProgram        string `json:"typeOfProgram"`
	Topic                string `json:"topic"`
	ResourcePerson       string `json:"resourcePerson"`
	NumberOfParticipants *int   `json:"numberOfParticipants"`
}

func (a *AwarenessMeeting) Validate() []string {
	return Violations([]Rule{
		{"facility", "Facility is required", func() bool { return notEmpty(a.Facility) }},
		{"serialNo", "Serial number is required", func() bool { return a.SerialNo != nil }},
		{"dateOfProgram", "Invalid date format", func() bool { return isDate(a.DateOfProgram) }},
		{"typeOfProgram", "Invalid program type", func() bool { return oneOf(a.TypeOfProgram, ProgramTypeValues) }},
		{"topic", "Topic is required", func() bool { return notEmpty(a.Topic) }},
		{"resourcePerson", "Resource person is required", func() bool { return notEmpty(a.ResourcePerson) }},
		{"numberOfParticipants", "Number of participants must be a number", func() bool { return a.NumberOfParticipants != nil }},
	})
}
