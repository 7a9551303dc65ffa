package domain

// MaritalStatusValues is the closed set for the mastersheet marital status.
var MaritalStatusValues = []string{"Single", "Married", "Divorced", "Separated", "Widow"}

// CurrentStatusValues is the closed set for a client's case status.
var CurrentStatusValues = []string{
	"IP",
	"Family reintegration",
	"NGO reintegration",
	"Home again reintegration",
	"Left by choice",
	"Expired",
}

// Mastersheet is the full case record for one client: identity, psychiatric
// and social history, homelessness background, family structure, entitlements
// and reintegration outcome. Beyond the handful of validated fields, the
// columns are free text captured as the caseworkers wrote them.
type Mastersheet struct {
	FormMeta

	District             string `json:"district"`
	FileNo               string `json:"fileNo"`
	Name                 string `json:"name"`
	DateOfAdmission      string `json:"dateOfAdmission"`
	Age                  *int   `json:"age"`
	AgeCategory          string `json:"ageCategory,omitempty"`
	Gender               string `json:"gender"`
	MaritalStatus        string `json:"maritalStatus"`
	PsychiatricDiagnosis string `json:"psychiatricDiagnosis"`

	Comorbid                     string `json:"comorbid,omitempty"`
	PsychiatricComorbidity       string `json:"psychiatricComorbidity,omitempty"`
	GeneralHealthComorbidity     string `json:"generalHealthComorbidity,omitempty"`
	PlaceOfOrigin                string `json:"placeOfOrigin,omitempty"`
	StateCategory                string `json:"stateCategory,omitempty"`
	SourceOfReferral             string `json:"sourceOfReferral,omitempty"`
	PlaceOfRescueArea            string `json:"placeOfRescueArea,omitempty"`
	PlaceOfRescueDistrict        string `json:"placeOfRescueDistrict,omitempty"`
	DurationOfHomelessnessMonths string `json:"durationOfHomelessnessMonths,omitempty"`
	EpisodesOfHomelessness       string `json:"episodesOfHomelessness,omitempty"`
	ReasonsForHomelessness       string `json:"reasonsForHomelessness,omitempty"`
	Unemployed                   string `json:"unemployed,omitempty"`
	WanderingBehaviour           string `json:"wanderingBehaviour,omitempty"`
	SubstanceAbuse               string `json:"substanceAbuse,omitempty"`
	IntellectualDisability       string `json:"intellectualDisability,omitempty"`
	AbandonedByFamily            string `json:"abandonedByFamily,omitempty"`
	LackOfAccessToMHCare         string `json:"lackOfAccessToMHCare,omitempty"`
	LossOfContactWithFamily      string `json:"lossOfContactWithFamily,omitempty"`
	LackOfAcceptanceByFamily     string `json:"lackOfAcceptanceByFamily,omitempty"`
	MentalIllness                string `json:"mentalIllness,omitempty"`
	FamilyDispute                string `json:"familyDispute,omitempty"`
	CommunityDispute             string `json:"communityDispute,omitempty"`
	LossOfPrimaryCaregiver       string `json:"lossOfPrimaryCaregiver,omitempty"`
	Abuse                        string `json:"abuse,omitempty"`
	PhysicalInjury               string `json:"physicalInjury,omitempty"`
	LackOfMedicalCompliance      string `json:"lackOfMedicalCompliance,omitempty"`
	RomanticRelationship         string `json:"romanticRelationship,omitempty"`
	SpiritualPathways            string `json:"spiritualPathways,omitempty"`
	FinancialLoss                string `json:"financialLoss,omitempty"`
	Poverty                      string `json:"poverty,omitempty"`
	HistoryOfEmployment          string `json:"historyOfEmployment,omitempty"`
	HistoryOfEmploymentCleaned   string `json:"historyOfEmploymentCleaned,omitempty"`
	IncomePM                     string `json:"incomePM,omitempty"`
	PreviousTreatment            string `json:"previousTreatment,omitempty"`
	HistoryOfAbuse               string `json:"historyOfAbuse,omitempty"`
	TypeOfAbuse                  string `json:"typeOfAbuse,omitempty"`

	CurrentStatus        string `json:"currentStatus"`
	DateOfExit           string `json:"dateOfExit,omitempty"`
	DOS                  string `json:"dos,omitempty"`
	ReintegratedTo       string `json:"reintegratedTo,omitempty"`
	ReintegratedState    string `json:"reintegratedState,omitempty"`
	ReintegratedDistrict string `json:"reintegratedDistrict,omitempty"`
	FollowUpStatus       string `json:"followUpStatus,omitempty"`

	FamilyStructure           string `json:"familyStructure,omitempty"`
	NoOfChildren              string `json:"noOfChildren,omitempty"`
	ChildrenGenderAndAge      string `json:"childrenGenderAndAge,omitempty"`
	GenderOfParentsWithMI     string `json:"genderOfParentsWithMI,omitempty"`
	PrimaryCG                 string `json:"primaryCG,omitempty"`
	CGRelationship            string `json:"cgRelationship,omitempty"`
	CGAge                     string `json:"cgAge,omitempty"`
	OccupationOfCG            string `json:"occupationOfCG,omitempty"`
	IncomeCG                  string `json:"incomeCG,omitempty"`
	CurrentOccupationOfClient string `json:"currentOccupationOfClient,omitempty"`
	ClientIncome              string `json:"clientIncome,omitempty"`

	SocialEntitlement string `json:"socialEntitlement,omitempty"`
	AadharCard        string `json:"aadharCard,omitempty"`
	DisabilityCard    string `json:"disabilityCard,omitempty"`
	RationCard        string `json:"rationCard,omitempty"`
	VoterID           string `json:"voterID,omitempty"`
	BankAccount       string `json:"bankAccount,omitempty"`
	DrivingLicense    string `json:"drivingLicense,omitempty"`

	AftercareStatus string `json:"aftercareStatus,omitempty"`
	TreatmentOption string `json:"treatmentOption,omitempty"`
}

func (m *Mastersheet) Validate() []string {
	return Violations([]Rule{
		{"facility", "Facility is required", func() bool { return notEmpty(m.Facility) }},
		{"district", "District is required", func() bool { return notEmpty(m.District) }},
		{"fileNo", "File No is required", func() bool { return notEmpty(m.FileNo) }},
		{"name", "Name is required", func() bool { return notEmpty(m.Name) }},
		{"dateOfAdmission", "Invalid date format", func() bool { return isDate(m.DateOfAdmission) }},
		{"age", "Age must be a number", func() bool { return m.Age != nil }},
		{"gender", "Invalid gender", func() bool { return oneOf(m.Gender, GenderValues) }},
		{"maritalStatus", "Invalid marital status", func() bool { return oneOf(m.MaritalStatus, MaritalStatusValues) }},
		{"psychiatricDiagnosis", "Psychiatric Diagnosis is required", func() bool { return notEmpty(m.PsychiatricDiagnosis) }},
		{"currentStatus", "Invalid current status", func() bool { return oneOf(m.CurrentStatus, CurrentStatusValues) }},
		{"dateOfExit", "Invalid date format", func() bool { return optionalDate(m.DateOfExit) }},
	})
}
