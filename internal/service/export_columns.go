package service

import (
	"time"

	"banyan-data/internal/domain"
)

// Declared export schemas. Each form type has a fixed header and a row
// builder whose cells match the header positionally, so exported column
// order never depends on which fields a particular record happens to carry.

const exportTimeLayout = "2006-01-02 15:04:05"

func cellInt(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func cellFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func cellTime(t time.Time) interface{} {
	if t.IsZero() {
		return ""
	}
	return t.Format(exportTimeLayout)
}

func metaCells(m domain.FormMeta) []interface{} {
	return []interface{}{m.Facility, m.CreatedBy, cellTime(m.CreatedAt), cellTime(m.UpdatedAt)}
}

var outreachHeader = []string{
	"id", "sno", "district", "date", "month", "year", "age", "area", "taluk",
	"name", "gender", "personWithMentalIllness", "serviceProvided", "category",
	"tier", "notes", "doneBy",
	"facility", "createdBy", "createdAt", "updatedAt",
}

func outreachRow(r domain.Outreach) []interface{} {
	row := []interface{}{
		r.ID, cellInt(r.SNo), r.District, cellInt(r.Date), cellInt(r.Month),
		cellInt(r.Year), cellInt(r.Age), r.Area, r.Taluk, r.Name, r.Gender,
		r.PersonWithMentalIllness, r.ServiceProvided, r.Category, r.Tier,
		r.Notes, r.DoneBy,
	}
	return append(row, metaCells(r.FormMeta)...)
}

var reintegrationHeader = []string{
	"id", "sno", "district", "fileno", "name", "gender", "dateOfAdmission",
	"dateOfReintegration", "daysOfStay", "reintegratedWith", "address",
	"contact", "state", "reintegratedToDistrict", "acStatus", "reasons",
	"treatmentOption",
	"facility", "createdBy", "createdAt", "updatedAt",
}

func reintegrationRow(r domain.Reintegration) []interface{} {
	row := []interface{}{
		r.ID, cellInt(r.SNo), r.District, r.FileNo, r.Name, r.Gender,
		r.DateOfAdmission, r.DateOfReintegration, cellInt(r.DaysOfStay),
		r.ReintegratedWith, r.Address, r.Contact, r.State,
		r.ReintegratedToDistrict, r.ACStatus, r.Reasons, r.TreatmentOption,
	}
	return append(row, metaCells(r.FormMeta)...)
}

var transactionHeader = []string{
	"id", "sno", "date", "month", "year", "name", "age", "gender", "amount",
	"purpose", "modeOfPayment", "status", "notes",
	"facility", "createdBy", "createdAt", "updatedAt",
}

func transactionRow(r domain.Transaction) []interface{} {
	row := []interface{}{
		r.ID, cellInt(r.SNo), cellInt(r.Date), cellInt(r.Month),
		cellInt(r.Year), r.Name, cellInt(r.Age), r.Gender,
		cellFloat(r.Amount), r.Purpose, r.ModeOfPayment, r.Status, r.Notes,
	}
	return append(row, metaCells(r.FormMeta)...)
}

var awarenessHeader = []string{
	"id", "serialNo", "dateOfProgram", "typeOfProgram", "topic",
	"resourcePerson", "numberOfParticipants",
	"facility", "createdBy", "createdAt", "updatedAt",
}

func awarenessRow(r domain.AwarenessMeeting) []interface{} {
	row := []interface{}{
		r.ID, cellInt(r.SerialNo), r.DateOfProgram, r.TypeOfProgram, r.Topic,
		r.ResourcePerson, cellInt(r.NumberOfParticipants),
	}
	return append(row, metaCells(r.FormMeta)...)
}

var hospitalVisitHeader = []string{
	"id", "fileNumber", "name", "typeOfVisit", "hospitalName", "dateOfVisit",
	"dateOfDischarge", "reason", "costToOrganization", "location",
	"residingPlace",
	"facility", "createdBy", "createdAt", "updatedAt",
}

func hospitalVisitRow(r domain.HospitalVisit) []interface{} {
	row := []interface{}{
		r.ID, r.FileNumber, r.Name, r.TypeOfVisit, r.HospitalName,
		r.DateOfVisit, r.DateOfDischarge, r.Reason,
		cellFloat(r.CostToOrganization), r.Location, r.ResidingPlace,
	}
	return append(row, metaCells(r.FormMeta)...)
}

var mastersheetHeader = []string{
	"id", "district", "fileNo", "name", "dateOfAdmission", "age",
	"ageCategory", "gender", "maritalStatus", "psychiatricDiagnosis",
	"comorbid", "psychiatricComorbidity", "generalHealthComorbidity",
	"placeOfOrigin", "stateCategory", "sourceOfReferral", "placeOfRescueArea",
	"placeOfRescueDistrict", "durationOfHomelessnessMonths",
	"episodesOfHomelessness", "reasonsForHomelessness", "unemployed",
	"wanderingBehaviour", "substanceAbuse", "intellectualDisability",
	"abandonedByFamily", "lackOfAccessToMHCare", "lossOfContactWithFamily",
	"lackOfAcceptanceByFamily", "mentalIllness", "familyDispute",
	"communityDispute", "lossOfPrimaryCaregiver", "abuse", "physicalInjury",
	"lackOfMedicalCompliance", "romanticRelationship", "spiritualPathways",
	"financialLoss", "poverty", "historyOfEmployment",
	"historyOfEmploymentCleaned", "incomePM", "previousTreatment",
	"historyOfAbuse", "typeOfAbuse", "currentStatus", "dateOfExit", "dos",
	"reintegratedTo", "reintegratedState", "reintegratedDistrict",
	"followUpStatus", "familyStructure", "noOfChildren",
	"childrenGenderAndAge", "genderOfParentsWithMI", "primaryCG",
	"cgRelationship", "cgAge", "occupationOfCG", "incomeCG",
	"currentOccupationOfClient", "clientIncome", "socialEntitlement",
	"aadharCard", "disabilityCard", "rationCard", "voterID", "bankAccount",
	"drivingLicense", "aftercareStatus", "treatmentOption",
	"facility", "createdBy", "createdAt", "updatedAt",
}

func mastersheetRow(r domain.Mastersheet) []interface{} {
	row := []interface{}{
		r.ID, r.District, r.FileNo, r.Name, r.DateOfAdmission, cellInt(r.Age),
		r.AgeCategory, r.Gender, r.MaritalStatus, r.PsychiatricDiagnosis,
		r.Comorbid, r.PsychiatricComorbidity, r.GeneralHealthComorbidity,
		r.PlaceOfOrigin, r.StateCategory, r.SourceOfReferral,
		r.PlaceOfRescueArea, r.PlaceOfRescueDistrict,
		r.DurationOfHomelessnessMonths, r.EpisodesOfHomelessness,
		r.ReasonsForHomelessness, r.Unemployed, r.WanderingBehaviour,
		r.SubstanceAbuse, r.IntellectualDisability, r.AbandonedByFamily,
		r.LackOfAccessToMHCare, r.LossOfContactWithFamily,
		r.LackOfAcceptanceByFamily, r.MentalIllness, r.FamilyDispute,
		r.CommunityDispute, r.LossOfPrimaryCaregiver, r.Abuse,
		r.PhysicalInjury, r.LackOfMedicalCompliance, r.RomanticRelationship,
		r.SpiritualPathways, r.FinancialLoss, r.Poverty,
		r.HistoryOfEmployment, r.HistoryOfEmploymentCleaned, r.IncomePM,
		r.PreviousTreatment, r.HistoryOfAbuse, r.TypeOfAbuse,
		r.CurrentStatus, r.DateOfExit, r.DOS, r.ReintegratedTo,
		r.ReintegratedState, r.ReintegratedDistrict, r.FollowUpStatus,
		r.FamilyStructure, r.NoOfChildren, r.ChildrenGenderAndAge,
		r.GenderOfParentsWithMI, r.PrimaryCG, r.CGRelationship, r.CGAge,
		r.OccupationOfCG, r.IncomeCG, r.CurrentOccupationOfClient,
		r.ClientIncome, r.SocialEntitlement, r.AadharCard, r.DisabilityCard,
		r.RationCard, r.VoterID, r.BankAccount, r.DrivingLicense,
		r.AftercareStatus, r.TreatmentOption,
	}
	return append(row, metaCells(r.FormMeta)...)
}
