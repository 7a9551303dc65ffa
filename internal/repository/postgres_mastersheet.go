package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"banyan-data/internal/domain"

	"github.com/google/uuid"
)

type PostgresMastersheetRepo struct {
	db *sql.DB
}

func NewPostgresMastersheetRepo(db *sql.DB) *PostgresMastersheetRepo {
	return &PostgresMastersheetRepo{db: db}
}

var _ MastersheetRepo = (*PostgresMastersheetRepo)(nil)

// mastersheetColumns is the full column list in declared order, shared by
// Insert and List so they cannot drift apart.
const mastersheetColumns = `district, file_no, name, date_of_admission, age, age_category, gender,
	marital_status, psychiatric_diagnosis, comorbid, psychiatric_comorbidity, general_health_comorbidity,
	place_of_origin, state_category, source_of_referral, place_of_rescue_area, place_of_rescue_district,
	duration_of_homelessness_months, episodes_of_homelessness, reasons_for_homelessness, unemployed,
	wandering_behaviour, substance_abuse, intellectual_disability, abandoned_by_family,
	lack_of_access_to_mh_care, loss_of_contact_with_family, lack_of_acceptance_by_family, mental_illness,
	family_dispute, community_dispute, loss_of_primary_caregiver, abuse, physical_injury,
	lack_of_medical_compliance, romantic_relationship, spiritual_pathways, financial_loss, poverty,
	history_of_employment, history_of_employment_cleaned, income_pm, previous_treatment, history_of_abuse,
	type_of_abuse, current_status, date_of_exit, dos, reintegrated_to, reintegrated_state,
	reintegrated_district, follow_up_status, family_structure, no_of_children, children_gender_and_age,
	gender_of_parents_with_mi, primary_cg, cg_relationship, cg_age, occupation_of_cg, income_cg,
	current_occupation_of_client, client_income, social_entitlement, aadhar_card, disability_card,
	ration_card, voter_id, bank_account, driving_license, aftercare_status, treatment_option`

func mastersheetPlaceholders() string {
	// $1 is the id; the 72 data columns are $2..$73, meta trails at $74..$77.
	s := "$1"
	for i := 2; i <= 77; i++ {
		s += fmt.Sprintf(", $%d", i)
	}
	return s
}

func (r *PostgresMastersheetRepo) Insert(ctx context.Context, rec *domain.Mastersheet) error {
	m := rec.Meta()
	m.ID = uuid.NewString()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	query := `INSERT INTO mastersheet (id, ` + mastersheetColumns +
		`, facility, created_by, created_at, updated_at) VALUES (` + mastersheetPlaceholders() + `)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		rec.District, rec.FileNo, rec.Name, rec.DateOfAdmission, rec.Age, rec.AgeCategory, rec.Gender,
		rec.MaritalStatus, rec.PsychiatricDiagnosis, rec.Comorbid, rec.PsychiatricComorbidity, rec.GeneralHealthComorbidity,
		rec.PlaceOfOrigin, rec.StateCategory, rec.SourceOfReferral, rec.PlaceOfRescueArea, rec.PlaceOfRescueDistrict,
		rec.DurationOfHomelessnessMonths, rec.EpisodesOfHomelessness, rec.ReasonsForHomelessness, rec.Unemployed,
		rec.WanderingBehaviour, rec.SubstanceAbuse, rec.IntellectualDisability, rec.AbandonedByFamily,
		rec.LackOfAccessToMHCare, rec.LossOfContactWithFamily, rec.LackOfAcceptanceByFamily, rec.MentalIllness,
		rec.FamilyDispute, rec.CommunityDispute, rec.LossOfPrimaryCaregiver, rec.Abuse, rec.PhysicalInjury,
		rec.LackOfMedicalCompliance, rec.RomanticRelationship, rec.SpiritualPathways, rec.FinancialLoss, rec.Poverty,
		rec.HistoryOfEmployment, rec.HistoryOfEmploymentCleaned, rec.IncomePM, rec.PreviousTreatment, rec.HistoryOfAbuse,
		rec.TypeOfAbuse, rec.CurrentStatus, rec.DateOfExit, rec.DOS, rec.ReintegratedTo, rec.ReintegratedState,
		rec.ReintegratedDistrict, rec.FollowUpStatus, rec.FamilyStructure, rec.NoOfChildren, rec.ChildrenGenderAndAge,
		rec.GenderOfParentsWithMI, rec.PrimaryCG, rec.CGRelationship, rec.CGAge, rec.OccupationOfCG, rec.IncomeCG,
		rec.CurrentOccupationOfClient, rec.ClientIncome, rec.SocialEntitlement, rec.AadharCard, rec.DisabilityCard,
		rec.RationCard, rec.VoterID, rec.BankAccount, rec.DrivingLicense, rec.AftercareStatus, rec.TreatmentOption,
		m.Facility, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert mastersheet record: %w", err)
	}
	return nil
}

func (r *PostgresMastersheetRepo) List(ctx context.Context, filter FormFilter) ([]domain.Mastersheet, error) {
	query := `SELECT id::text, ` + mastersheetColumns +
		`, facility, created_by::text, created_at, updated_at
		 FROM mastersheet
		 WHERE ($1 = '' OR facility = $1)
		   AND ($2 = '' OR created_by::text = $2)
		 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, filter.Facility, filter.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list mastersheet records: %w", err)
	}
	defer rows.Close()

	var out []domain.Mastersheet
	for rows.Next() {
		var rec domain.Mastersheet
		var age sql.NullInt64
		m := rec.Meta()
		if err := rows.Scan(
			&m.ID,
			&rec.District, &rec.FileNo, &rec.Name, &rec.DateOfAdmission, &age, &rec.AgeCategory, &rec.Gender,
			&rec.MaritalStatus, &rec.PsychiatricDiagnosis, &rec.Comorbid, &rec.PsychiatricComorbidity, &rec.GeneralHealthComorbidity,
			&rec.PlaceOfOrigin, &rec.StateCategory, &rec.SourceOfReferral, &rec.PlaceOfRescueArea, &rec.PlaceOfRescueDistrict,
			&rec.DurationOfHomelessnessMonths, &rec.EpisodesOfHomelessness, &rec.ReasonsForHomelessness, &rec.Unemployed,
			&rec.WanderingBehaviour, &rec.SubstanceAbuse, &rec.IntellectualDisability, &rec.AbandonedByFamily,
			&rec.LackOfAccessToMHCare, &rec.LossOfContactWithFamily, &rec.LackOfAcceptanceByFamily, &rec.MentalIllness,
			&rec.FamilyDispute, &rec.CommunityDispute, &rec.LossOfPrimaryCaregiver, &rec.Abuse, &rec.PhysicalInjury,
			&rec.LackOfMedicalCompliance, &rec.RomanticRelationship, &rec.SpiritualPathways, &rec.FinancialLoss, &rec.Poverty,
			&rec.HistoryOfEmployment, &rec.HistoryOfEmploymentCleaned, &rec.IncomePM, &rec.PreviousTreatment, &rec.HistoryOfAbuse,
			&rec.TypeOfAbuse, &rec.CurrentStatus, &rec.DateOfExit, &rec.DOS, &rec.ReintegratedTo, &rec.ReintegratedState,
			&rec.ReintegratedDistrict, &rec.FollowUpStatus, &rec.FamilyStructure, &rec.NoOfChildren, &rec.ChildrenGenderAndAge,
			&rec.GenderOfParentsWithMI, &rec.PrimaryCG, &rec.CGRelationship, &rec.CGAge, &rec.OccupationOfCG, &rec.IncomeCG,
			&rec.CurrentOccupationOfClient, &rec.ClientIncome, &rec.SocialEntitlement, &rec.AadharCard, &rec.DisabilityCard,
			&rec.RationCard, &rec.VoterID, &rec.BankAccount, &rec.DrivingLicense, &rec.AftercareStatus, &rec.TreatmentOption,
			&m.Facility, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan mastersheet record: %w", err)
		}
		rec.Age = intPtr(age)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// NewPostgresStores wires every repository onto one connection pool.
func NewPostgresStores(db *sql.DB) Stores {
	return Stores{
		Users:          NewPostgresUsersRepo(db),
		Outreach:       NewPostgresOutreachRepo(db),
		Reintegration:  NewPostgresReintegrationRepo(db),
		Transactions:   NewPostgresTransactionsRepo(db),
		Awareness:      NewPostgresAwarenessRepo(db),
		HospitalVisits: NewPostgresHospitalVisitsRepo(db),
		Mastersheet:    NewPostgresMastersheetRepo(db),
	}
}
