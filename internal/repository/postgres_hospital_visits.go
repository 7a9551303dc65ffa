package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"banyan-data/internal/domain"

	"github.com/google/uuid"
)

type PostgresHospitalVisitsRepo struct {
	db *sql.DB
}

func NewPostgresHospitalVisitsRepo(db *sql.DB) *PostgresHospitalVisitsRepo {
	return &PostgresHospitalVisitsRepo{db: db}
}

var _ HospitalVisitsRepo = (*PostgresHospitalVisitsRepo)(nil)

func (r *PostgresHospitalVisitsRepo) Insert(ctx context.Context, rec *domain.HospitalVisit) error {
	m := rec.Meta()
	m.ID = uuid.NewString()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO hospital_visits (
			id, file_number, name, type_of_visit, hospital_name, date_of_visit,
			date_of_discharge, reason, cost_to_organization, location, residing_place,
			facility, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		m.ID, rec.FileNumber, rec.Name, rec.TypeOfVisit, rec.HospitalName, rec.DateOfVisit,
		rec.DateOfDischarge, rec.Reason, rec.CostToOrganization, rec.Location, rec.ResidingPlace,
		m.Facility, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert hospital visit record: %w", err)
	}
	return nil
}

func (r *PostgresHospitalVisitsRepo) List(ctx context.Context, filter FormFilter) ([]domain.HospitalVisit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id::text, file_number, name, type_of_visit, hospital_name, date_of_visit,
			date_of_discharge, reason, cost_to_organization, location, residing_place,
			facility, created_by::text, created_at, updated_at
		 FROM hospital_visits
		 WHERE ($1 = '' OR facility = $1)
		   AND ($2 = '' OR created_by::text = $2)
		 ORDER BY created_at DESC`,
		filter.Facility, filter.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospital visit records: %w", err)
	}
	defer rows.Close()

	var out []domain.HospitalVisit
	for rows.Next() {
		var rec domain.HospitalVisit
		var cost sql.NullFloat64
		m := rec.Meta()
		if err := rows.Scan(
			&m.ID, &rec.FileNumber, &rec.Name, &rec.TypeOfVisit, &rec.HospitalName, &rec.DateOfVisit,
			&rec.DateOfDischarge, &rec.Reason, &cost, &rec.Location, &rec.ResidingPlace,
			&m.Facility, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan hospital visit record: %w", err)
		}
		rec.CostToOrganization = floatPtr(cost)
		out = append(out, rec)
	}
	return out, rows.Err()
}
