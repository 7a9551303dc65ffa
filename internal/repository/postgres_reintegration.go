package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"banyan-data/internal/domain"

	"github.com/google/uuid"
)

type PostgresReintegrationRepo struct {
	db *sql.DB
}

func NewPostgresReintegrationRepo(db *sql.DB) *PostgresReintegrationRepo {
	return &PostgresReintegrationRepo{db: db}
}

var _ ReintegrationRepo = (*PostgresReintegrationRepo)(nil)

func (r *PostgresReintegrationRepo) Insert(ctx context.Context, rec *domain.Reintegration) error {
	m := rec.Meta()
	m.ID = uuid.NewString()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reintegration (
			id, sno, district, fileno, name, gender, date_of_admission, date_of_reintegration,
			days_of_stay, reintegrated_with, address, contact, state, reintegrated_to_district,
			ac_status, reasons, treatment_option, facility, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		m.ID, rec.SNo, rec.District, rec.FileNo, rec.Name, rec.Gender,
		rec.DateOfAdmission, rec.DateOfReintegration, rec.DaysOfStay, rec.ReintegratedWith,
		rec.Address, rec.Contact, rec.State, rec.ReintegratedToDistrict,
		rec.ACStatus, rec.Reasons, rec.TreatmentOption,
		m.Facility, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reintegration record: %w", err)
	}
	return nil
}

func (r *PostgresReintegrationRepo) List(ctx context.Context, filter FormFilter) ([]domain.Reintegration, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id::text, sno, district, fileno, name, gender, date_of_admission, date_of_reintegration,
			days_of_stay, reintegrated_with, address, contact, state, reintegrated_to_district,
			ac_status, reasons, treatment_option, facility, created_by::text, created_at, updated_at
		 FROM reintegration
		 WHERE ($1 = '' OR facility = $1)
		   AND ($2 = '' OR created_by::text = $2)
		 ORDER BY created_at DESC`,
		filter.Facility, filter.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reintegration records: %w", err)
	}
	defer rows.Close()

	var out []domain.Reintegration
	for rows.Next() {
		var rec domain.Reintegration
		var sno, daysOfStay sql.NullInt64
		m := rec.Meta()
		if err := rows.Scan(
			&m.ID, &sno, &rec.District, &rec.FileNo, &rec.Name, &rec.Gender,
			&rec.DateOfAdmission, &rec.DateOfReintegration, &daysOfStay, &rec.ReintegratedWith,
			&rec.Address, &rec.Contact, &rec.State, &rec.ReintegratedToDistrict,
			&rec.ACStatus, &rec.Reasons, &rec.TreatmentOption,
			&m.Facility, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reintegration record: %w", err)
		}
		rec.SNo = intPtr(sno)
		rec.DaysOfStay = intPtr(daysOfStay)
		out = append(out, rec)
	}
	return out, rows.Err()
}
