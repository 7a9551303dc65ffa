package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"banyan-data/internal/domain"

	"github.com/google/uuid"
)

type PostgresOutreachRepo struct {
	db *sql.DB
}

func NewPostgresOutreachRepo(db *sql.DB) *PostgresOutreachRepo {
	return &PostgresOutreachRepo{db: db}
}

var _ OutreachRepo = (*PostgresOutreachRepo)(nil)

func (r *PostgresOutreachRepo) Insert(ctx context.Context, rec *domain.Outreach) error {
	m := rec.Meta()
	m.ID = uuid.NewString()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO outreach (
			id, sno, district, date, month, year, age, area, taluk, name, gender,
			person_with_mental_illness, service_provided, category, tier, notes, done_by,
			facility, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		m.ID, rec.SNo, rec.District, rec.Date, rec.Month, rec.Year, rec.Age,
		rec.Area, rec.Taluk, rec.Name, rec.Gender, rec.PersonWithMentalIllness,
		rec.ServiceProvided, rec.Category, rec.Tier, rec.Notes, rec.DoneBy,
		m.Facility, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert outreach record: %w", err)
	}
	return nil
}

func (r *PostgresOutreachRepo) List(ctx context.Context, filter FormFilter) ([]domain.Outreach, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id::text, sno, district, date, month, year, age, area, taluk, name, gender,
			person_with_mental_illness, service_provided, category, tier, notes, done_by,
			facility, created_by::text, created_at, updated_at
		 FROM outreach
		 WHERE ($1 = '' OR facility = $1)
		   AND ($2 = '' OR created_by::text = $2)
		 ORDER BY created_at DESC`,
		filter.Facility, filter.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list outreach records: %w", err)
	}
	defer rows.Close()

	var out []domain.Outreach
	for rows.Next() {
		var rec domain.Outreach
		var sno, date, month, year, age sql.NullInt64
		m := rec.Meta()
		if err := rows.Scan(
			&m.ID, &sno, &rec.District, &date, &month, &year, &age,
			&rec.Area, &rec.Taluk, &rec.Name, &rec.Gender, &rec.PersonWithMentalIllness,
			&rec.ServiceProvided, &rec.Category, &rec.Tier, &rec.Notes, &rec.DoneBy,
			&m.Facility, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan outreach record: %w", err)
		}
		rec.SNo = intPtr(sno)
		rec.Date = intPtr(date)
		rec.Month = intPtr(month)
		rec.Year = intPtr(year)
		rec.Age = intPtr(age)
		out = append(out, rec)
	}
	return out, rows.Err()
}
