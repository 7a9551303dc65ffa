package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"banyan-data/internal/domain"

	"github.com/google/uuid"
)

type PostgresAwarenessRepo struct {
	db *sql.DB
}

func NewPostgresAwarenessRepo(db *sql.DB) *PostgresAwarenessRepo {
	return &PostgresAwarenessRepo{db: db}
}

var _ AwarenessRepo = (*PostgresAwarenessRepo)(nil)

func (r *PostgresAwarenessRepo) Insert(ctx context.Context, rec *domain.AwarenessMeeting) error {
	m := rec.Meta()
	m.ID = uuid.NewString()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO awareness_meetings (
			id, serial_no, date_of_program, type_of_program, topic, resource_person,
			number_of_participants, facility, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.ID, rec.SerialNo, rec.DateOfProgram, rec.TypeOfProgram, rec.Topic,
		rec.ResourcePerson, rec.NumberOfParticipants,
		m.Facility, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert awareness meeting record: %w", err)
	}
	return nil
}

func (r *PostgresAwarenessRepo) List(ctx context.Context, filter FormFilter) ([]domain.AwarenessMeeting, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id::text, serial_no, date_of_program, type_of_program, topic, resource_person,
			number_of_participants, facility, created_by::text, created_at, updated_at
		 FROM awareness_meetings
		 WHERE ($1 = '' OR facility = $1)
		   AND ($2 = '' OR created_by::text = $2)
		 ORDER BY created_at DESC`,
		filter.Facility, filter.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list awareness meeting records: %w", err)
	}
	defer rows.Close()

	var out []domain.AwarenessMeeting
	for rows.Next() {
		var rec domain.AwarenessMeeting
		var serialNo, participants sql.NullInt64
		m := rec.Meta()
		if err := rows.Scan(
			&m.ID, &serialNo, &rec.DateOfProgram, &rec.TypeOfProgram, &rec.Topic,
			&rec.ResourcePerson, &participants,
			&m.Facility, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan awareness meeting record: %w", err)
		}
		rec.SerialNo = intPtr(serialNo)
		rec.NumberOfParticipants = intPtr(participants)
		out = append(out, rec)
	}
	return out, rows.Err()
}
