package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"banyan-data/internal/domain"

	"github.com/google/uuid"
)

type PostgresTransactionsRepo struct {
	db *sql.DB
}

func NewPostgresTransactionsRepo(db *sql.DB) *PostgresTransactionsRepo {
	return &PostgresTransactionsRepo{db: db}
}

var _ TransactionsRepo = (*PostgresTransactionsRepo)(nil)

func (r *PostgresTransactionsRepo) Insert(ctx context.Context, rec *domain.Transaction) error {
	m := rec.Meta()
	m.ID = uuid.NewString()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (
			id, sno, date, month, year, name, age, gender, amount, purpose,
			mode_of_payment, status, notes, facility, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		m.ID, rec.SNo, rec.Date, rec.Month, rec.Year, rec.Name, rec.Age, rec.Gender,
		rec.Amount, rec.Purpose, rec.ModeOfPayment, rec.Status, rec.Notes,
		m.Facility, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction record: %w", err)
	}
	return nil
}

func (r *PostgresTransactionsRepo) List(ctx context.Context, filter FormFilter) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id::text, sno, date, month, year, name, age, gender, amount, purpose,
			mode_of_payment, status, notes, facility, created_by::text, created_at, updated_at
		 FROM transactions
		 WHERE ($1 = '' OR facility = $1)
		   AND ($2 = '' OR created_by::text = $2)
		 ORDER BY created_at DESC`,
		filter.Facility, filter.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction records: %w", err)
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		var rec domain.Transaction
		var sno, date, month, year, age sql.NullInt64
		var amount sql.NullFloat64
		m := rec.Meta()
		if err := rows.Scan(
			&m.ID, &sno, &date, &month, &year, &rec.Name, &age, &rec.Gender,
			&amount, &rec.Purpose, &rec.ModeOfPayment, &rec.Status, &rec.Notes,
			&m.Facility, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction record: %w", err)
		}
		rec.SNo = intPtr(sno)
		rec.Date = intPtr(date)
		rec.Month = intPtr(month)
		rec.Year = intPtr(year)
		rec.Age = intPtr(age)
		rec.Amount = floatPtr(amount)
		out = append(out, rec)
	}
	return out, rows.Err()
}
