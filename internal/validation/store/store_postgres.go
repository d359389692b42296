package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"nicgate/internal/validation/models"
	"nicgate/pkg/domain"
)

// PostgresStore persists validation records in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgreSQL-backed record store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const schema = `
CREATE TABLE IF NOT EXISTS nic_validations (
	id UUID PRIMARY KEY,
	nic TEXT NOT NULL,
	accepted BOOLEAN NOT NULL,
	semantic_valid BOOLEAN NOT NULL,
	reason TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	format TEXT NOT NULL DEFAULT '',
	birth_year INT NOT NULL DEFAULT 0,
	day_of_year INT NOT NULL DEFAULT 0,
	gender TEXT NOT NULL DEFAULT '',
	final_state TEXT NOT NULL,
	trace TEXT[] NOT NULL,
	checked_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_nic_validations_nic
	ON nic_validations (nic, checked_at DESC);
`

// EnsureSchema creates the validations table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure validations schema: %w", err)
	}
	return nil
}

// Append stores a validation record.
func (s *PostgresStore) Append(ctx context.Context, record models.ValidationRecord) error {
	const query = `
		INSERT INTO nic_validations (
			id, nic, accepted, semantic_valid, reason, message, format,
			birth_year, day_of_year, gender, final_state, trace, checked_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := s.pool.Exec(ctx, query,
		record.ID,
		record.NIC,
		record.Accepted,
		record.SemanticValid,
		record.Reason,
		record.Message,
		string(record.Format),
		record.BirthYear,
		record.DayOfYear,
		string(record.Gender),
		record.FinalState,
		record.Trace,
		record.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("append validation record: %w", err)
	}
	return nil
}

// ListByNIC returns up to 100 records for a normalized NIC, newest first.
func (s *PostgresStore) ListByNIC(ctx context.Context, nic string) ([]models.ValidationRecord, error) {
	const query = `
		SELECT id, nic, accepted, semantic_valid, reason, message, format,
			birth_year, day_of_year, gender, final_state, trace, checked_at
		FROM nic_validations
		WHERE nic = $1
		ORDER BY checked_at DESC
		LIMIT 100`

	rows, err := s.pool.Query(ctx, query, nic)
	if err != nil {
		return nil, fmt.Errorf("list validation records: %w", err)
	}
	defer rows.Close()

	var records []models.ValidationRecord
	for rows.Next() {
		var r models.ValidationRecord
		var format, gender string
		if err := rows.Scan(
			&r.ID, &r.NIC, &r.Accepted, &r.SemanticValid, &r.Reason,
			&r.Message, &format, &r.BirthYear, &r.DayOfYear, &gender,
			&r.FinalState, &r.Trace, &r.CheckedAt,
		); err != nil {
			return nil, fmt.Errorf("scan validation record: %w", err)
		}
		r.Format = domain.Format(format)
		r.Gender = domain.Gender(gender)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate validation records: %w", err)
	}
	return records, nil
}

// Get returns the most recent record for a NIC, or ErrNotFound.
func (s *PostgresStore) Get(ctx context.Context, nic string) (*models.ValidationRecord, error) {
	records, err := s.ListByNIC(ctx, nic)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return &records[0], nil
}
