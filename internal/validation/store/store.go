// Package store provides persistence for validation records: an append-only
// audit store and a TTL result cache, each with in-memory and external
// backends.
package store

import (
	"context"
	"errors"

	"nicgate/internal/validation/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// RecordStore is the append-only audit trail of validation verdicts.
type RecordStore interface {
	Append(ctx context.Context, record models.ValidationRecord) error
	// ListByNIC returns records for a normalized NIC, newest first.
	ListByNIC(ctx context.Context, nic string) ([]models.ValidationRecord, error)
}

// ResultCache serves recent verdicts keyed by normalized input, so repeated
// lookups of the same string skip recomputation and the audit write path.
type ResultCache interface {
	Find(ctx context.Context, nic string) (*models.ValidationRecord, error)
	Save(ctx context.Context, record *models.ValidationRecord) error
}
