package store

import (
	"context"
	"sync"
	"time"

	"nicgate/internal/validation/models"
)

type cachedResult struct {
	record   models.ValidationRecord
	storedAt time.Time
}

// InMemoryStore keeps validation records and cached results in process
// memory. It backs both store interfaces and is the default when neither
// Postgres nor Redis is configured; it is also what service tests run
// against.
type InMemoryStore struct {
	mu       sync.RWMutex
	records  map[string][]models.ValidationRecord
	results  map[string]cachedResult
	cacheTTL time.Duration
}

// NewInMemoryStore creates an in-memory store with the given cache TTL.
func NewInMemoryStore(cacheTTL time.Duration) *InMemoryStore {
	return &InMemoryStore{
		records:  make(map[string][]models.ValidationRecord),
		results:  make(map[string]cachedResult),
		cacheTTL: cacheTTL,
	}
}

// Append stores a validation record, newest first.
func (s *InMemoryStore) Append(_ context.Context, record models.ValidationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.NIC] = append([]models.ValidationRecord{record}, s.records[record.NIC]...)
	return nil
}

// ListByNIC returns records for a normalized NIC, newest first.
func (s *InMemoryStore) ListByNIC(_ context.Context, nic string) ([]models.ValidationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.records[nic]
	out := make([]models.ValidationRecord, len(records))
	copy(out, records)
	return out, nil
}

// Save stores a verdict in the result cache. A nil record is a no-op.
func (s *InMemoryStore) Save(_ context.Context, record *models.ValidationRecord) error {
	if record == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[record.NIC] = cachedResult{record: *record, storedAt: time.Now()}
	return nil
}

// Find retrieves a cached verdict by normalized input. Returns ErrNotFound
// if the entry does not exist or has expired past the cache TTL.
func (s *InMemoryStore) Find(_ context.Context, nic string) (*models.ValidationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cached, ok := s.results[nic]; ok {
		if time.Since(cached.storedAt) < s.cacheTTL {
			record := cached.record
			return &record, nil
		}
	}
	return nil, ErrNotFound
}
