// Package service orchestrates the two validation passes and their
// surroundings: result caching, the audit trail, metrics, and event
// emission. The passes themselves live in internal/nic and stay pure.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"nicgate/internal/events"
	"nicgate/internal/nic/automaton"
	"nicgate/internal/nic/semantic"
	"nicgate/internal/validation/metrics"
	"nicgate/internal/validation/models"
	"nicgate/internal/validation/store"
	"nicgate/pkg/domain"
	dErrors "nicgate/pkg/domain-errors"
	"nicgate/pkg/requestcontext"
)

// Outcome is the result of one Validate call.
type Outcome struct {
	Record models.ValidationRecord
	// CacheHit is true when the verdict was served from the result cache
	// without rerunning the automaton.
	CacheHit bool
}

// Service runs validations and records them.
type Service struct {
	records   store.RecordStore
	cache     store.ResultCache
	inbox     chan<- events.ValidationEvent
	metrics   *metrics.Metrics
	logger    *slog.Logger
	regulated bool
}

// New constructs the validation service. cache and inbox may be nil
// (caching and event emission disabled).
func New(
	records store.RecordStore,
	cache store.ResultCache,
	inbox chan<- events.ValidationEvent,
	m *metrics.Metrics,
	logger *slog.Logger,
	regulated bool,
) *Service {
	return &Service{
		records:   records,
		cache:     cache,
		inbox:     inbox,
		metrics:   m,
		logger:    logger,
		regulated: regulated,
	}
}

// Validate runs both passes over the raw input and persists the verdict.
// Any string is a valid argument; lexical or semantic rejection is encoded
// in the returned record, never as an error. Errors signal infrastructure
// failures only.
func (s *Service) Validate(ctx context.Context, raw string) (*Outcome, error) {
	start := time.Now()
	normalized := domain.Normalize(raw)

	if cached := s.findCached(ctx, normalized); cached != nil {
		s.metrics.RecordCacheHit()
		return &Outcome{Record: *cached, CacheHit: true}, nil
	}
	s.metrics.RecordCacheMiss()

	lexical := automaton.Run(normalized)
	sem := semantic.Check(normalized)

	record := buildRecord(normalized, lexical, sem, requestcontext.Now(ctx))

	if err := s.records.Append(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "failed to append validation record",
			"request_id", requestcontext.RequestID(ctx),
			"record_id", record.ID,
			"error", err,
		)
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to persist validation", err)
	}

	s.saveCached(ctx, &record)
	s.emit(ctx, record)
	s.observe(record, time.Since(start))

	s.logger.InfoContext(ctx, "nic validated",
		"request_id", requestcontext.RequestID(ctx),
		"nic", s.loggableNIC(record.NIC),
		"accepted", record.Accepted,
		"semantic_valid", record.SemanticValid,
		"final_state", record.FinalState,
	)

	return &Outcome{Record: record}, nil
}

// History returns the audit trail for a NIC, newest first. In regulated
// mode records are minimized before leaving the service.
func (s *Service) History(ctx context.Context, nic domain.NIC) ([]models.ValidationRecord, error) {
	records, err := s.records.ListByNIC(ctx, nic.String())
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load validation history", err)
	}
	if s.regulated {
		for i := range records {
			records[i] = records[i].Minimized()
		}
	}
	return records, nil
}

func buildRecord(normalized string, lexical automaton.Result, sem semantic.Result, now time.Time) models.ValidationRecord {
	record := models.ValidationRecord{
		ID:            uuid.New(),
		NIC:           normalized,
		Accepted:      lexical.Accepted,
		SemanticValid: sem.Valid,
		Reason:        string(sem.Reason),
		Message:       sem.Message,
		FinalState:    lexical.FinalState.String(),
		Trace:         lexical.TraceStrings(),
		CheckedAt:     now,
	}
	if format, ok := domain.FormatForLength(len(normalized)); ok {
		record.Format = format
	}
	if sem.Valid {
		record.BirthYear = sem.BirthYear
		record.DayOfYear = sem.DayOfYear
		record.Gender = sem.Gender
	}
	return record
}

func (s *Service) findCached(ctx context.Context, nic string) *models.ValidationRecord {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Find(ctx, nic)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.WarnContext(ctx, "result cache lookup failed", "error", err)
		}
		return nil
	}
	return cached
}

func (s *Service) saveCached(ctx context.Context, record *models.ValidationRecord) {
	if s.cache == nil {
		return
	}
	// Best effort: a cold cache only costs recomputation.
	if err := s.cache.Save(ctx, record); err != nil {
		s.logger.WarnContext(ctx, "result cache save failed", "error", err)
	}
}

func (s *Service) emit(ctx context.Context, record models.ValidationRecord) {
	if s.inbox == nil {
		return
	}
	event := events.ValidationEvent{
		ID:            record.ID,
		NIC:           s.loggableNIC(record.NIC),
		Accepted:      record.Accepted,
		SemanticValid: record.SemanticValid,
		Reason:        record.Reason,
		Format:        record.Format.String(),
		RequestID:     requestcontext.RequestID(ctx),
		CheckedAt:     record.CheckedAt,
	}
	select {
	case s.inbox <- event:
	default:
		// Never block a validation on a slow broker.
		s.logger.WarnContext(ctx, "event inbox full, dropping validation event",
			"event_id", event.ID,
		)
	}
}

func (s *Service) observe(record models.ValidationRecord, elapsed time.Duration) {
	verdict := "rejected"
	if record.Accepted {
		verdict = "accepted"
	}
	format := "unknown"
	if record.Format != "" {
		format = record.Format.String()
	}
	s.metrics.RecordValidation(verdict, format)
	if !record.SemanticValid && record.Reason != "" {
		s.metrics.RecordSemanticRejection(record.Reason)
	}
	s.metrics.ObserveValidateLatency(elapsed)
}

// loggableNIC masks the NIC in logs and events when regulated mode is on.
func (s *Service) loggableNIC(nic string) string {
	if s.regulated {
		return models.MaskNIC(nic)
	}
	return nic
}
