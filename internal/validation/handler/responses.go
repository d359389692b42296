package handler

import (
	"time"

	"nicgate/internal/validation/models"
	"nicgate/internal/validation/service"
)

// SemanticResponse carries the second-pass verdict.
type SemanticResponse struct {
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
	BirthYear int    `json:"birth_year,omitempty"`
	DayOfYear int    `json:"day_of_year,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

// ValidateResponse is the body returned by POST /validate.
type ValidateResponse struct {
	ID         string           `json:"id"`
	NIC        string           `json:"nic"`
	Accepted   bool             `json:"accepted"`
	FinalState string           `json:"final_state"`
	Trace      []string         `json:"trace"`
	Format     string           `json:"format,omitempty"`
	Semantic   SemanticResponse `json:"semantic"`
	CheckedAt  time.Time        `json:"checked_at"`
	Cached     bool             `json:"cached"`
}

// FromOutcome converts a service outcome to the wire shape.
func FromOutcome(outcome *service.Outcome) ValidateResponse {
	r := outcome.Record
	return ValidateResponse{
		ID:         r.ID.String(),
		NIC:        r.NIC,
		Accepted:   r.Accepted,
		FinalState: r.FinalState,
		Trace:      r.Trace,
		Format:     string(r.Format),
		Semantic: SemanticResponse{
			Valid:     r.SemanticValid,
			Reason:    r.Reason,
			Message:   r.Message,
			BirthYear: r.BirthYear,
			DayOfYear: r.DayOfYear,
			Gender:    string(r.Gender),
		},
		CheckedAt: r.CheckedAt,
		Cached:    outcome.CacheHit,
	}
}

// HistoryResponse is the body returned by GET /validations/{nic}.
type HistoryResponse struct {
	NIC     string                    `json:"nic"`
	Count   int                       `json:"count"`
	Records []models.ValidationRecord `json:"records"`
}
