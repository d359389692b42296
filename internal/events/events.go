// Package events publishes validation verdicts to a Kafka topic so
// downstream consumers (fraud scoring, reporting) can react without polling
// the audit store.
package events

import (
	"time"

	"github.com/google/uuid"
)

// ValidationEvent is emitted once per validation call. Keep it
// transport-agnostic so sinks can fan out.
type ValidationEvent struct {
	ID            uuid.UUID `json:"id"`
	NIC           string    `json:"nic"`
	Accepted      bool      `json:"accepted"`
	SemanticValid bool      `json:"semantic_valid"`
	Reason        string    `json:"reason,omitempty"`
	Format        string    `json:"format,omitempty"`
	RequestID     string    `json:"request_id,omitempty"`
	CheckedAt     time.Time `json:"checked_at"`
}
