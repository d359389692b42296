// Package models defines the persistent and wire-facing shapes of the
// validation domain.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"nicgate/pkg/domain"
)

// ValidationRecord is one audit entry: the full verdict of running both
// passes over a candidate NIC.
type ValidationRecord struct {
	ID            uuid.UUID     `json:"id"`
	NIC           string        `json:"nic"`
	Accepted      bool          `json:"accepted"`
	SemanticValid bool          `json:"semantic_valid"`
	Reason        string        `json:"reason,omitempty"`
	Message       string        `json:"message,omitempty"`
	Format        domain.Format `json:"format,omitempty"`
	BirthYear     int           `json:"birth_year,omitempty"`
	DayOfYear     int           `json:"day_of_year,omitempty"`
	Gender        domain.Gender `json:"gender,omitempty"`
	FinalState    string        `json:"final_state"`
	Trace         []string      `json:"trace"`
	CheckedAt     time.Time     `json:"checked_at"`
}

// Minimized returns a copy with PII stripped: the NIC is masked and the
// decoded birth fields are cleared. Used when serving audit history in
// regulated mode. The verdict, trace, and timestamps survive minimization.
func (r ValidationRecord) Minimized() ValidationRecord {
	r.NIC = MaskNIC(r.NIC)
	r.BirthYear = 0
	r.DayOfYear = 0
	r.Gender = ""
	r.Message = ""
	return r
}

// MaskNIC hides the middle of a NIC, keeping two characters at each end so
// operators can still correlate entries. Short values are masked entirely.
func MaskNIC(nic string) string {
	if len(nic) < 6 {
		return strings.Repeat("*", len(nic))
	}
	return nic[:2] + strings.Repeat("*", len(nic)-4) + nic[len(nic)-2:]
}
