package triage

import (
	"time"

	"github.com/google/uuid"
)

// SeverityTier buckets a triage risk score.
type SeverityTier string

const (
	TierLow      SeverityTier = "Low"
	TierModerate SeverityTier = "Moderate"
	TierHigh     SeverityTier = "High"
	TierCritical SeverityTier = "Critical"
)

// Entry is one admitted patient on the board. Entries are owned by the
// Board: created on admit, mutated only to clear IsNew, never removed.
type Entry struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Age        int          `json:"age"`
	RiskScore  int          `json:"risk_score"`
	Tier       SeverityTier `json:"tier"`
	Diagnosis  string       `json:"diagnosis"`
	AdmittedAt time.Time    `json:"admitted_at"`
	IsNew      bool         `json:"is_new"`
}

// SeverityTierOf maps a risk score to its tier. One canonical boundary
// set, applied to every admission path.
func SeverityTierOf(score int) SeverityTier {
	switch {
	case score > 80:
		return TierCritical
	case score > 60:
		return TierHigh
	case score > 30:
		return TierModerate
	default:
		return TierLow
	}
}
