package cohort

import (
	"errors"

	"github.com/hemoscan/hemoscan/internal/domain/hematology"
)

// ErrNoValidRecords is returned when a batch contains no usable rows
// after filtering.
var ErrNoValidRecords = errors.New("no valid records in batch")

// Summary aggregates one classified batch. Counts carries every
// diagnosis label, zero-valued when unseen.
type Summary struct {
	Total         int                          `json:"total"`
	Counts        map[hematology.Diagnosis]int `json:"counts"`
	MeanRiskScore float64                      `json:"mean_risk_score"`
}

// Batch is the outcome of classifying one uploaded cohort: per-row
// results in filtered input order plus the derived summary.
type Batch struct {
	Results []hematology.ClassificationResult `json:"results"`
	Summary Summary                           `json:"summary"`
}
