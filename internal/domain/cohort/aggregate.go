package cohort

import (
	"math"

	"github.com/hemoscan/hemoscan/internal/domain/hematology"
	"github.com/hemoscan/hemoscan/internal/domain/record"
)

// Aggregate classifies each usable row in input order and tallies the
// batch. Rows missing any mandatory field (hemoglobin, sex, mcv) are
// filtered out, not errors; an entirely unusable batch is
// ErrNoValidRecords.
func Aggregate(rows []record.Raw) (*Batch, error) {
	results := make([]hematology.ClassificationResult, 0, len(rows))
	counts := make(map[hematology.Diagnosis]int, len(hematology.Diagnoses))
	for _, d := range hematology.Diagnoses {
		counts[d] = 0
	}

	var riskSum float64
	for _, raw := range rows {
		if !usable(raw) {
			continue
		}
		rec, err := hematology.NormalizeRecord(raw)
		if err != nil {
			continue
		}
		res := hematology.Classify(rec)
		results = append(results, res)
		counts[res.Diagnosis]++
		riskSum += res.RiskScore
	}

	if len(results) == 0 {
		return nil, ErrNoValidRecords
	}

	return &Batch{
		Results: results,
		Summary: Summary{
			Total:         len(results),
			Counts:        counts,
			MeanRiskScore: round1(riskSum / float64(len(results))),
		},
	}, nil
}

// usable reports whether a row carries the three mandatory fields.
func usable(raw record.Raw) bool {
	if !record.HasNumber(raw, "hemoglobin") || !record.HasNumber(raw, "mcv") {
		return false
	}
	s, ok := record.String(raw, "sex")
	return ok && s != ""
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
