package hematology

import "math"

// Sex-specific hemoglobin cutoffs (g/dL) below which a record is
// anemic, per the published WHO bands.
const (
	thresholdMale   = 13.0
	thresholdFemale = 12.0
)

// Band edges shared by both sexes (g/dL).
const (
	mildFloor     = 11.0
	moderateFloor = 8.0
)

// mcvFloor is the lower bound of normal red-cell volume (fL); smaller
// cells add a microcytosis penalty to the risk score.
const mcvFloor = 80.0

// Risk score bounds after clipping.
const (
	riskMin = 1.0
	riskMax = 99.0
)

// probabilityTable is the fixed per-band distribution over all bands,
// in percent. Each row sums to 100 and the matching band holds the
// plurality weight.
var probabilityTable = map[Diagnosis]map[Diagnosis]float64{
	DiagnosisNonAnemic: {DiagnosisNonAnemic: 92.0, DiagnosisMild: 6.0, DiagnosisModerate: 1.5, DiagnosisSevere: 0.5},
	DiagnosisMild:      {DiagnosisNonAnemic: 18.0, DiagnosisMild: 64.0, DiagnosisModerate: 14.0, DiagnosisSevere: 4.0},
	DiagnosisModerate:  {DiagnosisNonAnemic: 4.0, DiagnosisMild: 18.0, DiagnosisModerate: 62.0, DiagnosisSevere: 16.0},
	DiagnosisSevere:    {DiagnosisNonAnemic: 1.0, DiagnosisMild: 5.0, DiagnosisModerate: 19.0, DiagnosisSevere: 75.0},
}

// Threshold returns the sex-specific hemoglobin cutoff.
func Threshold(sex Sex) float64 {
	if sex == SexMale {
		return thresholdMale
	}
	return thresholdFemale
}

// Band returns the severity band for a hemoglobin value under the
// given threshold. Every input maps to a band; degenerate values fall
// through to Severe rather than erroring.
func Band(hb, threshold float64) Diagnosis {
	switch {
	case hb >= threshold:
		return DiagnosisNonAnemic
	case hb >= mildFloor:
		return DiagnosisMild
	case hb >= moderateFloor:
		return DiagnosisModerate
	default:
		return DiagnosisSevere
	}
}

// Classify scores one normalized record. Deterministic: the same input
// always yields the same result.
func Classify(r *ClinicalRecord) ClassificationResult {
	t := Threshold(r.Sex)
	band := Band(r.Hemoglobin, t)

	deficit := math.Max(0, t-r.Hemoglobin)
	penalty := math.Max(0, mcvFloor-r.MCV) * 0.5
	score := (deficit/t)*85 + penalty
	score = math.Min(math.Max(score, riskMin), riskMax)

	return ClassificationResult{
		Diagnosis:     band,
		RiskScore:     round1(score),
		Probabilities: probabilities(band),
		Source:        SourceRules,
	}
}

// probabilities returns a fresh copy of the band's distribution so a
// returned result never aliases the static table.
func probabilities(band Diagnosis) map[Diagnosis]float64 {
	row := probabilityTable[band]
	dist := make(map[Diagnosis]float64, len(row))
	for d, p := range row {
		dist[d] = p
	}
	return dist
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
