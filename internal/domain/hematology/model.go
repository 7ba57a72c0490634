package hematology

import "time"

// Sex is the biological sex recorded on a ClinicalRecord.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Diagnosis is an anemia severity band.
type Diagnosis string

const (
	DiagnosisNonAnemic Diagnosis = "Non-Anemic"
	DiagnosisMild      Diagnosis = "Mild"
	DiagnosisModerate  Diagnosis = "Moderate"
	DiagnosisSevere    Diagnosis = "Severe"
)

// Diagnoses lists every band from least to most severe.
var Diagnoses = []Diagnosis{DiagnosisNonAnemic, DiagnosisMild, DiagnosisModerate, DiagnosisSevere}

// SourceRules marks results computed by the embedded rule engine.
const SourceRules = "rules"

// ClinicalRecord is one patient's normalized laboratory measurements.
// All measurement fields are finite and non-negative after
// normalization; absent measurements normalize to 0.
type ClinicalRecord struct {
	Sex         Sex     `json:"sex"`
	Age         int     `json:"age"`
	Hemoglobin  float64 `json:"hemoglobin"`
	RBC         float64 `json:"rbc"`
	Hematocrit  float64 `json:"hematocrit"`
	MCV         float64 `json:"mcv"`
	MCH         float64 `json:"mch"`
	MCHC        float64 `json:"mchc"`
	RDW         float64 `json:"rdw"`
	WBC         float64 `json:"wbc"`
	Platelets   float64 `json:"platelets"`
	Neutrophils float64 `json:"neutrophils"`
	Lymphocytes float64 `json:"lymphocytes"`
	Monocytes   float64 `json:"monocytes"`
	Eosinophils float64 `json:"eosinophils"`
	Basophils   float64 `json:"basophils"`
}

// ClassificationResult is the outcome of one classification call.
// Immutable once returned; a fresh value is created per call.
type ClassificationResult struct {
	Diagnosis     Diagnosis             `json:"diagnosis"`
	RiskScore     float64               `json:"risk_score"`
	Probabilities map[Diagnosis]float64 `json:"probabilities"`
	Source        string                `json:"source"`
}

// HistoryEntry is one stored classification result, kept for display
// on the recent-assessments panel.
type HistoryEntry struct {
	Timestamp   time.Time            `json:"timestamp"`
	PatientName string               `json:"patient_name,omitempty"`
	Result      ClassificationResult `json:"result"`
}
