package cohort

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hemoscan/hemoscan/internal/domain/hematology"
	"github.com/hemoscan/hemoscan/internal/domain/record"
)

func row(sex string, hb, mcv float64) record.Raw {
	return record.Raw{"sex": sex, "hemoglobin": hb, "mcv": mcv}
}

func TestAggregateMixedBatch(t *testing.T) {
	// 40 healthy rows at or above threshold, 5 spread over the
	// anemic bands.
	rows := make([]record.Raw, 0, 45)
	for i := 0; i < 20; i++ {
		rows = append(rows, row("male", 14.0, 88))
		rows = append(rows, row("female", 12.5, 90))
	}
	rows = append(rows,
		row("female", 11.5, 85), // Mild
		row("male", 12.0, 84),   // Mild
		row("female", 9.5, 78),  // Moderate
		row("male", 10.0, 75),   // Moderate
		row("female", 6.0, 65),  // Severe
	)

	batch, err := Aggregate(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Summary.Total != 45 {
		t.Errorf("expected total 45, got %d", batch.Summary.Total)
	}
	if got := batch.Summary.Counts[hematology.DiagnosisNonAnemic]; got != 40 {
		t.Errorf("expected 40 Non-Anemic, got %d", got)
	}
	if got := batch.Summary.Counts[hematology.DiagnosisMild]; got != 2 {
		t.Errorf("expected 2 Mild, got %d", got)
	}
	if got := batch.Summary.Counts[hematology.DiagnosisModerate]; got != 2 {
		t.Errorf("expected 2 Moderate, got %d", got)
	}
	if got := batch.Summary.Counts[hematology.DiagnosisSevere]; got != 1 {
		t.Errorf("expected 1 Severe, got %d", got)
	}
	if len(batch.Results) != 45 {
		t.Errorf("expected 45 per-row results, got %d", len(batch.Results))
	}
}

func TestAggregatePreservesInputOrder(t *testing.T) {
	rows := []record.Raw{
		row("male", 6.0, 70),    // Severe
		{"name": "skipped"},     // filtered: no measurements
		row("female", 13.0, 92), // Non-Anemic
		row("female", 11.2, 85), // Mild
	}
	batch, err := Aggregate(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []hematology.Diagnosis{
		hematology.DiagnosisSevere,
		hematology.DiagnosisNonAnemic,
		hematology.DiagnosisMild,
	}
	if len(batch.Results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(batch.Results))
	}
	for i, d := range want {
		if batch.Results[i].Diagnosis != d {
			t.Errorf("result %d: expected %s, got %s", i, d, batch.Results[i].Diagnosis)
		}
	}
}

func TestAggregateMeanRiskScore(t *testing.T) {
	rows := []record.Raw{
		row("female", 11.2, 85), // 5.7
		row("male", 6.5, 69),    // 48.0
	}
	batch, err := Aggregate(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (5.7 + 48.0) / 2 = 26.85, rounded to one decimal place.
	if batch.Summary.MeanRiskScore != 26.9 {
		t.Errorf("expected mean 26.9, got %v", batch.Summary.MeanRiskScore)
	}
}

func TestAggregateFiltersMandatoryFields(t *testing.T) {
	rows := []record.Raw{
		{"sex": "male", "mcv": 80.0},                            // no hemoglobin
		{"sex": "male", "hemoglobin": 10.0},                     // no mcv
		{"hemoglobin": 10.0, "mcv": 80.0},                       // no sex
		{"sex": "robot", "hemoglobin": 10.0, "mcv": 80.0},       // invalid sex
		{"sex": "male", "hemoglobin": "n/a", "mcv": 80.0},       // unparseable hemoglobin
		{"sex": "female", "hemoglobin": 10.0, "mcv": 82.0},      // usable
		{"sex": "female", "hemoglobin": "9.5", "mcv": "79"},     // usable, string numbers
	}
	batch, err := Aggregate(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Summary.Total != 2 {
		t.Errorf("expected total 2 after filtering, got %d", batch.Summary.Total)
	}
}

func TestAggregateNoValidRecords(t *testing.T) {
	_, err := Aggregate(nil)
	if !errors.Is(err, ErrNoValidRecords) {
		t.Fatalf("expected ErrNoValidRecords for empty batch, got %v", err)
	}

	_, err = Aggregate([]record.Raw{{"sex": "male"}, {"hemoglobin": 9.0}})
	if !errors.Is(err, ErrNoValidRecords) {
		t.Fatalf("expected ErrNoValidRecords for fully filtered batch, got %v", err)
	}
}

func TestAggregateCountsCarryAllLabels(t *testing.T) {
	batch, err := Aggregate([]record.Raw{row("male", 14.5, 90)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range hematology.Diagnoses {
		if _, ok := batch.Summary.Counts[d]; !ok {
			t.Errorf("expected counts to carry label %s", d)
		}
	}
}

func TestAggregateLargeBatchMean(t *testing.T) {
	var rows []record.Raw
	var sum float64
	for i := 0; i < 10; i++ {
		hb := 7.0 + float64(i)*0.5
		rows = append(rows, row("female", hb, 80))
		res := hematology.Classify(&hematology.ClinicalRecord{Sex: hematology.SexFemale, Hemoglobin: hb, MCV: 80})
		sum += res.RiskScore
	}
	batch, err := Aggregate(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := fmt.Sprintf("%.1f", sum/10)
	got := fmt.Sprintf("%.1f", batch.Summary.MeanRiskScore)
	if got != want {
		t.Errorf("expected mean %s, got %s", want, got)
	}
}
