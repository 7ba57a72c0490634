package recovery

import (
	"errors"
	"testing"

	"github.com/hemoscan/hemoscan/internal/domain/record"
)

func TestAssessCheckIn(t *testing.T) {
	svc := NewService(nil)
	raw := record.Raw{
		"surgery":              "hip_knee_replacement",
		"days_since_discharge": 8,
		"pain":                 2,
		"prev_pain":            2,
		"mobility":             8,
		"prev_mobility":        8,
		"temperature":          98.4,
		"adherence":            true,
		"age":                  60,
		"heart_rate":           72,
		"systolic_bp":          118,
		"spo2":                 97,
		"comorbidities":        1,
	}
	res, err := svc.AssessCheckIn(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RiskPercentage != 8 {
		t.Errorf("expected 8, got %d", res.RiskPercentage)
	}
	if res.Zone != ZoneLow {
		t.Errorf("expected Low, got %s", res.Zone)
	}
	if res.Source != SourceRules {
		t.Errorf("expected source %q, got %q", SourceRules, res.Source)
	}
}

func TestAssessCheckIn_SurgeryRequired(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.AssessCheckIn(record.Raw{"pain": 6})
	var ve *record.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "surgery" {
		t.Errorf("expected field surgery, got %q", ve.Field)
	}
}

func TestServiceUsesInjectedScorer(t *testing.T) {
	svc := NewService(FallbackScorer{})
	res, err := svc.AssessCheckIn(record.Raw{"surgery": "general_surgery", "pain": 4, "mobility": 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != SourceFallback {
		t.Errorf("expected source %q, got %q", SourceFallback, res.Source)
	}
	if res.RiskPercentage != 60 {
		t.Errorf("expected 60, got %d", res.RiskPercentage)
	}
}

func TestAssessIsDeterministic(t *testing.T) {
	svc := NewService(nil)
	in := healthyCheckIn()
	a := svc.Assess(in)
	b := svc.Assess(in)
	if a != b {
		t.Errorf("expected identical results, got %+v and %+v", a, b)
	}
}
