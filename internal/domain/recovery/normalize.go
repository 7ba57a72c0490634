package recovery

import (
	"strings"

	"github.com/hemoscan/hemoscan/internal/domain/record"
)

// Check-in defaults for optional fields, matching the intake form's
// resting baselines.
const (
	defaultPain         = 4
	defaultPrevPain     = 5
	defaultMobility     = 6
	defaultPrevMobility = 5
	defaultTemperature  = 98.6
	defaultHeartRate    = 75
	defaultSystolicBP   = 120
	defaultSpO2         = 98
	defaultAge          = 65
)

// NormalizeInput coerces a raw check-in row into a TrajectoryInput.
// The surgery category is required and never defaulted; all other
// fields fall back to documented defaults.
func NormalizeInput(raw record.Raw) (*TrajectoryInput, error) {
	surgery, err := parseSurgery(raw)
	if err != nil {
		return nil, err
	}
	adherence, err := record.Bool(raw, "adherence", true)
	if err != nil {
		return nil, err
	}
	in := &TrajectoryInput{
		Surgery:            surgery,
		DaysSinceDischarge: floor0(record.Int(raw, "days_since_discharge", 0)),
		Pain:               scale10(record.Int(raw, "pain", defaultPain)),
		PrevPain:           scale10(record.Int(raw, "prev_pain", defaultPrevPain)),
		Mobility:           scale10(record.Int(raw, "mobility", defaultMobility)),
		PrevMobility:       scale10(record.Int(raw, "prev_mobility", defaultPrevMobility)),
		Temperature:        record.Float(raw, "temperature", defaultTemperature),
		Adherence:          adherence,
		Age:                floor0(record.Int(raw, "age", defaultAge)),
		HeartRate:          floor0(record.Int(raw, "heart_rate", defaultHeartRate)),
		SystolicBP:         floor0(record.Int(raw, "systolic_bp", defaultSystolicBP)),
		SpO2:               floor0(record.Int(raw, "spo2", defaultSpO2)),
		Comorbidities:      floor0(record.Int(raw, "comorbidities", 0)),
	}
	if in.Temperature < 0 {
		in.Temperature = 0
	}
	return in, nil
}

func parseSurgery(raw record.Raw) (SurgeryCategory, error) {
	s, ok := record.String(raw, "surgery")
	if !ok || s == "" {
		return "", record.Missing("surgery")
	}
	name := SurgeryCategory(strings.ToLower(s))
	for _, c := range SurgeryCategories {
		if name == c {
			return c, nil
		}
	}
	return "", record.Invalid("surgery", "is not a recognized surgery category")
}

func floor0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func scale10(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
