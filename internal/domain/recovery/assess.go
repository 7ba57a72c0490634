package recovery

import (
	"math"
	"strings"
)

// Zone floors over the 0-100 risk percentage. 40 is Medium, 70 is
// High.
const (
	zoneMediumFloor = 40
	zoneHighFloor   = 70
)

// Fever thresholds in degrees Fahrenheit.
const (
	feverAdvisoryF = 99.5
	feverHighF     = 100.4
)

// Deterioration indicator cutoffs.
const (
	tachycardiaBPM  = 100
	hypotensionMMHG = 90
	hypoxiaPct      = 92
)

// surgeryBase is each category's baseline point load.
var surgeryBase = map[SurgeryCategory]int{
	SurgeryGeneral:        5,
	SurgeryHipKnee:        8,
	SurgeryGI:             10,
	SurgerySpinal:         12,
	SurgeryTumorResection: 14,
	SurgeryCardiacBypass:  16,
}

var zoneMessages = map[Zone]string{
	ZoneHigh:   "High risk of post-operative complications detected. Strict monitoring required.",
	ZoneMedium: "Moderate risk. Ensure patient adheres to recovery protocols and hydration.",
	ZoneLow:    "Low risk. Patient is on track for a safe pre/post-operation baseline.",
}

const (
	adviceAdherence = "Medication non-adherence reported. Reinforce the prescribed dosing schedule."
	advicePain      = "Pain trending upward since the last check-in. Review the analgesia plan."
	adviceFever     = "Temperature above 99.5F. Monitor for infection."
)

// TrajectoryScorer computes a recovery risk percentage from one
// normalized check-in.
type TrajectoryScorer interface {
	Score(in *TrajectoryInput) TrajectoryResult
}

// RuleScorer is the nominal threshold-point model. Each rule below
// contributes a fixed number of points; the clamped sum is the risk
// percentage.
type RuleScorer struct{}

func (RuleScorer) Score(in *TrajectoryInput) TrajectoryResult {
	p := surgeryBase[in.Surgery]

	switch {
	case in.Temperature > feverHighF:
		p += 18
	case in.Temperature > feverAdvisoryF:
		p += 8
	}
	if in.HeartRate > tachycardiaBPM {
		p += 10
	}
	if in.SystolicBP < hypotensionMMHG {
		p += 12
	}
	if in.SpO2 < hypoxiaPct {
		p += 16
	}
	if in.Pain >= 7 {
		p += 10
	}
	if TrendOf(float64(in.Pain), float64(in.PrevPain), true) == TrendWorsening {
		p += 8
	}
	if in.Mobility <= 3 {
		p += 8
	}
	if in.PrevMobility-in.Mobility >= 2 {
		p += 8
	}
	if !in.Adherence {
		p += 10
	}
	if in.Age > 75 {
		p += 6
	}
	if in.Comorbidities > 3 {
		p += 8
	}
	if in.DaysSinceDischarge <= 3 {
		p += 5
	}

	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return compose(p, in, SourceRules)
}

// FallbackScorer is the placeholder linear model retained from before
// the rule model existed: risk rises with pain and falls with
// mobility.
type FallbackScorer struct{}

func (FallbackScorer) Score(in *TrajectoryInput) TrajectoryResult {
	prob := 0.52 + float64(in.Pain)*0.05 - float64(in.Mobility)*0.02
	if prob < 0.01 {
		prob = 0.01
	}
	if prob > 0.99 {
		prob = 0.99
	}
	return compose(int(math.Round(prob*100)), in, SourceFallback)
}

// TrendOf classifies the movement between two scores.
// adverseOnIncrease is true for measures where a rise is bad (pain)
// and false where a rise is good (mobility).
func TrendOf(current, previous float64, adverseOnIncrease bool) Trend {
	switch {
	case current == previous:
		return TrendStable
	case current > previous:
		if adverseOnIncrease {
			return TrendWorsening
		}
		return TrendImproving
	default:
		if adverseOnIncrease {
			return TrendImproving
		}
		return TrendWorsening
	}
}

// ZoneOf buckets a risk percentage.
func ZoneOf(pct int) Zone {
	switch {
	case pct >= zoneHighFloor:
		return ZoneHigh
	case pct >= zoneMediumFloor:
		return ZoneMedium
	default:
		return ZoneLow
	}
}

func compose(pct int, in *TrajectoryInput, source string) TrajectoryResult {
	z := ZoneOf(pct)
	return TrajectoryResult{
		RiskPercentage: pct,
		Zone:           z,
		Message:        advisory(z, in),
		Source:         source,
	}
}

// advisory assembles the zone's base message plus at most one line per
// flagged condition, in fixed order.
func advisory(z Zone, in *TrajectoryInput) string {
	lines := []string{zoneMessages[z]}
	if !in.Adherence {
		lines = append(lines, adviceAdherence)
	}
	if in.Pain > in.PrevPain {
		lines = append(lines, advicePain)
	}
	if in.Temperature > feverAdvisoryF {
		lines = append(lines, adviceFever)
	}
	return strings.Join(lines, " ")
}
