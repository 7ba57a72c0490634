package recovery

// SurgeryCategory is the closed set of tracked procedure types.
type SurgeryCategory string

const (
	SurgeryGeneral        SurgeryCategory = "general_surgery"
	SurgeryHipKnee        SurgeryCategory = "hip_knee_replacement"
	SurgerySpinal         SurgeryCategory = "spinal_surgery"
	SurgeryGI             SurgeryCategory = "gi_surgery"
	SurgeryTumorResection SurgeryCategory = "solid_tumor_resection"
	SurgeryCardiacBypass  SurgeryCategory = "cardiac_bypass"
)

// SurgeryCategories lists every recognized category.
var SurgeryCategories = []SurgeryCategory{
	SurgeryGeneral,
	SurgeryHipKnee,
	SurgerySpinal,
	SurgeryGI,
	SurgeryTumorResection,
	SurgeryCardiacBypass,
}

// Zone is the coarse risk bucket for one check-in.
type Zone string

const (
	ZoneLow    Zone = "Low"
	ZoneMedium Zone = "Medium"
	ZoneHigh   Zone = "High"
)

// Trend classifies movement between two scores.
type Trend string

const (
	TrendImproving Trend = "Improving"
	TrendWorsening Trend = "Worsening"
	TrendStable    Trend = "Stable"
)

// Scoring-path provenance carried on every result.
const (
	SourceRules    = "rules"
	SourceFallback = "fallback"
)

// TrajectoryInput is one normalized recovery check-in. Pain and
// mobility are on a 0-10 scale; temperature is in degrees Fahrenheit.
type TrajectoryInput struct {
	Surgery            SurgeryCategory `json:"surgery"`
	DaysSinceDischarge int             `json:"days_since_discharge"`
	Pain               int             `json:"pain"`
	PrevPain           int             `json:"prev_pain"`
	Mobility           int             `json:"mobility"`
	PrevMobility       int             `json:"prev_mobility"`
	Temperature        float64         `json:"temperature"`
	Adherence          bool            `json:"adherence"`
	Age                int             `json:"age"`
	HeartRate          int             `json:"heart_rate"`
	SystolicBP         int             `json:"systolic_bp"`
	SpO2               int             `json:"spo2"`
	Comorbidities      int             `json:"comorbidities"`
}

// TrajectoryResult is the outcome of scoring one check-in. Stateless:
// the caller persists a history if trend-over-time is desired.
type TrajectoryResult struct {
	RiskPercentage int    `json:"risk_percentage"`
	Zone           Zone   `json:"zone"`
	Message        string `json:"message"`
	Source         string `json:"source"`
}
