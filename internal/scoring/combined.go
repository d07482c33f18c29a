package scoring

// Blend weights and thresholds for the combined ranking score. These are
// fixed policy constants, not per-position configuration; keeping them in one
// place is what lets the UI, gating, and reporting agree on every read.
const (
	// TechnicalBlendWeight is the technical share of the combined score.
	TechnicalBlendWeight = 0.65
	// SoftSkillBlendWeight is the soft-skill share of the combined score.
	SoftSkillBlendWeight = 0.35

	// QualificationThreshold is the minimum technical score for interview
	// eligibility and the "qualified" display flag.
	QualificationThreshold = 20.0
	// TaskSendThreshold is the minimum combined score before a recruitment
	// task may be sent.
	TaskSendThreshold = 50.0
)

// Recommendation is the display band derived from a combined score.
type Recommendation string

// Recommendation bands
const (
	NotRecommended  Recommendation = "not_recommended"
	SemiRecommended Recommendation = "semi_recommended"
	Recommended     Recommendation = "recommended"
)

// RankingScore is the comparable score triple for one application.
type RankingScore struct {
	Technical  float64  `json:"technical"`             // 0..100
	SoftSkills *float64 `json:"soft_skills,omitempty"` // 0..10, nil without interview data
	Combined   float64  `json:"combined"`              // 0..100
}

// Combine blends a technical score with an aggregated soft-skill score into
// the single ranking value. A nil soft-skill score counts as zero: candidates
// without a completed interview still rank, discounted by the missing 35%,
// so they sort below otherwise-equal candidates who interviewed well.
func Combine(technical float64, softSkills *float64) RankingScore {
	softNormalized := 0.0
	if softSkills != nil {
		softNormalized = *softSkills * 10
	}
	return RankingScore{
		Technical:  technical,
		SoftSkills: softSkills,
		Combined:   technical*TechnicalBlendWeight + softNormalized*SoftSkillBlendWeight,
	}
}

// Recommend maps a combined score to its display band. The boundaries are
// inclusive at 20 and 50 on the lower band.
func Recommend(combined float64) Recommendation {
	switch {
	case combined <= QualificationThreshold:
		return NotRecommended
	case combined <= TaskSendThreshold:
		return SemiRecommended
	default:
		return Recommended
	}
}
