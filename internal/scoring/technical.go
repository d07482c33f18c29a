package scoring

import (
	"math"

	"github.com/mkowalski/recruitment-api/internal/types"
)

// ExperiencePolicy converts experience years and education level into the
// 0..1 experience/education sub-score. The curve is per-position
// configuration so postings can tune seniority expectations; the default is
// a linear ramp that saturates at YearsCap plus a flat bonus for higher
// education, clamped to 1.0.
type ExperiencePolicy struct {
	YearsCap       float64 `json:"years_cap"`
	EducationBonus float64 `json:"education_bonus"`
}

// DefaultExperiencePolicy returns the standard experience curve.
func DefaultExperiencePolicy() ExperiencePolicy {
	return ExperiencePolicy{YearsCap: 10, EducationBonus: 0.15}
}

// SubScore computes the experience/education signal for a candidate.
func (p ExperiencePolicy) SubScore(candidate *types.CandidateProfile) float64 {
	score := 0.0
	if p.YearsCap > 0 && candidate.ExperienceYears > 0 {
		score = candidate.ExperienceYears / p.YearsCap
	}
	if score > 1.0 {
		score = 1.0
	}
	if candidate.Education == types.EducationHigher {
		score += p.EducationBonus
	}
	return clamp01(score)
}

// ValidateFormula checks a scoring formula at the boundary where a
// position's configuration is loaded. A formula whose tier weights sum above
// 1 leaves a negative remainder for the experience/education signal and is a
// ConfigurationError, never something to clamp mid-scoring.
func ValidateFormula(formula types.ScoringFormula) error {
	if formula.MustHaveWeight < 0 || formula.NiceToHaveWeight < 0 {
		return &ConfigurationError{Message: "formula weights must be non-negative"}
	}
	if formula.MustHaveWeight > 1 || formula.NiceToHaveWeight > 1 {
		return &ConfigurationError{Message: "formula weights must not exceed 1"}
	}
	if formula.MustHaveWeight+formula.NiceToHaveWeight > 1 {
		return &ConfigurationError{Message: "must-have and nice-to-have weights sum above 1"}
	}
	return nil
}

// AggregateTechnical blends the two tier matches and the
// experience/education signal into a single 0..100 technical score, rounded
// to one decimal place for storage. The formula is validated again here so
// the function stays total even for callers that skipped the load boundary.
func AggregateTechnical(mustHave, niceToHave MatchResult, candidate *types.CandidateProfile, formula types.ScoringFormula, policy ExperiencePolicy) (float64, error) {
	if err := ValidateFormula(formula); err != nil {
		return 0, err
	}

	experienceWeight := 1 - formula.MustHaveWeight - formula.NiceToHaveWeight
	score := 100 * (formula.MustHaveWeight*mustHave.NormalizedScore +
		formula.NiceToHaveWeight*niceToHave.NormalizedScore +
		experienceWeight*policy.SubScore(candidate))

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return roundTenth(score), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
