package scoring

import (
	"fmt"

	"github.com/mkowalski/recruitment-api/internal/types"
)

// Insights is the human-readable summary attached to a scoring run. It is
// derived deterministically from the match breakdown, not from the LLM.
type Insights struct {
	Summary             string   `json:"summary"`
	Strengths           []string `json:"strengths"`
	AreasForDevelopment []string `json:"areas_for_development"`
	Recommendation      string   `json:"interview_recommendation"` // "qualified" or "not_qualified"
}

// BuildInsights summarizes a technical scoring run for recruiters.
func BuildInsights(totalScore float64, mustHave, niceToHave MatchResult, candidate *types.CandidateProfile) Insights {
	mustHaveHits := mustHave.MatchedCount()
	mustHaveTotal := len(mustHave.PerItem)
	niceToHaveHits := niceToHave.MatchedCount()

	insights := Insights{
		Summary: fmt.Sprintf("Candidate scored %.1f out of 100. Meets %d/%d must-have requirements.",
			totalScore, mustHaveHits, mustHaveTotal),
		Recommendation: "not_qualified",
	}
	if totalScore >= QualificationThreshold {
		insights.Recommendation = "qualified"
	}

	if mustHaveHits > 0 {
		insights.Strengths = append(insights.Strengths,
			fmt.Sprintf("Has %d of %d key skills", mustHaveHits, mustHaveTotal))
	}
	if mustHaveTotal > 0 && float64(mustHaveHits) >= float64(mustHaveTotal)*0.7 {
		insights.Strengths = append(insights.Strengths, "Meets most must-have requirements")
	} else if mustHaveHits == 0 && mustHaveTotal > 0 {
		insights.AreasForDevelopment = append(insights.AreasForDevelopment, "Missing key technical skills")
	}
	if niceToHaveHits > 0 {
		insights.Strengths = append(insights.Strengths,
			fmt.Sprintf("Additional skills: %d nice-to-have", niceToHaveHits))
	}

	switch {
	case candidate.ExperienceYears >= 5:
		insights.Strengths = append(insights.Strengths,
			fmt.Sprintf("Extensive experience (%.0f years)", candidate.ExperienceYears))
	case candidate.ExperienceYears >= 2:
		insights.Strengths = append(insights.Strengths,
			fmt.Sprintf("Solid experience (%.0f years)", candidate.ExperienceYears))
	case candidate.ExperienceYears < 1:
		insights.AreasForDevelopment = append(insights.AreasForDevelopment, "Limited professional experience")
	}

	if candidate.Education == types.EducationHigher {
		insights.Strengths = append(insights.Strengths, "Higher education")
	}

	switch {
	case totalScore >= 50:
		insights.Summary += " Strong candidate."
	case totalScore >= 30:
		insights.Summary += " Promising candidate with potential."
	case totalScore >= QualificationThreshold:
		insights.Summary += " Worth considering; focus on soft skills."
	}

	return insights
}
