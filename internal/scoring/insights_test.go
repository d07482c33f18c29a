package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkowalski/recruitment-api/internal/types"
)

func breakdown(matched, missed int) MatchResult {
	var items []RequirementMatch
	for i := 0; i < matched; i++ {
		items = append(items, RequirementMatch{Skill: "hit", Matched: true, Weight: 1})
	}
	for i := 0; i < missed; i++ {
		items = append(items, RequirementMatch{Skill: "miss", Weight: 1})
	}
	return MatchResult{PerItem: items}
}

func TestBuildInsights_QualifiedCandidate(t *testing.T) {
	candidate := &types.CandidateProfile{ExperienceYears: 6, Education: types.EducationHigher}

	insights := BuildInsights(62.5, breakdown(3, 1), breakdown(1, 2), candidate)

	assert.Equal(t, "qualified", insights.Recommendation)
	assert.Contains(t, insights.Summary, "62.5")
	assert.Contains(t, insights.Summary, "3/4")
	assert.Contains(t, insights.Summary, "Strong candidate")
	assert.Contains(t, insights.Strengths, "Higher education")
	assert.Empty(t, insights.AreasForDevelopment)
}

func TestBuildInsights_NoMustHaveHits(t *testing.T) {
	candidate := &types.CandidateProfile{ExperienceYears: 0.5}

	insights := BuildInsights(10, breakdown(0, 3), breakdown(0, 1), candidate)

	assert.Equal(t, "not_qualified", insights.Recommendation)
	assert.Contains(t, insights.AreasForDevelopment, "Missing key technical skills")
	assert.Contains(t, insights.AreasForDevelopment, "Limited professional experience")
	assert.Empty(t, insights.Strengths)
}
