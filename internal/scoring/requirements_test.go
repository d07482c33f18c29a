package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkowalski/recruitment-api/internal/types"
)

func TestMatchRequirements_WeightedHits(t *testing.T) {
	requirements := []types.Requirement{
		{Skill: "Go", Level: types.LevelAdvanced, Weight: 8},
		{Skill: "PostgreSQL", Level: types.LevelRegular, Weight: 4},
		{Skill: "Kafka", Level: types.LevelBasic, Weight: 2},
	}
	candidate := &types.CandidateProfile{Technologies: []string{"Go", "PostgreSQL"}}

	result := MatchRequirements(requirements, candidate)

	// Go (8) + PostgreSQL (4) out of 14 total weight
	assert.InDelta(t, 12.0/14.0, result.NormalizedScore, 0.001)
	assert.Len(t, result.PerItem, 3)
	assert.True(t, result.PerItem[0].Matched)
	assert.True(t, result.PerItem[1].Matched)
	assert.False(t, result.PerItem[2].Matched)
	assert.Equal(t, 2, result.MatchedCount())
}

func TestMatchRequirements_CaseInsensitiveTrimmed(t *testing.T) {
	requirements := []types.Requirement{
		{Skill: "TypeScript", Level: types.LevelRegular, Weight: 5},
	}
	candidate := &types.CandidateProfile{Technologies: []string{"  typescript "}}

	result := MatchRequirements(requirements, candidate)

	assert.Equal(t, 1.0, result.NormalizedScore)
}

func TestMatchRequirements_BinaryMatchIgnoresLevel(t *testing.T) {
	requirements := []types.Requirement{
		{Skill: "Go", Level: types.LevelExpert, Weight: 10},
	}
	candidate := &types.CandidateProfile{Technologies: []string{"Go"}}

	result := MatchRequirements(requirements, candidate)

	// Having the skill is a full hit regardless of required level; the level
	// is still present in the breakdown for display.
	assert.Equal(t, 1.0, result.NormalizedScore)
	assert.Equal(t, types.LevelExpert, result.PerItem[0].Level)
}

func TestMatchRequirements_SoftSkillsCountTowardMatching(t *testing.T) {
	requirements := []types.Requirement{
		{Skill: "communication", Level: types.LevelRegular, Weight: 3},
	}
	candidate := &types.CandidateProfile{SoftSkills: []string{"Communication"}}

	result := MatchRequirements(requirements, candidate)

	assert.Equal(t, 1.0, result.NormalizedScore)
}

func TestMatchRequirements_EmptyListVacuouslySatisfied(t *testing.T) {
	candidate := &types.CandidateProfile{Technologies: []string{"Go"}}

	result := MatchRequirements(nil, candidate)

	assert.Equal(t, 1.0, result.NormalizedScore)
	assert.Empty(t, result.PerItem)
}

func TestMatchRequirements_NoSkillsAtAll(t *testing.T) {
	requirements := []types.Requirement{
		{Skill: "Go", Level: types.LevelRegular, Weight: 5},
	}
	candidate := &types.CandidateProfile{}

	result := MatchRequirements(requirements, candidate)

	assert.Equal(t, 0.0, result.NormalizedScore)
}

func TestMatchRequirements_ScoreAlwaysInRange(t *testing.T) {
	requirements := []types.Requirement{
		{Skill: "Go", Level: types.LevelRegular, Weight: 10},
		{Skill: "Rust", Level: types.LevelRegular, Weight: 1},
	}
	candidates := []*types.CandidateProfile{
		{},
		{Technologies: []string{"Go"}},
		{Technologies: []string{"Go", "Rust", "Zig"}},
	}

	for _, candidate := range candidates {
		result := MatchRequirements(requirements, candidate)
		assert.GreaterOrEqual(t, result.NormalizedScore, 0.0)
		assert.LessOrEqual(t, result.NormalizedScore, 1.0)
	}
}
