package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalski/recruitment-api/internal/scoring"
	"github.com/mkowalski/recruitment-api/internal/types"
)

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPositionFile(t *testing.T) {
	path := writeTempJSON(t, "position.json", `{
		"title": "Backend Developer",
		"must_have": [{"skill": "Go", "level": "advanced", "weight": 8}],
		"formula": {"must_have_weight": 0.6, "nice_to_have_weight": 0.25}
	}`)

	position, err := loadPositionFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", position.Title)
	assert.Equal(t, 0.6, position.Formula.MustHaveWeight)
}

func TestLoadPositionFile_DefaultFormula(t *testing.T) {
	path := writeTempJSON(t, "position.json", `{"title": "Backend Developer"}`)

	position, err := loadPositionFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.6, position.Formula.MustHaveWeight)
	assert.Equal(t, 0.25, position.Formula.NiceToHaveWeight)
}

func TestLoadPositionFile_InvalidFormula(t *testing.T) {
	path := writeTempJSON(t, "position.json", `{
		"title": "Backend Developer",
		"formula": {"must_have_weight": 0.8, "nice_to_have_weight": 0.5}
	}`)

	_, err := loadPositionFile(path)
	assert.Error(t, err)
}

func TestLoadPositionFile_MissingTitle(t *testing.T) {
	path := writeTempJSON(t, "position.json", `{"description": "no title"}`)

	_, err := loadPositionFile(path)
	assert.Error(t, err)
}

func TestLoadCandidateFile(t *testing.T) {
	path := writeTempJSON(t, "candidate.json", `{
		"technologies": ["Go", "PostgreSQL"],
		"soft_skills": ["teamwork"],
		"experience_years": 5,
		"education": "higher"
	}`)

	candidate, err := loadCandidateFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, candidate.ExperienceYears)
	assert.Equal(t, types.EducationHigher, candidate.Education)
}

func TestScoreOffline(t *testing.T) {
	position := &types.CreatePositionRequest{
		Title: "Backend Developer",
		MustHave: []types.Requirement{
			{Skill: "Go", Level: types.LevelAdvanced, Weight: 8},
			{Skill: "Kafka", Level: types.LevelRegular, Weight: 2},
		},
		Formula: types.ScoringFormula{MustHaveWeight: 0.6, NiceToHaveWeight: 0.25},
	}
	candidate := &types.CandidateProfile{
		Technologies:    []string{"Go", "PostgreSQL"},
		ExperienceYears: 10,
	}

	report, err := scoreOffline(position, candidate)
	require.NoError(t, err)

	// must-have 0.8 matched weight, nice-to-have vacuous 1.0, experience
	// saturated: 100*(0.6*0.8 + 0.25*1.0 + 0.15*1.0) = 88
	assert.Equal(t, 88.0, report.TechnicalScore)
	assert.Equal(t, 1, report.MustHave.MatchedCount())
	assert.Equal(t, 1.0, report.NiceToHave.NormalizedScore)
	assert.Nil(t, report.Ranking.SoftSkills)
	assert.InDelta(t, 88.0*0.65, report.Ranking.Combined, 0.0001)
	assert.Equal(t, scoring.Recommended, report.Recommendation)
	assert.Equal(t, "qualified", report.Insights.Recommendation)
}

func TestScoreOffline_ExperienceCapOverride(t *testing.T) {
	position := &types.CreatePositionRequest{
		Title:              "Junior Developer",
		Formula:            types.ScoringFormula{MustHaveWeight: 0, NiceToHaveWeight: 0},
		ExperienceCapYears: 2,
	}
	candidate := &types.CandidateProfile{ExperienceYears: 2}

	report, err := scoreOffline(position, candidate)
	require.NoError(t, err)

	// With empty requirement lists everything rides on experience, which
	// saturates at the position's 2-year cap.
	assert.Equal(t, 100.0, report.TechnicalScore)
}
