package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPositionRequest() *CreatePositionRequest {
	return &CreatePositionRequest{
		Title: "Backend Developer",
		MustHave: []Requirement{
			{Skill: "Go", Level: LevelAdvanced, Weight: 8},
		},
		NiceToHave: []Requirement{
			{Skill: "Kubernetes", Level: LevelBasic, Weight: 3},
		},
		Formula: ScoringFormula{MustHaveWeight: 0.6, NiceToHaveWeight: 0.25},
	}
}

func TestCreatePositionRequest_Valid(t *testing.T) {
	assert.NoError(t, validPositionRequest().Validate())
}

func TestCreatePositionRequest_WeightOutOfRange(t *testing.T) {
	req := validPositionRequest()
	req.MustHave[0].Weight = 11

	assert.Error(t, req.Validate())

	req.MustHave[0].Weight = 0
	assert.Error(t, req.Validate())
}

func TestCreatePositionRequest_UnknownLevel(t *testing.T) {
	req := validPositionRequest()
	req.NiceToHave[0].Level = "guru"

	assert.Error(t, req.Validate())
}

func TestCreatePositionRequest_MissingTitle(t *testing.T) {
	req := validPositionRequest()
	req.Title = ""

	assert.Error(t, req.Validate())
}

func TestNormalizeSkill(t *testing.T) {
	assert.Equal(t, "go", NormalizeSkill("  Go "))
	assert.Equal(t, "postgresql", NormalizeSkill("PostgreSQL"))
}

func TestAllSkills_CombinesTechnologiesAndSoftSkills(t *testing.T) {
	p := &CandidateProfile{
		Technologies: []string{"Go", "SQL"},
		SoftSkills:   []string{"communication"},
	}

	assert.ElementsMatch(t, []string{"Go", "SQL", "communication"}, p.AllSkills())
}
