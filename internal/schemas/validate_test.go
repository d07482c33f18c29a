package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCandidateProfile_Valid(t *testing.T) {
	valid := `{
		"technologies": ["Go", "PostgreSQL"],
		"soft_skills": ["communication"],
		"experience_years": 4.5,
		"education": "higher"
	}`

	assert.NoError(t, ValidateCandidateProfile(valid))
}

func TestValidateCandidateProfile_MissingRequired(t *testing.T) {
	err := ValidateCandidateProfile(`{"soft_skills": ["teamwork"]}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateCandidateProfile_BadEducation(t *testing.T) {
	err := ValidateCandidateProfile(`{
		"technologies": [],
		"experience_years": 2,
		"education": "bootcamp"
	}`)

	assert.Error(t, err)
}

func TestValidateCandidateProfile_NegativeExperience(t *testing.T) {
	err := ValidateCandidateProfile(`{
		"technologies": ["Go"],
		"experience_years": -1
	}`)

	assert.Error(t, err)
}

func TestValidateAnswerAnalysis_Valid(t *testing.T) {
	valid := `{
		"soft_skill_assessment": {
			"emotional_intelligence": 7,
			"teamwork": 8.5
		},
		"strengths": ["clear storytelling"],
		"areas_for_development": ["brevity"],
		"summary": "Solid answer with a concrete example."
	}`

	assert.NoError(t, ValidateAnswerAnalysis(valid))
}

func TestValidateAnswerAnalysis_EmptyAssessment(t *testing.T) {
	assert.Error(t, ValidateAnswerAnalysis(`{"soft_skill_assessment": {}}`))
}

func TestValidateAnswerAnalysis_ScoreOutOfRange(t *testing.T) {
	err := ValidateAnswerAnalysis(`{
		"soft_skill_assessment": {"teamwork": 15}
	}`)

	assert.Error(t, err)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(`{"type": "object"}`, `{not json`)

	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
