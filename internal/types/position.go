package types

import (
	"github.com/go-playground/validator/v10"
)

// RequirementLevel is the proficiency tier attached to a requirement.
// Matching is binary; the level is carried through to the per-item breakdown
// for display only.
type RequirementLevel string

// Requirement level constants
const (
	LevelBasic    RequirementLevel = "basic"
	LevelRegular  RequirementLevel = "regular"
	LevelAdvanced RequirementLevel = "advanced"
	LevelExpert   RequirementLevel = "expert"
)

// Requirement is one weighted skill requirement on a job position. Positions
// carry two lists: must-have and nice-to-have.
type Requirement struct {
	Skill  string           `json:"skill" validate:"required,min=1"`
	Level  RequirementLevel `json:"level" validate:"required,oneof=basic regular advanced expert"`
	Weight int              `json:"weight" validate:"required,min=1,max=10"`
}

// ScoringFormula splits the technical score between the two requirement
// tiers. Whatever the weights leave over is allotted to the
// experience/education signal, so the two must not sum above 1.
type ScoringFormula struct {
	MustHaveWeight   float64 `json:"must_have_weight" validate:"min=0,max=1"`
	NiceToHaveWeight float64 `json:"nice_to_have_weight" validate:"min=0,max=1"`
}

// CreatePositionRequest is the payload for creating a job position.
// Malformed requirements (weight outside 1..10, unknown level) are rejected
// here, at the data-entry boundary, before anything reaches the engine.
type CreatePositionRequest struct {
	Title              string         `json:"title" validate:"required,min=1"`
	Description        string         `json:"description,omitempty"`
	MustHave           []Requirement  `json:"must_have" validate:"dive"`
	NiceToHave         []Requirement  `json:"nice_to_have" validate:"dive"`
	Formula            ScoringFormula `json:"formula"`
	ExperienceCapYears float64        `json:"experience_cap_years,omitempty" validate:"min=0"`
	TaskDescription    string         `json:"task_description,omitempty"`
}

// Validate validates the CreatePositionRequest using the validator.
func (r *CreatePositionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
