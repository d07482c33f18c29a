package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkowalski/recruitment-api/internal/types"
)

// Default formula weights applied when a position is created without one.
const (
	DefaultMustHaveWeight   = 0.6
	DefaultNiceToHaveWeight = 0.25
)

// Position represents a job position with its weighted requirement lists and
// scoring formula. Requirement lists live in JSONB columns; the formula
// weights are plain columns so they can be tuned without rewriting the lists.
type Position struct {
	ID                 uuid.UUID           `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	MustHave           []types.Requirement `json:"must_have"`
	NiceToHave         []types.Requirement `json:"nice_to_have"`
	MustHaveWeight     float64             `json:"must_have_weight"`
	NiceToHaveWeight   float64             `json:"nice_to_have_weight"`
	ExperienceCapYears *float64            `json:"experience_cap_years,omitempty"`
	TaskDescription    *string             `json:"task_description,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// Formula returns the position's scoring formula.
func (p *Position) Formula() types.ScoringFormula {
	return types.ScoringFormula{
		MustHaveWeight:   p.MustHaveWeight,
		NiceToHaveWeight: p.NiceToHaveWeight,
	}
}

// PositionCreateInput is used when creating or updating a position
type PositionCreateInput struct {
	Title              string
	Description        string
	MustHave           []types.Requirement
	NiceToHave         []types.Requirement
	MustHaveWeight     float64
	NiceToHaveWeight   float64
	ExperienceCapYears *float64
	TaskDescription    string
}
