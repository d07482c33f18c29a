package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkowalski/recruitment-api/internal/types"
)

// Application represents one candidate's application to one position. The
// pipeline-relevant fields are independently nullable; the current stage is
// never stored and is always derived from a snapshot of these fields.
type Application struct {
	ID             uuid.UUID         `json:"id"`
	CandidateID    uuid.UUID         `json:"candidate_id"`
	PositionID     uuid.UUID         `json:"position_id"`
	TechnicalScore *float64          `json:"technical_score,omitempty"`
	ScoreBreakdown []byte            `json:"-"` // raw JSONB, decoded on demand
	TaskStatus     *types.TaskStatus `json:"task_status,omitempty"`
	TaskScore      *int              `json:"task_score,omitempty"`
	Decision       *types.Decision   `json:"decision,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Snapshot assembles the read-only view consumed by stage derivation,
// gating, and ranking. Interviews are passed in by the caller because they
// live in their own table.
func (a *Application) Snapshot(interviews []types.Interview) *types.Snapshot {
	return &types.Snapshot{
		TechnicalScore: a.TechnicalScore,
		Interviews:     interviews,
		TaskStatus:     a.TaskStatus,
		Decision:       a.Decision,
	}
}
