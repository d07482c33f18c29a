package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkowalski/recruitment-api/internal/types"
)

// InterviewRecord is a stored AI interview. The token is the candidate-facing
// handle used to join and answer; the internal ID never leaves the API.
// Records are append-only per application; only the latest one feeds ranking.
type InterviewRecord struct {
	ID                  uuid.UUID             `json:"id"`
	ApplicationID       uuid.UUID             `json:"application_id"`
	Token               uuid.UUID             `json:"token"`
	Status              types.InterviewStatus `json:"status"`
	Questions           []string              `json:"questions"`
	Answers             []InterviewAnswer     `json:"answers"`
	SoftSkillAssessment map[string]float64    `json:"soft_skill_assessment,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	CompletedAt         *time.Time            `json:"completed_at,omitempty"`
}

// InterviewAnswer is one answered question with its per-category analysis.
type InterviewAnswer struct {
	Question string             `json:"question"`
	Answer   string             `json:"answer"`
	Scores   map[string]float64 `json:"scores,omitempty"`
}

// Interview converts the record to the pipeline view.
func (r *InterviewRecord) Interview() types.Interview {
	return types.Interview{
		Status:              r.Status,
		SoftSkillAssessment: r.SoftSkillAssessment,
	}
}
