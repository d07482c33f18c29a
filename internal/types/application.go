package types

import "github.com/go-playground/validator/v10"

// TaskStatus tracks the recruitment task for an application. It progresses
// nil -> task_sent -> task_completed and is never cleared.
type TaskStatus string

// Task status constants
const (
	TaskSent      TaskStatus = "task_sent"
	TaskCompleted TaskStatus = "task_completed"
)

// Decision is the terminal hiring decision for an application. Set at most
// once; reopening is out of scope.
type Decision string

// Decision constants
const (
	DecisionOffered  Decision = "offered"
	DecisionRejected Decision = "rejected"
)

// InterviewStatus tracks an AI interview's lifecycle.
type InterviewStatus string

// Interview status constants
const (
	InterviewScheduled  InterviewStatus = "scheduled"
	InterviewInProgress InterviewStatus = "in_progress"
	InterviewCompleted  InterviewStatus = "completed"
)

// Interview holds the pipeline-relevant fields of one AI interview. The
// assessment maps free-form category names to 0..10 scores and stays nil
// until the interview completes.
type Interview struct {
	Status              InterviewStatus    `json:"status"`
	SoftSkillAssessment map[string]float64 `json:"soft_skill_assessment,omitempty"`
}

// Snapshot is a read-only view of the application fields that stage
// derivation, gating, and ranking consume. All fields are independently
// nullable until populated by a prior pipeline step. The stage is never
// stored anywhere; every consumer derives it from a snapshot so displays
// cannot drift from the underlying records.
type Snapshot struct {
	TechnicalScore *float64    `json:"technical_score,omitempty"`
	Interviews     []Interview `json:"interviews,omitempty"`
	TaskStatus     *TaskStatus `json:"task_status,omitempty"`
	Decision       *Decision   `json:"decision,omitempty"`
}

// LatestInterview returns the most recently appended interview, or nil when
// there is none. Interviews are append-only; only the latest one is
// authoritative for scoring.
func (s *Snapshot) LatestInterview() *Interview {
	if len(s.Interviews) == 0 {
		return nil
	}
	return &s.Interviews[len(s.Interviews)-1]
}

// CreateApplicationRequest is the payload for creating an application.
type CreateApplicationRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,uuid"`
	PositionID  string `json:"position_id" validate:"required,uuid"`
	CVText      string `json:"cv_text,omitempty"`
}

// Validate validates the CreateApplicationRequest using the validator.
func (r *CreateApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CreateCandidateRequest is the payload for registering a candidate.
type CreateCandidateRequest struct {
	FullName string `json:"full_name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	City     string `json:"city,omitempty"`
}

// Validate validates the CreateCandidateRequest using the validator.
func (r *CreateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// DecisionRequest is the payload for recording a hiring decision.
type DecisionRequest struct {
	Decision Decision `json:"decision" validate:"required,oneof=offered rejected"`
}

// Validate validates the DecisionRequest using the validator.
func (r *DecisionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
