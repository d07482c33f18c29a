// Package pipeline derives an application's recruitment stage and action
// gates from a snapshot of its stored fields. Nothing here is persisted:
// the stage is a pure classification of current data, recomputed on every
// read so displays cannot drift from the records.
package pipeline

import "github.com/mkowalski/recruitment-api/internal/types"

// Stage is one of five mutually exclusive recruitment pipeline states.
type Stage string

// Pipeline stages, in normal progression order.
const (
	StageNewApplications Stage = "new_applications"
	StageCVScreening     Stage = "cv_screening"
	StageAIInterview     Stage = "ai_interview"
	StageRecruitmentTask Stage = "recruitment_task"
	StageDecision        Stage = "decision"
)

// AllStages lists the stages in board-column order.
func AllStages() []Stage {
	return []Stage{
		StageNewApplications,
		StageCVScreening,
		StageAIInterview,
		StageRecruitmentTask,
		StageDecision,
	}
}

// DeriveStage classifies a snapshot into its current stage. Conditions are
// checked in order and the first match wins. Once the task has been sent, a
// recorded decision wins over the task state.
func DeriveStage(s *types.Snapshot) Stage {
	switch {
	case s.TechnicalScore == nil:
		return StageNewApplications
	case len(s.Interviews) == 0:
		return StageCVScreening
	case s.TaskStatus == nil:
		return StageAIInterview
	case s.Decision != nil:
		return StageDecision
	default:
		return StageRecruitmentTask
	}
}
