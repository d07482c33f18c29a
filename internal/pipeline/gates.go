package pipeline

import (
	"github.com/mkowalski/recruitment-api/internal/scoring"
	"github.com/mkowalski/recruitment-api/internal/types"
)

// Gates holds the action eligibility flags for one application. Like the
// stage, gates are recomputed from a live snapshot on every read; callers
// performing a gated write must re-evaluate against a freshly re-read
// snapshot before committing.
type Gates struct {
	CanSendRecruitmentTask bool `json:"can_send_recruitment_task"`
	IsEligibleForInterview bool `json:"is_eligible_for_interview"`
	IsQualified            bool `json:"is_qualified"`
	CanMakeDecision        bool `json:"can_make_decision"`
}

// CanSendRecruitmentTask reports whether the recruitment task may be sent:
// the combined score has reached the send threshold and no task was sent yet.
func CanSendRecruitmentTask(s *types.Snapshot, combined float64) bool {
	return combined >= scoring.TaskSendThreshold && s.TaskStatus == nil
}

// IsEligibleForInterview reports whether an AI interview may be scheduled:
// the CV has been scored at or above the qualification threshold and no
// interview exists yet.
func IsEligibleForInterview(s *types.Snapshot) bool {
	return s.TechnicalScore != nil &&
		*s.TechnicalScore >= scoring.QualificationThreshold &&
		len(s.Interviews) == 0
}

// IsQualified is the display-only qualification flag. It is independent of
// interview gating and stays true after interviews exist.
func IsQualified(s *types.Snapshot) bool {
	return s.TechnicalScore != nil && *s.TechnicalScore >= scoring.QualificationThreshold
}

// CanMakeDecision reports whether a hiring decision may still be recorded.
// Decisions are not gated on task completion; any prior state is permitted
// as long as no decision exists yet.
func CanMakeDecision(s *types.Snapshot) bool {
	return s.Decision == nil
}

// EvaluateGates computes all four gates against one snapshot and its
// combined ranking score.
func EvaluateGates(s *types.Snapshot, combined float64) Gates {
	return Gates{
		CanSendRecruitmentTask: CanSendRecruitmentTask(s, combined),
		IsEligibleForInterview: IsEligibleForInterview(s),
		IsQualified:            IsQualified(s),
		CanMakeDecision:        CanMakeDecision(s),
	}
}

// Rank computes the ranking score for a snapshot: the stored technical score
// blended with the soft-skill average of the latest completed interview.
// Applications without a technical score rank at zero.
func Rank(s *types.Snapshot) scoring.RankingScore {
	technical := 0.0
	if s.TechnicalScore != nil {
		technical = *s.TechnicalScore
	}
	var soft *float64
	if iv := s.LatestInterview(); iv != nil {
		soft = scoring.AggregateSoftSkills(iv.SoftSkillAssessment)
	}
	return scoring.Combine(technical, soft)
}
