// Package scoring implements the candidate scoring engine: weighted
// requirement matching, the technical score aggregate, soft-skill reduction,
// and the combined ranking score. Every function here is pure and total;
// callers pass in immutable snapshots and may score concurrently without
// locking.
package scoring

import (
	"github.com/mkowalski/recruitment-api/internal/types"
)

// RequirementMatch is the per-item entry of a match breakdown. The level is
// carried through for display; it does not scale the match.
type RequirementMatch struct {
	Skill   string                 `json:"skill"`
	Level   types.RequirementLevel `json:"level"`
	Matched bool                   `json:"matched"`
	Weight  int                    `json:"weight"`
}

// MatchResult is the outcome of scoring one requirement list against a
// candidate.
type MatchResult struct {
	NormalizedScore float64            `json:"normalized_score"` // 0..1
	PerItem         []RequirementMatch `json:"per_item"`
}

// MatchRequirements scores a candidate's skill set against one weighted
// requirement list. A requirement matches when the candidate lists the skill,
// compared case-insensitively after trimming; the match is binary. The
// aggregate is the weight-normalized sum of matches. An empty list is
// vacuously satisfied and scores 1.0, which also keeps the division guarded.
func MatchRequirements(requirements []types.Requirement, candidate *types.CandidateProfile) MatchResult {
	if len(requirements) == 0 {
		return MatchResult{NormalizedScore: 1.0}
	}

	candidateSkills := make(map[string]bool)
	for _, skill := range candidate.AllSkills() {
		normalized := types.NormalizeSkill(skill)
		if normalized != "" {
			candidateSkills[normalized] = true
		}
	}

	totalWeight := 0
	matchedWeight := 0
	perItem := make([]RequirementMatch, 0, len(requirements))
	for _, req := range requirements {
		matched := candidateSkills[types.NormalizeSkill(req.Skill)]
		totalWeight += req.Weight
		if matched {
			matchedWeight += req.Weight
		}
		perItem = append(perItem, RequirementMatch{
			Skill:   req.Skill,
			Level:   req.Level,
			Matched: matched,
			Weight:  req.Weight,
		})
	}

	score := 0.0
	if totalWeight > 0 {
		score = float64(matchedWeight) / float64(totalWeight)
	}

	return MatchResult{NormalizedScore: score, PerItem: perItem}
}

// MatchedCount returns how many requirements in the breakdown were hit.
func (r MatchResult) MatchedCount() int {
	count := 0
	for _, item := range r.PerItem {
		if item.Matched {
			count++
		}
	}
	return count
}
