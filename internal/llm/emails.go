// Package llm - emails.go drafts decision emails for offered and rejected
// candidates.
package llm

import (
	"context"
	"strings"

	"github.com/mkowalski/recruitment-api/internal/prompts"
	"github.com/mkowalski/recruitment-api/internal/types"
)

// EmailInput carries the candidate context used to personalize a decision
// email draft.
type EmailInput struct {
	CandidateName       string
	PositionTitle       string
	TechnicalSkills     []string
	Strengths           []string
	AreasForDevelopment []string
}

// DraftDecisionEmail generates a ready-to-send email draft for the given
// decision. Offers highlight the candidate's strengths; rejections thank the
// candidate and name concrete areas for development.
func DraftDecisionEmail(ctx context.Context, client Client, input EmailInput, decision types.Decision) (string, error) {
	key := "rejection-email"
	if decision == types.DecisionOffered {
		key = "offer-email"
	}

	template := prompts.MustGet("recruitment.json", key)
	prompt := prompts.Format(template, map[string]string{
		"CandidateName":       orDefault(input.CandidateName, "Candidate"),
		"PositionTitle":       orDefault(input.PositionTitle, "the position"),
		"TechnicalSkills":     orDefault(strings.Join(input.TechnicalSkills, ", "), "technical skills from the CV"),
		"Strengths":           orDefault(strings.Join(input.Strengths, ", "), "soft skills from the AI interview"),
		"AreasForDevelopment": orDefault(strings.Join(input.AreasForDevelopment, ", "), "areas for development"),
	})

	draft, err := client.GenerateContent(ctx, prompt, TierAdvanced)
	if err != nil {
		return "", &APICallError{
			Message: "failed to draft decision email",
			Cause:   err,
		}
	}
	return strings.TrimSpace(draft), nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
