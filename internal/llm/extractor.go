// Package llm - extractor.go extracts a structured candidate profile from
// raw CV text.
package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mkowalski/recruitment-api/internal/prompts"
	"github.com/mkowalski/recruitment-api/internal/schemas"
	"github.com/mkowalski/recruitment-api/internal/types"
)

// ExtractProfile extracts a CandidateProfile from raw CV text. The response
// is schema-validated before decoding; a profile that fails validation is a
// ParseError, never a partial profile.
func ExtractProfile(ctx context.Context, client Client, cvText, positionTitle string) (*types.CandidateProfile, error) {
	template := prompts.MustGet("recruitment.json", "extract-profile")
	prompt := prompts.Format(template, map[string]string{
		"PositionTitle": positionTitle,
		"CVText":        cvText,
	})

	responseText, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to extract candidate profile",
			Cause:   err,
		}
	}

	if err := schemas.ValidateCandidateProfile(responseText); err != nil {
		return nil, &ParseError{
			Message: "profile response failed schema validation",
			Cause:   err,
		}
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal([]byte(responseText), &profile); err != nil {
		return nil, &ParseError{
			Message: "failed to parse profile JSON",
			Cause:   err,
		}
	}

	postProcessProfile(&profile)
	return &profile, nil
}

// postProcessProfile trims and deduplicates the extracted skill lists.
func postProcessProfile(profile *types.CandidateProfile) {
	profile.Technologies = dedupeSkills(profile.Technologies)
	profile.SoftSkills = dedupeSkills(profile.SoftSkills)
	if profile.ExperienceYears < 0 {
		profile.ExperienceYears = 0
	}
	if profile.Education != types.EducationHigher {
		profile.Education = types.EducationOther
	}
}

func dedupeSkills(skills []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		normalized := types.NormalizeSkill(trimmed)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, trimmed)
	}
	return out
}
