// Package types provides type definitions for structured data used throughout the recruitment pipeline.
package types

import "strings"

// EducationLevel classifies a candidate's education as extracted from a CV.
type EducationLevel string

// Education level constants
const (
	EducationHigher EducationLevel = "higher"
	EducationOther  EducationLevel = "other"
)

// CandidateProfile is the structured attribute set extracted from a CV
// (or entered manually). The raw technology list is used verbatim by
// requirement matching.
type CandidateProfile struct {
	Technologies    []string       `json:"technologies"`
	SoftSkills      []string       `json:"soft_skills"`
	ExperienceYears float64        `json:"experience_years"`
	Education       EducationLevel `json:"education"`
}

// AllSkills returns the candidate's technologies and declared soft skills as
// one list. Requirement matching runs against the combined set.
func (p *CandidateProfile) AllSkills() []string {
	skills := make([]string, 0, len(p.Technologies)+len(p.SoftSkills))
	skills = append(skills, p.Technologies...)
	skills = append(skills, p.SoftSkills...)
	return skills
}

// NormalizeSkill lowercases and trims a skill name for matching.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
