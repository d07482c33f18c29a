// Package llm - interview.go generates soft-skill interview questions and
// analyzes candidate answers.
package llm

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mkowalski/recruitment-api/internal/prompts"
	"github.com/mkowalski/recruitment-api/internal/schemas"
)

// SoftSkillCategories are the assessment dimensions scored for every
// analyzed answer, each on a 0..10 scale.
var SoftSkillCategories = []string{
	"emotional_intelligence",
	"adaptability",
	"problem_solving",
	"learning_mindset",
	"teamwork",
	"self_awareness",
}

// minAnswerLength is the shortest answer worth sending for analysis.
const minAnswerLength = 10

// AnswerAnalysis is the per-answer soft-skill evaluation.
type AnswerAnalysis struct {
	Scores              map[string]float64 `json:"soft_skill_assessment"`
	Strengths           []string           `json:"strengths,omitempty"`
	AreasForDevelopment []string           `json:"areas_for_development,omitempty"`
	Summary             string             `json:"summary,omitempty"`
}

// GenerateQuestions generates soft-skill interview questions for a position.
// When the model call fails the static fallback set is returned instead, so
// an interview can always be scheduled.
func GenerateQuestions(ctx context.Context, client Client, positionTitle string) []string {
	if client == nil {
		return FallbackQuestions()
	}

	template := prompts.MustGet("recruitment.json", "interview-questions")
	prompt := prompts.Format(template, map[string]string{
		"PositionTitle": positionTitle,
	})

	responseText, err := client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		log.Printf("question generation failed, using fallback set: %v", err)
		return FallbackQuestions()
	}

	var payload struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(responseText), &payload); err != nil || len(payload.Questions) == 0 {
		log.Printf("question response unusable, using fallback set: %v", err)
		return FallbackQuestions()
	}
	return payload.Questions
}

// FallbackQuestions is the static question set used when generation fails.
func FallbackQuestions() []string {
	return []string{
		"Tell me about a time you had to learn something new quickly. How did you approach the challenge?",
		"Describe a situation where you received feedback that was hard to accept. How did you react?",
		"Tell me about a team project you worked on. What was your role and how did you handle conflicts?",
		"What motivates you in your work and professional growth? What are your goals for the next two years?",
		"How do you handle stress and time pressure? Give a concrete example.",
	}
}

// AnalyzeAnswer evaluates one answer against the soft-skill categories.
// Answers too short to analyze and failed model calls both yield the
// baseline assessment rather than an error; an interview never gets stuck
// on a single bad answer.
func AnalyzeAnswer(ctx context.Context, client Client, question, answer string) AnswerAnalysis {
	if len(strings.TrimSpace(answer)) < minAnswerLength {
		return AnswerAnalysis{
			Scores:              BaselineAssessment(),
			AreasForDevelopment: []string{"Answer quality"},
			Summary:             "Insufficient answer, too short to analyze.",
		}
	}

	if client == nil {
		return baselineAnalysis()
	}

	template := prompts.MustGet("recruitment.json", "analyze-answer")
	prompt := prompts.Format(template, map[string]string{
		"Question": question,
		"Answer":   answer,
	})

	responseText, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		log.Printf("answer analysis failed, using baseline scores: %v", err)
		return baselineAnalysis()
	}

	if err := schemas.ValidateAnswerAnalysis(responseText); err != nil {
		log.Printf("answer analysis failed schema validation, using baseline scores: %v", err)
		return baselineAnalysis()
	}

	var analysis AnswerAnalysis
	if err := json.Unmarshal([]byte(responseText), &analysis); err != nil || len(analysis.Scores) == 0 {
		log.Printf("answer analysis unusable, using baseline scores: %v", err)
		return baselineAnalysis()
	}
	return analysis
}

// AnalyzeAnswers analyzes a batch of question/answer pairs concurrently.
// Results are returned in input order.
func AnalyzeAnswers(ctx context.Context, client Client, questions, answers []string) []AnswerAnalysis {
	n := len(answers)
	if len(questions) < n {
		n = len(questions)
	}

	results := make([]AnswerAnalysis, n)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			analysis := AnalyzeAnswer(gctx, client, questions[i], answers[i])
			mu.Lock()
			results[i] = analysis
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// BaselineAssessment returns the minimum score for every category. Used when
// analysis is impossible so a completed interview always has an assessment.
func BaselineAssessment() map[string]float64 {
	assessment := make(map[string]float64, len(SoftSkillCategories))
	for _, category := range SoftSkillCategories {
		assessment[category] = 1.0
	}
	return assessment
}

func baselineAnalysis() AnswerAnalysis {
	return AnswerAnalysis{
		Scores:              BaselineAssessment(),
		AreasForDevelopment: []string{"Re-analysis required"},
		Summary:             "Analysis unavailable, baseline scores assigned.",
	}
}
