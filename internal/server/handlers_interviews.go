package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mkowalski/recruitment-api/internal/db"
	"github.com/mkowalski/recruitment-api/internal/llm"
	"github.com/mkowalski/recruitment-api/internal/scoring"
)

// parseToken parses the candidate-facing interview token path parameter
func parseToken(r *http.Request) (uuid.UUID, bool) {
	token, err := uuid.Parse(r.PathValue("token"))
	if err != nil {
		return uuid.Nil, false
	}
	return token, true
}

// loadInterviewByToken fetches an interview or returns a typed not-found
// error
func (s *Server) loadInterviewByToken(r *http.Request, token uuid.UUID) (*db.InterviewRecord, error) {
	record, err := s.db.GetInterviewByToken(r.Context(), token)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &ErrInterviewNotFound{Token: token}
	}
	return record, nil
}

// handleGetInterview returns an interview by its token. This is the endpoint
// candidates open to see their questions and progress.
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	token, ok := parseToken(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview token")
		return
	}

	record, err := s.loadInterviewByToken(r, token)
	if err != nil {
		s.errorFor(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleAnswerQuestion records one answer, analyzes it, and appends it to the
// interview. Answers are accepted in any order; the question index selects
// which question is being answered.
func (s *Server) handleAnswerQuestion(w http.ResponseWriter, r *http.Request) {
	token, ok := parseToken(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview token")
		return
	}

	var body struct {
		QuestionIndex int    `json:"question_index"`
		Answer        string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(body.Answer) == "" {
		s.errorFor(w, &ErrValidation{Field: "answer", Message: "answer is required"})
		return
	}

	record, err := s.loadInterviewByToken(r, token)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	if record.CompletedAt != nil {
		s.errorFor(w, &ErrGateClosed{Action: "answer_question", Reason: "interview already completed"})
		return
	}
	if body.QuestionIndex < 0 || body.QuestionIndex >= len(record.Questions) {
		s.errorFor(w, &ErrValidation{Field: "question_index", Message: "question index out of range"})
		return
	}

	question := record.Questions[body.QuestionIndex]
	analysis := llm.AnalyzeAnswer(r.Context(), s.llm, question, body.Answer)

	answer := db.InterviewAnswer{
		Question: question,
		Answer:   body.Answer,
		Scores:   analysis.Scores,
	}
	if err := s.db.AppendAnswer(r.Context(), record.ID, answer); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"question": question,
		"analysis": analysis,
	})
}

// handleCompleteInterview closes the interview and stores the merged
// soft-skill assessment. An interview completed without any analyzable
// answers still gets the baseline assessment so ranking always has data to
// work with.
func (s *Server) handleCompleteInterview(w http.ResponseWriter, r *http.Request) {
	token, ok := parseToken(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview token")
		return
	}

	record, err := s.loadInterviewByToken(r, token)
	if err != nil {
		s.errorFor(w, err)
		return
	}

	assessment := s.completedAssessment(r.Context(), record)

	completed, err := s.db.CompleteInterview(r.Context(), record.ID, assessment)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !completed {
		s.errorFor(w, &ErrGateClosed{Action: "complete_interview", Reason: "interview already completed"})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":                "completed",
		"soft_skill_assessment": assessment,
	})
}

// completedAssessment builds the final soft-skill assessment for an interview
// being closed. Answers recorded without scores are re-analyzed first, as a
// concurrent batch, so the merged assessment reflects every answer given.
func (s *Server) completedAssessment(ctx context.Context, record *db.InterviewRecord) map[string]float64 {
	scores := make([]map[string]float64, 0, len(record.Answers))
	var questions, answers []string
	for _, a := range record.Answers {
		if len(a.Scores) > 0 {
			scores = append(scores, a.Scores)
			continue
		}
		questions = append(questions, a.Question)
		answers = append(answers, a.Answer)
	}
	for _, analysis := range llm.AnalyzeAnswers(ctx, s.llm, questions, answers) {
		scores = append(scores, analysis.Scores)
	}

	assessment := scoring.MergeAssessments(scores)
	if assessment == nil {
		assessment = llm.BaselineAssessment()
	}
	return assessment
}
