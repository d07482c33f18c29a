package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalski/recruitment-api/internal/db"
	"github.com/mkowalski/recruitment-api/internal/llm"
)

// TestHandleGetInterview_InvalidToken tests get interview with a malformed
// token
func TestHandleGetInterview_InvalidToken(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/interviews/not-a-uuid", nil)
	req.SetPathValue("token", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetInterview(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Invalid interview token")
}

// TestHandleAnswerQuestion_InvalidToken tests answering with a malformed
// token
func TestHandleAnswerQuestion_InvalidToken(t *testing.T) {
	s := newTestServer()

	body := `{"question_index": 0, "answer": "I once led a migration project."}`
	req := httptest.NewRequest(http.MethodPost, "/interviews/not-a-uuid/answers", bytes.NewBufferString(body))
	req.SetPathValue("token", "not-a-uuid")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleAnswerQuestion(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleAnswerQuestion_EmptyAnswer tests answering with an empty answer
func TestHandleAnswerQuestion_EmptyAnswer(t *testing.T) {
	s := newTestServer()

	body := `{"question_index": 0, "answer": "   "}`
	req := httptest.NewRequest(http.MethodPost, "/interviews/11111111-2222-3333-4444-555555555555/answers", bytes.NewBufferString(body))
	req.SetPathValue("token", "11111111-2222-3333-4444-555555555555")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleAnswerQuestion(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "answer")
}

// TestHandleAnswerQuestion_InvalidJSON tests answering with invalid JSON
func TestHandleAnswerQuestion_InvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/interviews/11111111-2222-3333-4444-555555555555/answers", bytes.NewBufferString(`{invalid}`))
	req.SetPathValue("token", "11111111-2222-3333-4444-555555555555")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleAnswerQuestion(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleCompleteInterview_InvalidToken tests completing with a malformed
// token
func TestHandleCompleteInterview_InvalidToken(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/interviews/not-a-uuid/complete", nil)
	req.SetPathValue("token", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleCompleteInterview(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestCompletedAssessment_RescoresUnanalyzedAnswers tests that answers stored
// without scores are analyzed at completion and merged with the stored ones
func TestCompletedAssessment_RescoresUnanalyzedAnswers(t *testing.T) {
	s := newTestServer()

	record := &db.InterviewRecord{
		Answers: []db.InterviewAnswer{
			{
				Question: "Tell me about a team project you worked on.",
				Answer:   "I led the migration of our billing service.",
				Scores:   map[string]float64{"teamwork": 8, "adaptability": 6},
			},
			{
				Question: "How do you handle stress and time pressure?",
				Answer:   "I joined a new team mid-project and took over onboarding.",
			},
		},
	}

	assessment := s.completedAssessment(context.Background(), record)

	// Without an AI client the second answer gets baseline scores; the merge
	// averages them with the stored first answer.
	assert.Equal(t, 4.5, assessment["teamwork"])
	assert.Equal(t, 3.5, assessment["adaptability"])
	assert.Equal(t, 1.0, assessment["problem_solving"])
}

// TestCompletedAssessment_NoAnswers tests the baseline fallback for an
// interview completed without any answers
func TestCompletedAssessment_NoAnswers(t *testing.T) {
	s := newTestServer()

	assessment := s.completedAssessment(context.Background(), &db.InterviewRecord{})

	assert.Equal(t, llm.BaselineAssessment(), assessment)
}
