package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalski/recruitment-api/internal/db"
	"github.com/mkowalski/recruitment-api/internal/scoring"
	"github.com/mkowalski/recruitment-api/internal/types"
)

// TestHandleCreateApplication_InvalidJSON tests create application with
// invalid JSON
func TestHandleCreateApplication_InvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/applications", bytes.NewBufferString(`{invalid}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleCreateApplication(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleCreateApplication_InvalidIDs tests create application with
// malformed UUIDs
func TestHandleCreateApplication_InvalidIDs(t *testing.T) {
	s := newTestServer()

	body := `{"candidate_id": "not-a-uuid", "position_id": "also-not-a-uuid"}`
	req := httptest.NewRequest(http.MethodPost, "/applications", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleCreateApplication(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Invalid application")
}

// TestHandleGetApplication_InvalidID tests get application with invalid UUID
func TestHandleGetApplication_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/applications/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetApplication(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleAnalyzeCV_InvalidID tests analyze-cv with invalid UUID
func TestHandleAnalyzeCV_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/applications/not-a-uuid/analyze-cv", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleAnalyzeCV(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleScoreApplication_InvalidID tests score with invalid UUID
func TestHandleScoreApplication_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/applications/not-a-uuid/score", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleScoreApplication(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleSendTask_InvalidID tests task send with invalid UUID
func TestHandleSendTask_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/applications/not-a-uuid/task/send", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleSendTask(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleEvaluateTask_EmptySolution tests task evaluation with an empty
// solution
func TestHandleEvaluateTask_EmptySolution(t *testing.T) {
	s := newTestServer()

	body := `{"solution": "   "}`
	req := httptest.NewRequest(http.MethodPost, "/applications/11111111-2222-3333-4444-555555555555/task/evaluate", bytes.NewBufferString(body))
	req.SetPathValue("id", "11111111-2222-3333-4444-555555555555")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleEvaluateTask(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "solution")
}

// TestHandleDecision_InvalidDecision tests an unknown decision value
func TestHandleDecision_InvalidDecision(t *testing.T) {
	s := newTestServer()

	body := `{"decision": "maybe"}`
	req := httptest.NewRequest(http.MethodPost, "/applications/11111111-2222-3333-4444-555555555555/decision", bytes.NewBufferString(body))
	req.SetPathValue("id", "11111111-2222-3333-4444-555555555555")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleDecision(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Invalid decision")
}

// TestEmailInput_StoredInsights tests that the insights stored with the
// technical score feed the decision email draft
func TestEmailInput_StoredInsights(t *testing.T) {
	breakdown, err := json.Marshal(map[string]any{
		"insights": scoring.Insights{
			Strengths:           []string{"Has 3 of 4 key skills", "Higher education"},
			AreasForDevelopment: []string{"Limited professional experience"},
		},
	})
	require.NoError(t, err)

	app := &db.Application{ScoreBreakdown: breakdown}
	candidate := &db.Candidate{
		FullName: "Anna Nowak",
		Profile:  &types.CandidateProfile{Technologies: []string{"Go", "PostgreSQL"}},
	}
	position := &db.Position{Title: "Backend Developer"}

	input := emailInput(app, candidate, position)

	assert.Equal(t, "Anna Nowak", input.CandidateName)
	assert.Equal(t, "Backend Developer", input.PositionTitle)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, input.TechnicalSkills)
	assert.Equal(t, []string{"Has 3 of 4 key skills", "Higher education"}, input.Strengths)
	assert.Equal(t, []string{"Limited professional experience"}, input.AreasForDevelopment)
}

// TestEmailInput_MissingContext tests the draft input for an application
// decided before analysis or scoring happened
func TestEmailInput_MissingContext(t *testing.T) {
	input := emailInput(&db.Application{}, nil, nil)

	assert.Empty(t, input.CandidateName)
	assert.Empty(t, input.TechnicalSkills)
	assert.Empty(t, input.Strengths)
	assert.Empty(t, input.AreasForDevelopment)
}

// TestHandleScheduleInterview_InvalidID tests scheduling with invalid UUID
func TestHandleScheduleInterview_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/applications/not-a-uuid/interviews", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleScheduleInterview(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
