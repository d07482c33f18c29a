package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mkowalski/recruitment-api/internal/db"
	"github.com/mkowalski/recruitment-api/internal/llm"
	"github.com/mkowalski/recruitment-api/internal/pipeline"
	"github.com/mkowalski/recruitment-api/internal/scoring"
	"github.com/mkowalski/recruitment-api/internal/types"
)

// handleCreateApplication links a candidate to a position. When CV text is
// supplied it is stored on the candidate so a later analyze-cv call can run
// without a body.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var req types.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application: "+err.Error())
		return
	}
	candidateID, _ := uuid.Parse(req.CandidateID)
	positionID, _ := uuid.Parse(req.PositionID)
	ctx := r.Context()

	candidate, err := s.db.GetCandidate(ctx, candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorFor(w, &ErrCandidateNotFound{ID: candidateID})
		return
	}

	position, err := s.db.GetPosition(ctx, positionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if position == nil {
		s.errorFor(w, &ErrPositionNotFound{ID: positionID})
		return
	}

	app, err := s.db.CreateApplication(ctx, candidateID, positionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if strings.TrimSpace(req.CVText) != "" {
		if err := s.db.SetCandidateCV(ctx, candidateID, req.CVText); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}

	view := buildApplicationView(app, nil)
	s.jsonResponse(w, http.StatusCreated, view)
}

// handleGetApplication returns an application with its derived pipeline state
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	view, err := s.loadView(r.Context(), id)
	if err != nil {
		s.errorFor(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, view)
}

// handleAnalyzeCV extracts a structured profile from the candidate's CV. The
// CV text comes from the request body when present, otherwise from the text
// stored at application time.
func (s *Server) handleAnalyzeCV(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}
	ctx := r.Context()

	var body struct {
		CVText string `json:"cv_text"`
	}
	// Body is optional; ignore decode errors on an empty body
	_ = json.NewDecoder(r.Body).Decode(&body)

	app, err := s.loadApplication(ctx, id)
	if err != nil {
		s.errorFor(w, err)
		return
	}

	candidate, err := s.db.GetCandidate(ctx, app.CandidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorFor(w, &ErrCandidateNotFound{ID: app.CandidateID})
		return
	}

	position, err := s.db.GetPosition(ctx, app.PositionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if position == nil {
		s.errorFor(w, &ErrPositionNotFound{ID: app.PositionID})
		return
	}

	cvText := strings.TrimSpace(body.CVText)
	if cvText == "" && candidate.CVText != nil {
		cvText = strings.TrimSpace(*candidate.CVText)
	}
	if cvText == "" {
		s.errorFor(w, &ErrValidation{Field: "cv_text", Message: "no CV text provided or stored for this candidate"})
		return
	}

	if s.llm == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "CV analysis requires the AI client; set GEMINI_API_KEY")
		return
	}

	profile, err := llm.ExtractProfile(ctx, s.llm, cvText, position.Title)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "CV analysis failed: "+err.Error())
		return
	}

	if body.CVText != "" {
		if err := s.db.SetCandidateCV(ctx, candidate.ID, body.CVText); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}
	if err := s.db.SetCandidateProfile(ctx, candidate.ID, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidate_id": candidate.ID,
		"profile":      profile,
	})
}

// handleScoreApplication runs the technical scoring for an application
// against its position's requirements and stores the result. Re-scoring
// overwrites the previous result.
func (s *Server) handleScoreApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}
	ctx := r.Context()

	app, err := s.loadApplication(ctx, id)
	if err != nil {
		s.errorFor(w, err)
		return
	}

	candidate, err := s.db.GetCandidate(ctx, app.CandidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorFor(w, &ErrCandidateNotFound{ID: app.CandidateID})
		return
	}
	if candidate.Profile == nil {
		s.errorFor(w, &ErrMissingProfile{CandidateID: candidate.ID})
		return
	}

	position, err := s.db.GetPosition(ctx, app.PositionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if position == nil {
		s.errorFor(w, &ErrPositionNotFound{ID: app.PositionID})
		return
	}

	mustHave := scoring.MatchRequirements(position.MustHave, candidate.Profile)
	niceToHave := scoring.MatchRequirements(position.NiceToHave, candidate.Profile)

	policy := scoring.DefaultExperiencePolicy()
	if position.ExperienceCapYears != nil {
		policy.YearsCap = *position.ExperienceCapYears
	}

	score, err := scoring.AggregateTechnical(mustHave, niceToHave, candidate.Profile, position.Formula(), policy)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	insights := scoring.BuildInsights(score, mustHave, niceToHave, candidate.Profile)
	breakdown := map[string]any{
		"must_have":    mustHave,
		"nice_to_have": niceToHave,
		"insights":     insights,
	}

	if err := s.db.SetTechnicalScore(ctx, app.ID, score, breakdown); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	view, err := s.loadView(ctx, app.ID)
	if err != nil {
		s.errorFor(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"application": view,
		"breakdown":   breakdown,
	})
}

// handleSendTask marks the recruitment task as sent. The gate is checked
// against a freshly read snapshot and enforced again by the guarded update,
// so a concurrent double send loses cleanly.
func (s *Server) handleSendTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}
	ctx := r.Context()

	app, err := s.loadApplication(ctx, id)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	interviews, err := s.loadInterviews(ctx, app.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	snapshot := app.Snapshot(interviews)
	ranked := pipeline.Rank(snapshot)
	if !pipeline.CanSendRecruitmentTask(snapshot, ranked.Combined) {
		reason := "combined score below the send threshold"
		if snapshot.TaskStatus != nil {
			reason = "task already sent"
		}
		s.errorFor(w, &ErrGateClosed{Action: "send_recruitment_task", Reason: reason})
		return
	}

	sent, err := s.db.SetTaskSent(ctx, app.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !sent {
		s.errorFor(w, &ErrGateClosed{Action: "send_recruitment_task", Reason: "task already sent"})
		return
	}

	view, err := s.loadView(ctx, app.ID)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

// handleEvaluateTask scores a submitted task solution and marks the task
// completed
func (s *Server) handleEvaluateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}
	ctx := r.Context()

	var body struct {
		Solution string `json:"solution"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(body.Solution) == "" {
		s.errorFor(w, &ErrValidation{Field: "solution", Message: "solution is required"})
		return
	}

	app, err := s.loadApplication(ctx, id)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	if app.TaskStatus == nil {
		s.errorFor(w, &ErrGateClosed{Action: "evaluate_task", Reason: "task has not been sent"})
		return
	}
	if *app.TaskStatus == types.TaskCompleted {
		s.errorFor(w, &ErrGateClosed{Action: "evaluate_task", Reason: "task already completed"})
		return
	}

	position, err := s.db.GetPosition(ctx, app.PositionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	taskDescription := ""
	if position != nil && position.TaskDescription != nil {
		taskDescription = *position.TaskDescription
	}

	evaluation := llm.EvaluateTask(ctx, s.llm, taskDescription, body.Solution)

	if err := s.db.SetTaskCompleted(ctx, app.ID, evaluation.Score); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	view, err := s.loadView(ctx, app.ID)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"application": view,
		"evaluation":  evaluation,
	})
}

// handleDecision records the hiring decision and drafts the matching email.
// The decision is written at most once; the draft is best effort and never
// blocks the decision itself.
func (s *Server) handleDecision(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}
	ctx := r.Context()

	var req types.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid decision: "+err.Error())
		return
	}

	app, err := s.loadApplication(ctx, id)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	if app.Decision != nil {
		s.errorFor(w, &ErrDecisionAlreadyMade{ApplicationID: app.ID})
		return
	}

	recorded, err := s.db.SetDecision(ctx, app.ID, req.Decision)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !recorded {
		s.errorFor(w, &ErrDecisionAlreadyMade{ApplicationID: app.ID})
		return
	}

	emailDraft := ""
	if s.llm != nil {
		candidate, _ := s.db.GetCandidate(ctx, app.CandidateID)
		position, _ := s.db.GetPosition(ctx, app.PositionID)
		draft, err := llm.DraftDecisionEmail(ctx, s.llm, emailInput(app, candidate, position), req.Decision)
		if err != nil {
			log.Printf("decision email draft failed: %v", err)
		} else {
			emailDraft = draft
		}
	}

	view, err := s.loadView(ctx, app.ID)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"application": view,
		"email_draft": emailDraft,
	})
}

// emailInput gathers candidate context for a decision email draft. The
// strengths and development areas come from the insights stored with the
// technical score; missing pieces fall back to generic template text.
func emailInput(app *db.Application, candidate *db.Candidate, position *db.Position) llm.EmailInput {
	input := llm.EmailInput{}

	if candidate != nil {
		input.CandidateName = candidate.FullName
		if candidate.Profile != nil {
			input.TechnicalSkills = candidate.Profile.Technologies
		}
	}
	if position != nil {
		input.PositionTitle = position.Title
	}
	if len(app.ScoreBreakdown) > 0 {
		var breakdown struct {
			Insights scoring.Insights `json:"insights"`
		}
		if err := json.Unmarshal(app.ScoreBreakdown, &breakdown); err == nil {
			input.Strengths = breakdown.Insights.Strengths
			input.AreasForDevelopment = breakdown.Insights.AreasForDevelopment
		}
	}
	return input
}

// handleScheduleInterview schedules an AI interview for a qualified
// application and generates its question set
func (s *Server) handleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}
	ctx := r.Context()

	app, err := s.loadApplication(ctx, id)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	interviews, err := s.loadInterviews(ctx, app.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	snapshot := app.Snapshot(interviews)
	if !pipeline.IsEligibleForInterview(snapshot) {
		reason := "technical score below the qualification threshold"
		if app.TechnicalScore == nil {
			reason = "application has not been scored"
		} else if len(interviews) > 0 {
			reason = "an interview already exists"
		}
		s.errorFor(w, &ErrGateClosed{Action: "schedule_interview", Reason: reason})
		return
	}

	position, err := s.db.GetPosition(ctx, app.PositionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	positionTitle := ""
	if position != nil {
		positionTitle = position.Title
	}

	questions := llm.GenerateQuestions(ctx, s.llm, positionTitle)

	record, err := s.db.CreateInterview(ctx, app.ID, questions)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, record)
}
