package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mkowalski/recruitment-api/internal/db"
	"github.com/mkowalski/recruitment-api/internal/pipeline"
	"github.com/mkowalski/recruitment-api/internal/scoring"
	"github.com/mkowalski/recruitment-api/internal/types"
)

// ApplicationView is an application with its derived pipeline state. Stage,
// gates, and the combined score are computed from the live snapshot on every
// read and never persisted.
type ApplicationView struct {
	ID             uuid.UUID              `json:"id"`
	CandidateID    uuid.UUID              `json:"candidate_id"`
	PositionID     uuid.UUID              `json:"position_id"`
	TechnicalScore *float64               `json:"technical_score,omitempty"`
	TaskStatus     *types.TaskStatus      `json:"task_status,omitempty"`
	TaskScore      *int                   `json:"task_score,omitempty"`
	Decision       *types.Decision        `json:"decision,omitempty"`
	Stage          pipeline.Stage         `json:"stage"`
	Gates          pipeline.Gates         `json:"gates"`
	Scores         scoring.RankingScore   `json:"scores"`
	Recommendation scoring.Recommendation `json:"recommendation"`
}

// buildApplicationView derives the full pipeline view for one application.
func buildApplicationView(app *db.Application, interviews []types.Interview) ApplicationView {
	snapshot := app.Snapshot(interviews)
	ranked := pipeline.Rank(snapshot)

	return ApplicationView{
		ID:             app.ID,
		CandidateID:    app.CandidateID,
		PositionID:     app.PositionID,
		TechnicalScore: app.TechnicalScore,
		TaskStatus:     app.TaskStatus,
		TaskScore:      app.TaskScore,
		Decision:       app.Decision,
		Stage:          pipeline.DeriveStage(snapshot),
		Gates:          pipeline.EvaluateGates(snapshot, ranked.Combined),
		Scores:         ranked,
		Recommendation: scoring.Recommend(ranked.Combined),
	}
}

// parsePathID parses a UUID path parameter
func parsePathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseQueryInt parses an integer query parameter with a default and an
// optional maximum (0 means no maximum)
func parseQueryInt(r *http.Request, name string, defaultValue, max int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return defaultValue
	}
	if max > 0 && value > max {
		return max
	}
	return value
}

// loadApplication fetches an application or returns a typed not-found error
func (s *Server) loadApplication(ctx context.Context, id uuid.UUID) (*db.Application, error) {
	app, err := s.db.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, &ErrApplicationNotFound{ID: id}
	}
	return app, nil
}

// loadInterviews fetches an application's interviews as the pipeline view,
// in creation order
func (s *Server) loadInterviews(ctx context.Context, applicationID uuid.UUID) ([]types.Interview, error) {
	records, err := s.db.ListInterviewsByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	interviews := make([]types.Interview, 0, len(records))
	for _, r := range records {
		interviews = append(interviews, r.Interview())
	}
	return interviews, nil
}

// loadView assembles the derived view for an application by ID
func (s *Server) loadView(ctx context.Context, id uuid.UUID) (*ApplicationView, error) {
	app, err := s.loadApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	interviews, err := s.loadInterviews(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	view := buildApplicationView(app, interviews)
	return &view, nil
}
