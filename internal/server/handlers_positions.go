package server

import (
	"encoding/json"
	"net/http"

	"github.com/mkowalski/recruitment-api/internal/db"
	"github.com/mkowalski/recruitment-api/internal/pipeline"
	"github.com/mkowalski/recruitment-api/internal/scoring"
	"github.com/mkowalski/recruitment-api/internal/types"
)

// positionInput converts a validated request into store input
func positionInput(req *types.CreatePositionRequest) *db.PositionCreateInput {
	input := &db.PositionCreateInput{
		Title:            req.Title,
		Description:      req.Description,
		MustHave:         req.MustHave,
		NiceToHave:       req.NiceToHave,
		MustHaveWeight:   req.Formula.MustHaveWeight,
		NiceToHaveWeight: req.Formula.NiceToHaveWeight,
		TaskDescription:  req.TaskDescription,
	}
	if req.ExperienceCapYears > 0 {
		cap := req.ExperienceCapYears
		input.ExperienceCapYears = &cap
	}
	return input
}

// handleCreatePosition creates a job position
func (s *Server) handleCreatePosition(w http.ResponseWriter, r *http.Request) {
	var req types.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position: "+err.Error())
		return
	}
	// An invalid formula is rejected here, when the posting is defined,
	// never silently clamped at scoring time.
	if err := scoring.ValidateFormula(req.Formula); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	position, err := s.db.CreatePosition(r.Context(), positionInput(&req))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, position)
}

// handleListPositions lists all positions
func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := s.db.ListPositions(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"positions": positions,
		"count":     len(positions),
	})
}

// handleGetPosition retrieves a position by ID
func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position ID")
		return
	}

	position, err := s.db.GetPosition(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if position == nil {
		s.errorFor(w, &ErrPositionNotFound{ID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, position)
}

// handleUpdatePosition replaces a position's editable fields
func (s *Server) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position ID")
		return
	}

	var req types.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position: "+err.Error())
		return
	}
	if err := scoring.ValidateFormula(req.Formula); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	position, err := s.db.UpdatePosition(r.Context(), id, positionInput(&req))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if position == nil {
		s.errorFor(w, &ErrPositionNotFound{ID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, position)
}

// handleDeletePosition deletes a position
func (s *Server) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position ID")
		return
	}

	if err := s.db.DeletePosition(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// BoardColumn is one stage column of the recruitment board
type BoardColumn struct {
	Stage        pipeline.Stage    `json:"stage"`
	Applications []ApplicationView `json:"applications"`
}

// handlePositionBoard returns the position's applications grouped by derived
// stage, in board-column order. Stages are recomputed from live snapshots on
// every request.
func (s *Server) handlePositionBoard(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position ID")
		return
	}
	ctx := r.Context()

	position, err := s.db.GetPosition(ctx, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if position == nil {
		s.errorFor(w, &ErrPositionNotFound{ID: id})
		return
	}

	apps, err := s.db.ListApplicationsByPosition(ctx, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	byStage := make(map[pipeline.Stage][]ApplicationView)
	for i := range apps {
		interviews, err := s.loadInterviews(ctx, apps[i].ID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		view := buildApplicationView(&apps[i], interviews)
		byStage[view.Stage] = append(byStage[view.Stage], view)
	}

	columns := make([]BoardColumn, 0, len(pipeline.AllStages()))
	for _, stage := range pipeline.AllStages() {
		views := byStage[stage]
		if views == nil {
			views = []ApplicationView{}
		}
		columns = append(columns, BoardColumn{Stage: stage, Applications: views})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"position_id": position.ID,
		"title":       position.Title,
		"columns":     columns,
	})
}
