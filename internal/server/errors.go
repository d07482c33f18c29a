// Package server provides the HTTP REST API for the recruitment pipeline.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrPositionNotFound indicates the position was not found
type ErrPositionNotFound struct {
	ID uuid.UUID
}

func (e *ErrPositionNotFound) Error() string {
	return fmt.Sprintf("position not found: %s", e.ID)
}

// ErrCandidateNotFound indicates the candidate was not found
type ErrCandidateNotFound struct {
	ID uuid.UUID
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.ID)
}

// ErrApplicationNotFound indicates the application was not found
type ErrApplicationNotFound struct {
	ID uuid.UUID
}

func (e *ErrApplicationNotFound) Error() string {
	return fmt.Sprintf("application not found: %s", e.ID)
}

// ErrInterviewNotFound indicates no interview matches the token
type ErrInterviewNotFound struct {
	Token uuid.UUID
}

func (e *ErrInterviewNotFound) Error() string {
	return fmt.Sprintf("interview not found: %s", e.Token)
}

// ErrGateClosed indicates a gated action was attempted while its gate is
// closed. Gates are re-checked against a freshly read snapshot, so this also
// covers double submissions that lost the race.
type ErrGateClosed struct {
	Action string
	Reason string
}

func (e *ErrGateClosed) Error() string {
	return fmt.Sprintf("action %q not allowed: %s", e.Action, e.Reason)
}

// ErrDecisionAlreadyMade indicates the application already has a decision
type ErrDecisionAlreadyMade struct {
	ApplicationID uuid.UUID
}

func (e *ErrDecisionAlreadyMade) Error() string {
	return fmt.Sprintf("decision already recorded for application %s", e.ApplicationID)
}

// ErrMissingProfile indicates the candidate's CV has not been analyzed yet
type ErrMissingProfile struct {
	CandidateID uuid.UUID
}

func (e *ErrMissingProfile) Error() string {
	return fmt.Sprintf("candidate %s has no extracted profile; analyze the CV first", e.CandidateID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrPositionNotFound, *ErrCandidateNotFound, *ErrApplicationNotFound, *ErrInterviewNotFound:
		return http.StatusNotFound
	case *ErrGateClosed, *ErrDecisionAlreadyMade, *ErrMissingProfile:
		return http.StatusConflict
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
