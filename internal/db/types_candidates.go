package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkowalski/recruitment-api/internal/types"
)

// Candidate represents a registered candidate. CVText holds the raw pasted
// CV; Profile is the structured extraction and stays nil until the CV is
// analyzed.
type Candidate struct {
	ID        uuid.UUID               `json:"id"`
	FullName  string                  `json:"full_name"`
	Email     string                  `json:"email"`
	Phone     *string                 `json:"phone,omitempty"`
	City      *string                 `json:"city,omitempty"`
	CVText    *string                 `json:"-"` // Don't serialize (large)
	Profile   *types.CandidateProfile `json:"profile,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}
