package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkowalski/recruitment-api/internal/types"
)

// CreateCandidate registers a new candidate
func (db *DB) CreateCandidate(ctx context.Context, input *types.CreateCandidateRequest) (*Candidate, error) {
	var phone, city *string
	if input.Phone != "" {
		phone = &input.Phone
	}
	if input.City != "" {
		city = &input.City
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (full_name, email, phone, city)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		input.FullName, input.Email, phone, city,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	return db.GetCandidate(ctx, id)
}

// GetCandidate retrieves a candidate by ID
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	var c Candidate
	var profileJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, full_name, email, phone, city, cv_text, profile, created_at, updated_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.City, &c.CVText,
		&profileJSON, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if profileJSON != nil {
		if err := json.Unmarshal(profileJSON, &c.Profile); err != nil {
			return nil, fmt.Errorf("failed to decode candidate profile: %w", err)
		}
	}
	return &c, nil
}

// ListCandidates retrieves up to limit candidates, newest first
func (db *DB) ListCandidates(ctx context.Context, limit int) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, full_name, email, phone, city, profile, created_at, updated_at
		 FROM candidates ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		var profileJSON []byte
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.City,
			&profileJSON, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if profileJSON != nil {
			if err := json.Unmarshal(profileJSON, &c.Profile); err != nil {
				return nil, fmt.Errorf("failed to decode candidate profile: %w", err)
			}
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// SetCandidateCV stores the raw CV text for a candidate
func (db *DB) SetCandidateCV(ctx context.Context, id uuid.UUID, cvText string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET cv_text = $1, updated_at = NOW() WHERE id = $2`,
		cvText, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set candidate cv: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

// SetCandidateProfile stores the structured profile extracted from the CV
func (db *DB) SetCandidateProfile(ctx context.Context, id uuid.UUID, profile *types.CandidateProfile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate profile: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET profile = $1, updated_at = NOW() WHERE id = $2`,
		profileJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set candidate profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}
