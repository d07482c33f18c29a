package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkowalski/recruitment-api/internal/types"
)

// JSONB requirement lists are stored as [] rather than null so decoding
// round-trips cleanly.
func emptyIfNil(reqs []types.Requirement) []types.Requirement {
	if reqs == nil {
		return []types.Requirement{}
	}
	return reqs
}

// CreatePosition creates a new job position
func (db *DB) CreatePosition(ctx context.Context, input *PositionCreateInput) (*Position, error) {
	mustHaveJSON, niceToHaveJSON, err := marshalRequirements(input)
	if err != nil {
		return nil, err
	}

	mhWeight := input.MustHaveWeight
	nhWeight := input.NiceToHaveWeight
	if mhWeight == 0 && nhWeight == 0 {
		mhWeight = DefaultMustHaveWeight
		nhWeight = DefaultNiceToHaveWeight
	}

	var taskDescription *string
	if input.TaskDescription != "" {
		taskDescription = &input.TaskDescription
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO positions (title, description, must_have, nice_to_have,
		                        must_have_weight, nice_to_have_weight,
		                        experience_cap_years, task_description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		input.Title, input.Description, mustHaveJSON, niceToHaveJSON,
		mhWeight, nhWeight, input.ExperienceCapYears, taskDescription,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}

	return db.GetPosition(ctx, id)
}

// GetPosition retrieves a position by ID
func (db *DB) GetPosition(ctx context.Context, id uuid.UUID) (*Position, error) {
	var p Position
	var mustHaveJSON, niceToHaveJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, title, description, must_have, nice_to_have,
		        must_have_weight, nice_to_have_weight, experience_cap_years,
		        task_description, created_at, updated_at
		 FROM positions WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.Description, &mustHaveJSON, &niceToHaveJSON,
		&p.MustHaveWeight, &p.NiceToHaveWeight, &p.ExperienceCapYears,
		&p.TaskDescription, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	if err := unmarshalRequirements(&p, mustHaveJSON, niceToHaveJSON); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPositions retrieves all positions, newest first
func (db *DB) ListPositions(ctx context.Context) ([]Position, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, must_have, nice_to_have,
		        must_have_weight, nice_to_have_weight, experience_cap_years,
		        task_description, created_at, updated_at
		 FROM positions ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []Position
	for rows.Next() {
		var p Position
		var mustHaveJSON, niceToHaveJSON []byte
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &mustHaveJSON, &niceToHaveJSON,
			&p.MustHaveWeight, &p.NiceToHaveWeight, &p.ExperienceCapYears,
			&p.TaskDescription, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		if err := unmarshalRequirements(&p, mustHaveJSON, niceToHaveJSON); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// UpdatePosition replaces a position's editable fields
func (db *DB) UpdatePosition(ctx context.Context, id uuid.UUID, input *PositionCreateInput) (*Position, error) {
	mustHaveJSON, niceToHaveJSON, err := marshalRequirements(input)
	if err != nil {
		return nil, err
	}

	var taskDescription *string
	if input.TaskDescription != "" {
		taskDescription = &input.TaskDescription
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE positions SET title = $1, description = $2, must_have = $3,
		        nice_to_have = $4, must_have_weight = $5, nice_to_have_weight = $6,
		        experience_cap_years = $7, task_description = $8, updated_at = NOW()
		 WHERE id = $9`,
		input.Title, input.Description, mustHaveJSON, niceToHaveJSON,
		input.MustHaveWeight, input.NiceToHaveWeight, input.ExperienceCapYears,
		taskDescription, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update position: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}
	return db.GetPosition(ctx, id)
}

// DeletePosition deletes a position and its applications (via cascade)
func (db *DB) DeletePosition(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("position not found: %s", id)
	}
	return nil
}

func marshalRequirements(input *PositionCreateInput) ([]byte, []byte, error) {
	mustHaveJSON, err := json.Marshal(emptyIfNil(input.MustHave))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal must-have list: %w", err)
	}
	niceToHaveJSON, err := json.Marshal(emptyIfNil(input.NiceToHave))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal nice-to-have list: %w", err)
	}
	return mustHaveJSON, niceToHaveJSON, nil
}

func unmarshalRequirements(p *Position, mustHaveJSON, niceToHaveJSON []byte) error {
	if mustHaveJSON != nil {
		if err := json.Unmarshal(mustHaveJSON, &p.MustHave); err != nil {
			return fmt.Errorf("failed to decode must-have list: %w", err)
		}
	}
	if niceToHaveJSON != nil {
		if err := json.Unmarshal(niceToHaveJSON, &p.NiceToHave); err != nil {
			return fmt.Errorf("failed to decode nice-to-have list: %w", err)
		}
	}
	return nil
}
