package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkowalski/recruitment-api/internal/types"
)

const applicationColumns = `id, candidate_id, position_id, technical_score,
	score_breakdown, task_status, task_score, decision, created_at, updated_at`

func scanApplication(row pgx.Row) (*Application, error) {
	var a Application
	err := row.Scan(&a.ID, &a.CandidateID, &a.PositionID, &a.TechnicalScore,
		&a.ScoreBreakdown, &a.TaskStatus, &a.TaskScore, &a.Decision,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateApplication creates an application linking a candidate to a position
func (db *DB) CreateApplication(ctx context.Context, candidateID, positionID uuid.UUID) (*Application, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (candidate_id, position_id)
		 VALUES ($1, $2)
		 RETURNING id`,
		candidateID, positionID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return db.GetApplication(ctx, id)
}

// GetApplication retrieves an application by ID
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*Application, error) {
	app, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ListApplicationsByPosition retrieves all applications for a position
func (db *DB) ListApplicationsByPosition(ctx context.Context, positionID uuid.UUID) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications
		 WHERE position_id = $1 ORDER BY created_at ASC`,
		positionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// SetTechnicalScore writes the CV scoring result onto the application.
// Re-scoring overwrites the previous score and breakdown (last writer wins).
func (db *DB) SetTechnicalScore(ctx context.Context, id uuid.UUID, score float64, breakdown any) error {
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal score breakdown: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET technical_score = $1, score_breakdown = $2, updated_at = NOW()
		 WHERE id = $3`,
		score, breakdownJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set technical score: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}

// SetTaskSent marks the recruitment task as sent. Returns false when the
// task status was already set, so a double send is detected at the store.
func (db *DB) SetTaskSent(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET task_status = $1, updated_at = NOW()
		 WHERE id = $2 AND task_status IS NULL`,
		types.TaskSent, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark task sent: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// SetTaskCompleted records the task submission score and marks the task done
func (db *DB) SetTaskCompleted(ctx context.Context, id uuid.UUID, taskScore int) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET task_status = $1, task_score = $2, updated_at = NOW()
		 WHERE id = $3`,
		types.TaskCompleted, taskScore, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark task completed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}

// SetDecision records the hiring decision. Returns false when a decision
// already exists; decisions are written at most once and never reopened.
func (db *DB) SetDecision(ctx context.Context, id uuid.UUID, decision types.Decision) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET decision = $1, updated_at = NOW()
		 WHERE id = $2 AND decision IS NULL`,
		decision, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to set decision: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
