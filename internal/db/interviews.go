package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkowalski/recruitment-api/internal/types"
)

// CreateInterview schedules a new interview for an application with its
// generated question set. Interviews are append-only; scheduling a second
// interview never touches earlier records.
func (db *DB) CreateInterview(ctx context.Context, applicationID uuid.UUID, questions []string) (*InterviewRecord, error) {
	if questions == nil {
		questions = []string{}
	}
	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal questions: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO interviews (application_id, status, questions)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		applicationID, types.InterviewScheduled, questionsJSON,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	return db.getInterview(ctx, `id = $1`, id)
}

// GetInterviewByToken retrieves an interview by its candidate-facing token
func (db *DB) GetInterviewByToken(ctx context.Context, token uuid.UUID) (*InterviewRecord, error) {
	return db.getInterview(ctx, `token = $1`, token)
}

func (db *DB) getInterview(ctx context.Context, where string, arg any) (*InterviewRecord, error) {
	var r InterviewRecord
	var questionsJSON, answersJSON, assessmentJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, application_id, token, status, questions, answers,
		        soft_skill_assessment, created_at, completed_at
		 FROM interviews WHERE `+where,
		arg,
	).Scan(&r.ID, &r.ApplicationID, &r.Token, &r.Status, &questionsJSON,
		&answersJSON, &assessmentJSON, &r.CreatedAt, &r.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}

	if err := decodeInterviewFields(&r, questionsJSON, answersJSON, assessmentJSON); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListInterviewsByApplication retrieves an application's interviews in
// creation order, oldest first. The last element is the authoritative one
// for ranking.
func (db *DB) ListInterviewsByApplication(ctx context.Context, applicationID uuid.UUID) ([]InterviewRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, application_id, token, status, questions, answers,
		        soft_skill_assessment, created_at, completed_at
		 FROM interviews WHERE application_id = $1 ORDER BY created_at ASC`,
		applicationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var records []InterviewRecord
	for rows.Next() {
		var r InterviewRecord
		var questionsJSON, answersJSON, assessmentJSON []byte
		if err := rows.Scan(&r.ID, &r.ApplicationID, &r.Token, &r.Status, &questionsJSON,
			&answersJSON, &assessmentJSON, &r.CreatedAt, &r.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		if err := decodeInterviewFields(&r, questionsJSON, answersJSON, assessmentJSON); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// AppendAnswer adds one answered question with its analysis and marks the
// interview in progress.
func (db *DB) AppendAnswer(ctx context.Context, interviewID uuid.UUID, answer InterviewAnswer) error {
	answerJSON, err := json.Marshal(answer)
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE interviews SET answers = answers || $1::jsonb, status = $2
		 WHERE id = $3 AND completed_at IS NULL`,
		answerJSON, types.InterviewInProgress, interviewID,
	)
	if err != nil {
		return fmt.Errorf("failed to append answer: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview not open for answers: %s", interviewID)
	}
	return nil
}

// CompleteInterview stores the merged soft-skill assessment and closes the
// interview. Completing an already-completed interview is a no-op that
// returns false.
func (db *DB) CompleteInterview(ctx context.Context, interviewID uuid.UUID, assessment map[string]float64) (bool, error) {
	assessmentJSON, err := json.Marshal(assessment)
	if err != nil {
		return false, fmt.Errorf("failed to marshal assessment: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE interviews SET soft_skill_assessment = $1, status = $2, completed_at = $3
		 WHERE id = $4 AND completed_at IS NULL`,
		assessmentJSON, types.InterviewCompleted, time.Now(), interviewID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete interview: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func decodeInterviewFields(r *InterviewRecord, questionsJSON, answersJSON, assessmentJSON []byte) error {
	if questionsJSON != nil {
		if err := json.Unmarshal(questionsJSON, &r.Questions); err != nil {
			return fmt.Errorf("failed to decode questions: %w", err)
		}
	}
	if answersJSON != nil {
		if err := json.Unmarshal(answersJSON, &r.Answers); err != nil {
			return fmt.Errorf("failed to decode answers: %w", err)
		}
	}
	if assessmentJSON != nil {
		if err := json.Unmarshal(assessmentJSON, &r.SoftSkillAssessment); err != nil {
			return fmt.Errorf("failed to decode assessment: %w", err)
		}
	}
	return nil
}
