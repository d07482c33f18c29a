// Package llm - tasks.go evaluates recruitment task submissions.
package llm

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/mkowalski/recruitment-api/internal/prompts"
)

// TaskEvaluation is the scored review of a recruitment task submission.
// Score is on a 0..5 scale.
type TaskEvaluation struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// EvaluateTask scores a task submission against the task description. When
// the model call fails the SQL heuristic takes over, so a submission is
// always scored.
func EvaluateTask(ctx context.Context, client Client, taskDescription, solution string) TaskEvaluation {
	if client == nil {
		return heuristicSQLEvaluation(solution)
	}

	template := prompts.MustGet("recruitment.json", "evaluate-task")
	prompt := prompts.Format(template, map[string]string{
		"TaskDescription": taskDescription,
		"Solution":        solution,
	})

	responseText, err := client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		log.Printf("task evaluation failed, using heuristic: %v", err)
		return heuristicSQLEvaluation(solution)
	}

	var eval TaskEvaluation
	if err := json.Unmarshal([]byte(responseText), &eval); err != nil {
		log.Printf("task evaluation response unusable, using heuristic: %v", err)
		return heuristicSQLEvaluation(solution)
	}

	if eval.Score < 0 {
		eval.Score = 0
	}
	if eval.Score > 5 {
		eval.Score = 5
	}
	return eval
}

// heuristicSQLEvaluation scores a SQL submission without the model: a full
// "select all orders" query earns 5, a query that at least selects from the
// orders table earns 3, anything else 0.
func heuristicSQLEvaluation(solution string) TaskEvaluation {
	normalized := strings.ToLower(solution)

	switch {
	case strings.Contains(normalized, "select * from orders") ||
		strings.Contains(normalized, "select*from orders"):
		return TaskEvaluation{
			Score:    5,
			Feedback: "Correct solution.",
		}
	case strings.Contains(normalized, "select") && strings.Contains(normalized, "orders"):
		return TaskEvaluation{
			Score:    3,
			Feedback: "Partially correct: selects from the orders table but may have syntax errors.",
		}
	default:
		return TaskEvaluation{
			Score:    0,
			Feedback: "Incorrect solution: expected a SELECT query against the orders table.",
		}
	}
}
