package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkowalski/recruitment-api/internal/db"
	"github.com/mkowalski/recruitment-api/internal/observability"
	"github.com/mkowalski/recruitment-api/internal/scoring"
	"github.com/mkowalski/recruitment-api/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate profile against a position offline",
	Long:  "Runs the technical scoring engine on a position definition and a candidate profile from JSON files, without a database or API key, producing a ScoreReport JSON.",
	RunE:  runScore,
}

var (
	scorePosition  string
	scoreCandidate string
	scoreOutput    string
	scoreVerbose   bool
)

// ScoreReport is the offline scoring result written by the score command.
type ScoreReport struct {
	PositionTitle  string                 `json:"position_title"`
	TechnicalScore float64                `json:"technical_score"`
	MustHave       scoring.MatchResult    `json:"must_have"`
	NiceToHave     scoring.MatchResult    `json:"nice_to_have"`
	Insights       scoring.Insights       `json:"insights"`
	Ranking        scoring.RankingScore   `json:"ranking"`
	Recommendation scoring.Recommendation `json:"recommendation"`
}

func init() {
	scoreCmd.Flags().StringVarP(&scorePosition, "position", "p", "", "Path to input position JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to input candidate profile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ScoreReport JSON file (stdout if omitted)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print formatted scoring breakdowns")

	if err := scoreCmd.MarkFlagRequired("position"); err != nil {
		panic(fmt.Sprintf("failed to mark position flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	position, err := loadPositionFile(scorePosition)
	if err != nil {
		return err
	}
	candidate, err := loadCandidateFile(scoreCandidate)
	if err != nil {
		return err
	}

	report, err := scoreOffline(position, candidate)
	if err != nil {
		return err
	}

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintPosition(position.Title, position.MustHave, position.NiceToHave, position.Formula)
		printer.PrintMatchBreakdown("MUST-HAVE MATCHES", report.MustHave)
		printer.PrintMatchBreakdown("NICE-TO-HAVE MATCHES", report.NiceToHave)
		printer.PrintRanking(report.Ranking, report.Recommendation)
		printer.PrintInsights(report.Insights)
	}

	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score report to JSON: %w", err)
	}

	if scoreOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(scoreOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(scoreOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write score report to output file %s: %w", scoreOutput, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Scored %.1f/100 (%s) to %s\n", report.TechnicalScore, report.Recommendation, scoreOutput)
	return nil
}

func loadPositionFile(path string) (*types.CreatePositionRequest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read position file %s: %w", path, err)
	}

	var position types.CreatePositionRequest
	if err := json.Unmarshal(content, &position); err != nil {
		return nil, fmt.Errorf("failed to unmarshal position JSON: %w", err)
	}
	if err := position.Validate(); err != nil {
		return nil, fmt.Errorf("invalid position: %w", err)
	}

	// A position with no formula gets the server's default split
	if position.Formula.MustHaveWeight == 0 && position.Formula.NiceToHaveWeight == 0 {
		position.Formula = types.ScoringFormula{
			MustHaveWeight:   db.DefaultMustHaveWeight,
			NiceToHaveWeight: db.DefaultNiceToHaveWeight,
		}
	}
	if err := scoring.ValidateFormula(position.Formula); err != nil {
		return nil, err
	}
	return &position, nil
}

func loadCandidateFile(path string) (*types.CandidateProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(content, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate profile JSON: %w", err)
	}
	return &candidate, nil
}

func scoreOffline(position *types.CreatePositionRequest, candidate *types.CandidateProfile) (*ScoreReport, error) {
	mustHave := scoring.MatchRequirements(position.MustHave, candidate)
	niceToHave := scoring.MatchRequirements(position.NiceToHave, candidate)

	policy := scoring.DefaultExperiencePolicy()
	if position.ExperienceCapYears > 0 {
		policy.YearsCap = position.ExperienceCapYears
	}

	score, err := scoring.AggregateTechnical(mustHave, niceToHave, candidate, position.Formula, policy)
	if err != nil {
		return nil, err
	}

	ranking := scoring.Combine(score, nil)
	return &ScoreReport{
		PositionTitle:  position.Title,
		TechnicalScore: score,
		MustHave:       mustHave,
		NiceToHave:     niceToHave,
		Insights:       scoring.BuildInsights(score, mustHave, niceToHave, candidate),
		Ranking:        ranking,
		Recommendation: scoring.Recommend(ranking.Combined),
	}, nil
}
