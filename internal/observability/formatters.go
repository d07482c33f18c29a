// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkowalski/recruitment-api/internal/scoring"
	"github.com/mkowalski/recruitment-api/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPosition outputs a human-readable summary of the position being scored.
func (p *Printer) PrintPosition(title string, mustHave, niceToHave []types.Requirement, formula types.ScoringFormula) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", title))
	sb.WriteString(fmt.Sprintf("Formula:  must-have %.2f / nice-to-have %.2f\n", formula.MustHaveWeight, formula.NiceToHaveWeight))
	sb.WriteString("\n")

	if len(mustHave) > 0 {
		sb.WriteString("Must-have:\n")
		count := min(len(mustHave), maxItemsToShow)
		for i := 0; i < count; i++ {
			req := mustHave[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, weight %d)\n", req.Skill, req.Level, req.Weight))
		}
		if len(mustHave) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(mustHave)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(niceToHave) > 0 {
		sb.WriteString("Nice-to-have:\n")
		count := min(len(niceToHave), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", niceToHave[i].Skill))
		}
		if len(niceToHave) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(niceToHave)-3))
		}
	}

	p.printBox("POSITION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchBreakdown outputs one requirement list's match result, hit by hit.
func (p *Printer) PrintMatchBreakdown(label string, result scoring.MatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d/%d, normalized score %.2f\n\n",
		result.MatchedCount(), len(result.PerItem), result.NormalizedScore))

	count := min(len(result.PerItem), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := result.PerItem[i]
		mark := "✗"
		if item.Matched {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s (weight %d)\n", mark, item.Skill, item.Weight))
	}
	if len(result.PerItem) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more requirements", len(result.PerItem)-maxItemsToShow))
	}

	p.printBox(label, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the blended ranking score and recommendation.
func (p *Printer) PrintRanking(ranked scoring.RankingScore, recommendation scoring.Recommendation) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Technical:  %.1f / 100\n", ranked.Technical))
	if ranked.SoftSkills != nil {
		sb.WriteString(fmt.Sprintf("Soft:       %.1f / 10\n", *ranked.SoftSkills))
	} else {
		sb.WriteString("Soft:       not interviewed\n")
	}
	sb.WriteString(fmt.Sprintf("Combined:   %.1f / 100\n", ranked.Combined))
	sb.WriteString(fmt.Sprintf("\nRecommendation: %s", recommendation))

	p.printBox("RANKING SCORE", sb.String())
}

// PrintInsights outputs the recruiter-facing scoring summary.
func (p *Printer) PrintInsights(insights scoring.Insights) {
	var sb strings.Builder
	sb.WriteString(insights.Summary)
	sb.WriteString("\n")

	if len(insights.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range insights.Strengths {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}
	if len(insights.AreasForDevelopment) > 0 {
		sb.WriteString("\nAreas for development:\n")
		for _, a := range insights.AreasForDevelopment {
			sb.WriteString(fmt.Sprintf("  • %s\n", a))
		}
	}

	p.printBox("SCORING INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}
