// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillgap-advisor/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGapAnalysis outputs tier completion and the missing skills of a gap analysis.
func (p *Printer) PrintGapAnalysis(position string, gap *types.GapAnalysis) {
	if gap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Position:     %s\n", DisplayPosition(position)))
	sb.WriteString(fmt.Sprintf("Career level: %s\n", gap.CareerLevel))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Required: %5.1f%%\n", gap.CompletionPercentages.Required))
	sb.WriteString(fmt.Sprintf("Advanced: %5.1f%%\n", gap.CompletionPercentages.Advanced))
	sb.WriteString(fmt.Sprintf("Tools:    %5.1f%%\n", gap.CompletionPercentages.Tools))

	writeList(&sb, "Missing required", gap.MissingRequiredSkills)
	writeList(&sb, "Missing advanced", gap.MissingAdvancedSkills)
	writeList(&sb, "Missing tools", gap.MissingToolSkills)

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", label))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintRecommendations outputs the recommendations with their estimates and timeline.
func (p *Printer) PrintRecommendations(recs *types.Recommendations) {
	if recs == nil {
		return
	}

	var sb strings.Builder
	sections := []struct {
		label string
		recs  []types.Recommendation
	}{
		{"Immediate", recs.ImmediatePriorities},
		{"Short term", recs.ShortTermGoals},
		{"Long term", recs.LongTermDevelopment},
	}
	for _, section := range sections {
		if len(section.recs) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", section.label))
		count := min(len(section.recs), maxItemsToShow)
		for i := 0; i < count; i++ {
			r := section.recs[i]
			sb.WriteString(fmt.Sprintf("  • %s [%s] %d", r.Skill, r.Priority, r.EstimatedTime))
			if len(r.Resources) > 0 {
				sb.WriteString(fmt.Sprintf(" (%d courses)", len(r.Resources)))
			}
			sb.WriteString("\n")
		}
		if len(section.recs) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.recs)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Timeline: %s / %s / %s\n",
		recs.EstimatedTimeline.Immediate, recs.EstimatedTimeline.ShortTerm, recs.EstimatedTimeline.LongTerm))

	if len(recs.SkillCertifications) > 0 {
		sb.WriteString("\nCertifications:\n")
		for _, c := range recs.SkillCertifications {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", c.Name, c.Provider))
		}
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the readiness score.
func (p *Printer) PrintScore(score *types.ScoreResult) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:      %.1f/100\n", score.OverallScore))
	sb.WriteString(fmt.Sprintf("Readiness:  %s\n", score.ReadinessLevel))
	sb.WriteString(fmt.Sprintf("Potential:  %.1f\n", score.ImprovementPotential))
	sb.WriteString(fmt.Sprintf("Time:       %s", score.EstimatedTimeToReadiness))

	p.printBox("READINESS SCORE", sb.String())
}

// PrintPositionFits outputs a ranking of positions for one candidate.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPositionFits(fits []types.PositionFit) {
	if len(fits) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO POSITIONS IN CATALOG")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, fit := range fits {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, DisplayPosition(fit.Position)))
		sb.WriteString(fmt.Sprintf("    Score: %.1f (%s)\n", fit.OverallScore, fit.ReadinessLevel))
		sb.WriteString(fmt.Sprintf("    Level: %s, critical gaps: %d", fit.CareerLevel, fit.CriticalGaps))
		if i < len(fits)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("POSITION FIT", sb.String())
}
