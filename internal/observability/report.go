package observability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/jonathan/skillgap-advisor/internal/types"
)

// maxPhaseActions is the number of actions listed per improvement phase
const maxPhaseActions = 3

// FormatReport renders a report as the plain-text summary shown to candidates.
func FormatReport(report *types.Report) string {
	if report == nil {
		return ""
	}
	if report.Failed() {
		return fmt.Sprintf("Error: %s", report.Error)
	}

	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("📊 SKILL GAP ANALYSIS REPORT")
	add("Position: %s", DisplayPosition(report.TargetPosition))
	add("Generated: %s", report.AnalysisTimestamp.Format(time.RFC3339))
	add("")

	if gap := report.SkillGapAnalysis; gap != nil {
		add("🎯 SKILL GAP ANALYSIS:")
		add("Required Skills Completion: %s%%", completion(gap.CompletionPercentages.Required, gap.MissingRequiredSkills, gap.ExistingRequiredSkills))
		add("Advanced Skills Completion: %s%%", completion(gap.CompletionPercentages.Advanced, gap.MissingAdvancedSkills, gap.ExistingAdvancedSkills))
		add("Tools Skills Completion: %s%%", completion(gap.CompletionPercentages.Tools, gap.MissingToolSkills, gap.ExistingToolSkills))
		add("")

		if len(gap.CriticalGaps) > 0 {
			add("⚠️ CRITICAL SKILL GAPS (Must Learn):")
			for _, skill := range gap.CriticalGaps {
				add("  • %s", skill)
			}
			add("")
		}
	}

	if recs := report.Recommendations; recs != nil && len(recs.ImmediatePriorities) > 0 {
		add("🚀 IMMEDIATE PRIORITIES (Next 1-3 months):")
		for _, r := range recs.ImmediatePriorities {
			add("  • %s - %d weeks", r.Skill, r.EstimatedTime)
		}
		add("")
	}

	if plan := report.ImprovementPlan; plan != nil {
		add("📈 IMPROVEMENT PLAN:")
		for _, phase := range plan.Phases() {
			if len(phase.Actions) == 0 {
				continue
			}
			add("  %s: %s", phase.Duration, phase.Focus)
			for _, action := range phase.Actions[:min(len(phase.Actions), maxPhaseActions)] {
				add("    • %s", action)
			}
		}
	}

	if score := report.OverallScore; score != nil {
		add("")
		add("📊 OVERALL READINESS: %s", score.ReadinessLevel)
		add("Score: %.1f/100", score.OverallScore)
		add("Estimated time to readiness: %s", score.EstimatedTimeToReadiness)
	}

	return strings.Join(lines, "\n")
}

// PrintReport writes the plain-text summary of a report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *types.Report) {
	fmt.Fprintln(p.out, FormatReport(report))
}

// DisplayPosition turns a position id such as "ui_ux_design" into "Ui Ux Design".
func DisplayPosition(position string) string {
	runes := []rune(strings.ReplaceAll(position, "_", " "))
	startOfWord := true
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if startOfWord {
				runes[i] = unicode.ToUpper(r)
			} else {
				runes[i] = unicode.ToLower(r)
			}
			startOfWord = false
		} else {
			startOfWord = true
		}
	}
	return string(runes)
}

// completion prints a tier percentage. A tier with no skills is complete by
// definition and prints as a whole number.
func completion(pct float64, missing, existing []string) string {
	if len(missing) == 0 && len(existing) == 0 {
		return strconv.FormatFloat(pct, 'f', 0, 64)
	}
	return strconv.FormatFloat(pct, 'f', 1, 64)
}
