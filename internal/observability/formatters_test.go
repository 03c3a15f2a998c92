package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/skillgap-advisor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintGapAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	gap := &types.GapAnalysis{
		MissingRequiredSkills: []string{"statistics"},
		MissingAdvancedSkills: []string{"machine learning", "deep learning", "nlp"},
		CompletionPercentages: types.CompletionPercentages{Required: 66.7, Advanced: 0, Tools: 40},
		CareerLevel:           "beginner",
	}

	p.PrintGapAnalysis("data_science", gap)
	output := buf.String()

	assert.Contains(t, output, "SKILL GAP ANALYSIS")
	assert.Contains(t, output, "Data Science")
	assert.Contains(t, output, "66.7%")
	assert.Contains(t, output, "statistics")
	assert.Contains(t, output, "deep learning")
	assert.NotContains(t, output, "Missing tools")
}

func TestPrintGapAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapAnalysis("devops", nil)

	assert.Empty(t, buf.String())
}

func TestPrintGapAnalysis_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapAnalysis("devops", &types.GapAnalysis{
		MissingToolSkills: []string{"a", "b", "c", "d", "e", "f", "g"},
	})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := &types.Recommendations{
		ImmediatePriorities: []types.Recommendation{
			{Skill: "python", Priority: types.PriorityCritical, EstimatedTime: 6, Resources: []types.Course{{Name: "Python for Everybody"}}},
		},
		LongTermDevelopment: []types.Recommendation{
			{Skill: "git", Priority: types.PriorityMedium, EstimatedTime: 2, Resources: []types.Course{}},
		},
		EstimatedTimeline:   types.Timeline{Immediate: "6 weeks", ShortTerm: "0 months", LongTerm: "2 months"},
		SkillCertifications: []types.Certification{{Name: "PCAP", Provider: "Python Institute"}},
	}

	p.PrintRecommendations(recs)
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "python [critical] 6 (1 courses)")
	assert.Contains(t, output, "git [medium] 2")
	assert.NotContains(t, output, "Short term:")
	assert.Contains(t, output, "6 weeks / 0 months / 2 months")
	assert.Contains(t, output, "PCAP (Python Institute)")
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(&types.ScoreResult{
		OverallScore:             41.4,
		ReadinessLevel:           "Needs Development",
		ImprovementPotential:     58.7,
		EstimatedTimeToReadiness: "9 months",
	})
	output := buf.String()

	assert.Contains(t, output, "READINESS SCORE")
	assert.Contains(t, output, "41.4/100")
	assert.Contains(t, output, "Needs Development")
	assert.Contains(t, output, "9 months")
}

func TestPrintPositionFits(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPositionFits([]types.PositionFit{
		{Position: "web_development", OverallScore: 67.5, ReadinessLevel: "Moderately Ready", CareerLevel: "junior"},
		{Position: "devops", OverallScore: 16.7, ReadinessLevel: "Significant Development Needed", CareerLevel: "beginner", CriticalGaps: 2},
	})
	output := buf.String()

	assert.Contains(t, output, "POSITION FIT")
	assert.Contains(t, output, "#1  Web Development")
	assert.Contains(t, output, "#2  Devops")
	assert.Contains(t, output, "critical gaps: 2")
}

func TestPrintPositionFits_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPositionFits(nil)

	assert.Contains(t, buf.String(), "NO POSITIONS IN CATALOG")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	longLine := strings.Repeat("x", 100)
	p.printBox("TEST", longLine)
	output := buf.String()

	assert.Contains(t, output, "...")
	assert.NotContains(t, output, longLine)
}
