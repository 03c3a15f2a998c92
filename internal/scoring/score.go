// Package scoring computes the weighted readiness score of a gap analysis.
package scoring

import (
	"github.com/jonathan/skillgap-advisor/internal/gap"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

// Tier weights of the overall score
const (
	RequiredWeight = 0.5
	AdvancedWeight = 0.3
	ToolsWeight    = 0.2
)

// Readiness levels, from best to worst
const (
	HighlyReady            = "Highly Ready"
	ModeratelyReady        = "Moderately Ready"
	NeedsDevelopment       = "Needs Development"
	SignificantDevelopment = "Significant Development Needed"
)

// Learning weeks assumed per missing skill when estimating time to readiness
const (
	weeksPerRequiredSkill = 6
	weeksPerAdvancedSkill = 8
)

// Calculate scores a gap analysis
func Calculate(analysis *types.GapAnalysis) *types.ScoreResult {
	raw := WeightedScore(analysis.CompletionPercentages)
	return &types.ScoreResult{
		OverallScore:             gap.Round1(raw),
		ReadinessLevel:           ReadinessLevel(raw),
		ImprovementPotential:     gap.Round1(100 - raw),
		EstimatedTimeToReadiness: TimeToReadiness(len(analysis.MissingRequiredSkills), len(analysis.MissingAdvancedSkills)),
	}
}

// WeightedScore returns the unrounded weighted completion
func WeightedScore(c types.CompletionPercentages) float64 {
	return c.Required*RequiredWeight + c.Advanced*AdvancedWeight + c.Tools*ToolsWeight
}

// ReadinessLevel buckets a score
func ReadinessLevel(score float64) string {
	switch {
	case score >= 80:
		return HighlyReady
	case score >= 60:
		return ModeratelyReady
	case score >= 40:
		return NeedsDevelopment
	default:
		return SignificantDevelopment
	}
}

// TimeToReadiness turns the number of missing required and advanced skills into
// a coarse label.
func TimeToReadiness(missingRequired, missingAdvanced int) string {
	weeks := missingRequired*weeksPerRequiredSkill + missingAdvanced*weeksPerAdvancedSkill
	switch {
	case weeks <= 8:
		return "2 months"
	case weeks <= 16:
		return "4 months"
	case weeks <= 24:
		return "6 months"
	case weeks <= 36:
		return "9 months"
	default:
		return "12+ months"
	}
}
