// Package types provides type definitions for structured data used throughout the skill-gap advisor.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"time"
)

// Priority ranks a recommendation by the tier its skill comes from
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
)

// CompletionPercentages holds per-tier completion, 0-100 with one decimal
type CompletionPercentages struct {
	Required float64 `json:"required"`
	Advanced float64 `json:"advanced"`
	Tools    float64 `json:"tools"`
}

// GapAnalysis is the result of comparing a candidate against one position
type GapAnalysis struct {
	MissingRequiredSkills  []string              `json:"missing_required_skills"`
	MissingAdvancedSkills  []string              `json:"missing_advanced_skills"`
	MissingToolSkills      []string              `json:"missing_tool_skills"`
	ExistingRequiredSkills []string              `json:"existing_required_skills"`
	ExistingAdvancedSkills []string              `json:"existing_advanced_skills"`
	ExistingToolSkills     []string              `json:"existing_tool_skills"`
	CompletionPercentages  CompletionPercentages `json:"completion_percentages"`
	CriticalGaps           []string              `json:"critical_gaps"`
	CareerLevel            string                `json:"career_level"`
}

// Missing returns the missing skills of a gap tier
func (g *GapAnalysis) Missing(tier Tier) []string {
	switch tier {
	case TierRequired:
		return g.MissingRequiredSkills
	case TierAdvanced:
		return g.MissingAdvancedSkills
	case TierTool:
		return g.MissingToolSkills
	default:
		return nil
	}
}

// Recommendation is a single skill to learn
type Recommendation struct {
	Skill         string   `json:"skill"`
	Priority      Priority `json:"priority"`
	EstimatedTime int      `json:"estimated_time"`
	Resources     []Course `json:"resources"`
}

// Timeline holds the summed learning time per horizon as display labels
type Timeline struct {
	Immediate string `json:"immediate"`
	ShortTerm string `json:"short_term"`
	LongTerm  string `json:"long_term"`
}

// Recommendations groups the learning recommendations for a candidate
type Recommendations struct {
	ImmediatePriorities []Recommendation            `json:"immediate_priorities"`
	ShortTermGoals      []Recommendation            `json:"short_term_goals"`
	LongTermDevelopment []Recommendation            `json:"long_term_development"`
	LearningResources   map[string]LearningResource `json:"learning_resources"`
	EstimatedTimeline   Timeline                    `json:"estimated_timeline"`
	SkillCertifications []Certification             `json:"skill_certifications"`
}

// Phase is one step of the improvement plan
type Phase struct {
	Duration       string   `json:"duration"`
	Focus          string   `json:"focus"`
	Actions        []string `json:"actions"`
	SuccessMetrics []string `json:"success_metrics"`
}

// ImprovementPlan is the fixed three-phase learning timeline
type ImprovementPlan struct {
	Phase1 Phase `json:"phase_1"`
	Phase2 Phase `json:"phase_2"`
	Phase3 Phase `json:"phase_3"`
}

// Phases returns the plan phases in order
func (p *ImprovementPlan) Phases() []Phase {
	return []Phase{p.Phase1, p.Phase2, p.Phase3}
}

// ScoreResult is the weighted readiness score of a candidate
type ScoreResult struct {
	OverallScore             float64 `json:"overall_score"`
	ReadinessLevel           string  `json:"readiness_level"`
	ImprovementPotential     float64 `json:"improvement_potential"`
	EstimatedTimeToReadiness string  `json:"estimated_time_to_readiness"`
}

// CandidateSummary is the short candidate section of a report
type CandidateSummary struct {
	SkillsCount     int    `json:"skills_count"`
	ExperienceYears int    `json:"experience_years"`
	EducationLevel  string `json:"education_level"`
}

// Report is the complete output of one analysis. A report with a non-empty
// Error carries no analysis sections.
type Report struct {
	TargetPosition    string            `json:"target_position"`
	AnalysisTimestamp time.Time         `json:"analysis_timestamp"`
	CandidateProfile  *CandidateSummary `json:"candidate_profile,omitempty"`
	SkillGapAnalysis  *GapAnalysis      `json:"skill_gap_analysis,omitempty"`
	Recommendations   *Recommendations  `json:"recommendations,omitempty"`
	ImprovementPlan   *ImprovementPlan  `json:"improvement_plan,omitempty"`
	OverallScore      *ScoreResult      `json:"overall_score,omitempty"`
	Error             string            `json:"error,omitempty"`
}

// Failed reports whether the analysis ended in an error descriptor
func (r *Report) Failed() bool {
	return r.Error != ""
}

type errorReport struct {
	TargetPosition    string         `json:"target_position"`
	AnalysisTimestamp time.Time      `json:"analysis_timestamp"`
	Error             string         `json:"error"`
	Recommendations   []any          `json:"recommendations"`
	ImprovementPlan   map[string]any `json:"improvement_plan"`
}

// MarshalJSON emits the error shape (`recommendations: []`, `improvement_plan: {}`)
// for failed reports and the full report otherwise.
func (r Report) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(errorReport{
			TargetPosition:    r.TargetPosition,
			AnalysisTimestamp: r.AnalysisTimestamp,
			Error:             r.Error,
			Recommendations:   []any{},
			ImprovementPlan:   map[string]any{},
		})
	}
	type plain Report
	return json.Marshal(plain(r))
}

// UnmarshalJSON reads both report shapes
func (r *Report) UnmarshalJSON(data []byte) error {
	type plain Report
	var head struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	if head.Error != "" {
		var er errorReport
		if err := json.Unmarshal(data, &er); err != nil {
			return err
		}
		*r = Report{
			TargetPosition:    er.TargetPosition,
			AnalysisTimestamp: er.AnalysisTimestamp,
			Error:             er.Error,
		}
		return nil
	}
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Report(p)
	return nil
}

// PositionFit summarizes how well a candidate fits one position
type PositionFit struct {
	Position       string  `json:"position"`
	OverallScore   float64 `json:"overall_score"`
	ReadinessLevel string  `json:"readiness_level"`
	CareerLevel    string  `json:"career_level"`
	CriticalGaps   int     `json:"critical_gaps"`
}
