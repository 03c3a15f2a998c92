// Package planning lays recommendations out over a fixed three-phase timeline.
package planning

import (
	"fmt"

	"github.com/jonathan/skillgap-advisor/internal/types"
)

const (
	Phase1Duration = "0-3 months"
	Phase1Focus    = "Critical Skill Development"
	Phase2Duration = "3-6 months"
	Phase2Focus    = "Advanced Skill Building"
	Phase3Duration = "6-12 months"
	Phase3Focus    = "Mastery and Specialization"
)

// Build maps immediate priorities to phase 1, short-term goals to phase 2 and
// long-term development to phase 3, one action and one success metric per
// recommendation.
func Build(recs *types.Recommendations) *types.ImprovementPlan {
	plan := &types.ImprovementPlan{
		Phase1: newPhase(Phase1Duration, Phase1Focus),
		Phase2: newPhase(Phase2Duration, Phase2Focus),
		Phase3: newPhase(Phase3Duration, Phase3Focus),
	}
	if recs == nil {
		return plan
	}

	for _, r := range recs.ImmediatePriorities {
		plan.Phase1.Actions = append(plan.Phase1.Actions, fmt.Sprintf("Learn %s (%d weeks)", r.Skill, r.EstimatedTime))
		plan.Phase1.SuccessMetrics = append(plan.Phase1.SuccessMetrics, fmt.Sprintf("Complete %s course/project", r.Skill))
	}
	for _, r := range recs.ShortTermGoals {
		// No unit on purpose: advanced estimates are shown as a bare number
		plan.Phase2.Actions = append(plan.Phase2.Actions, fmt.Sprintf("Master %s (%d)", r.Skill, r.EstimatedTime))
		plan.Phase2.SuccessMetrics = append(plan.Phase2.SuccessMetrics, fmt.Sprintf("Build project with %s", r.Skill))
	}
	for _, r := range recs.LongTermDevelopment {
		plan.Phase3.Actions = append(plan.Phase3.Actions, fmt.Sprintf("Specialize in %s", r.Skill))
		plan.Phase3.SuccessMetrics = append(plan.Phase3.SuccessMetrics, fmt.Sprintf("Get certification in %s", r.Skill))
	}

	return plan
}

func newPhase(duration, focus string) types.Phase {
	return types.Phase{
		Duration:       duration,
		Focus:          focus,
		Actions:        []string{},
		SuccessMetrics: []string{},
	}
}
