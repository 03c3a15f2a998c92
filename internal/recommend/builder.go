// Package recommend turns skill gaps into prioritized, time-estimated learning recommendations.
package recommend

import (
	"fmt"

	"github.com/jonathan/skillgap-advisor/internal/gap"
	"github.com/jonathan/skillgap-advisor/internal/matching"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

// ResourceLookup resolves learning material by exact skill name
type ResourceLookup interface {
	Resource(skill string) (types.LearningResource, bool)
}

// Builder derives recommendations from a candidate's gaps against a position
type Builder struct {
	analyzer  *gap.Analyzer
	resources ResourceLookup
}

// NewBuilder creates a Builder. A nil resource lookup attaches no resources.
func NewBuilder(analyzer *gap.Analyzer, resources ResourceLookup) *Builder {
	if analyzer == nil {
		analyzer = gap.NewAnalyzer(nil)
	}
	return &Builder{analyzer: analyzer, resources: resources}
}

var tierPriority = map[types.Tier]types.Priority{
	types.TierRequired: types.PriorityCritical,
	types.TierAdvanced: types.PriorityHigh,
	types.TierTool:     types.PriorityMedium,
}

// Build computes the gap analysis of the candidate and turns every missing
// skill into a recommendation.
func (b *Builder) Build(skills matching.SkillSet, profile *types.PositionProfile, position string) *types.Recommendations {
	analysis := b.analyzer.Analyze(skills, profile, position)
	return b.FromGaps(analysis, position)
}

// FromGaps builds recommendations from an existing gap analysis
func (b *Builder) FromGaps(analysis *types.GapAnalysis, position string) *types.Recommendations {
	recs := &types.Recommendations{
		ImmediatePriorities: b.recommend(analysis.MissingRequiredSkills, types.TierRequired),
		ShortTermGoals:      b.recommend(analysis.MissingAdvancedSkills, types.TierAdvanced),
		LongTermDevelopment: b.recommend(analysis.MissingToolSkills, types.TierTool),
		LearningResources:   make(map[string]types.LearningResource),
	}

	for _, tier := range types.GapTiers {
		for _, skill := range analysis.Missing(tier) {
			if resource, ok := b.resource(skill); ok {
				recs.LearningResources[skill] = resource
			}
		}
	}

	recs.EstimatedTimeline = types.Timeline{
		Immediate: fmt.Sprintf("%d weeks", totalTime(recs.ImmediatePriorities)),
		ShortTerm: fmt.Sprintf("%d months", totalTime(recs.ShortTermGoals)),
		LongTerm:  fmt.Sprintf("%d months", totalTime(recs.LongTermDevelopment)),
	}
	recs.SkillCertifications = Certifications(position, analysis)

	return recs
}

func (b *Builder) recommend(missing []string, tier types.Tier) []types.Recommendation {
	out := make([]types.Recommendation, 0, len(missing))
	for _, skill := range missing {
		courses := []types.Course{}
		if resource, ok := b.resource(skill); ok && len(resource.Courses) > 0 {
			courses = append(courses, resource.Courses...)
		}
		out = append(out, types.Recommendation{
			Skill:         skill,
			Priority:      tierPriority[tier],
			EstimatedTime: EstimateLearningTime(skill, tier),
			Resources:     courses,
		})
	}
	return out
}

func (b *Builder) resource(skill string) (types.LearningResource, bool) {
	if b.resources == nil {
		return types.LearningResource{}, false
	}
	return b.resources.Resource(skill)
}

func totalTime(recs []types.Recommendation) int {
	total := 0
	for _, r := range recs {
		total += r.EstimatedTime
	}
	return total
}
