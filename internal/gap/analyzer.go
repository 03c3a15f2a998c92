// Package gap compares a candidate skill set against a position profile.
package gap

import (
	"strconv"
	"strings"

	"github.com/jonathan/skillgap-advisor/internal/matching"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

// Analyzer partitions position skills into missing and existing per tier
type Analyzer struct {
	Matcher matching.Matcher
}

// NewAnalyzer creates an Analyzer. A nil matcher selects matching.Default.
func NewAnalyzer(m matching.Matcher) *Analyzer {
	if m == nil {
		m = matching.Default
	}
	return &Analyzer{Matcher: m}
}

func (a *Analyzer) matcher() matching.Matcher {
	if a == nil || a.Matcher == nil {
		return matching.Default
	}
	return a.Matcher
}

// Analyze computes the gap analysis of a candidate against one position.
// The position name is accepted for symmetry with the recommendation builder;
// the result depends only on the skill set and the profile.
func (a *Analyzer) Analyze(skills matching.SkillSet, profile *types.PositionProfile, position string) *types.GapAnalysis {
	_ = position
	m := a.matcher()

	required := partition(m, profile.RequiredSkills, skills)
	advanced := partition(m, profile.AdvancedSkills, skills)
	tools := partition(m, profile.ToolSkills, skills)

	return &types.GapAnalysis{
		MissingRequiredSkills:  required.missing,
		MissingAdvancedSkills:  advanced.missing,
		MissingToolSkills:      tools.missing,
		ExistingRequiredSkills: required.existing,
		ExistingAdvancedSkills: advanced.existing,
		ExistingToolSkills:     tools.existing,
		CompletionPercentages: types.CompletionPercentages{
			Required: required.completion(100),
			Advanced: advanced.completion(0),
			Tools:    tools.completion(0),
		},
		CriticalGaps: cloneStrings(required.missing),
		CareerLevel:  CareerLevel(m, profile.CareerProgression, skills),
	}
}

type tierSplit struct {
	missing  []string
	existing []string
}

// completion returns the rounded percentage of existing skills, or whenEmpty
// if the tier lists no skills at all.
func (s tierSplit) completion(whenEmpty float64) float64 {
	total := len(s.missing) + len(s.existing)
	if total == 0 {
		return whenEmpty
	}
	return Round1(float64(len(s.existing)) / float64(total) * 100)
}

func partition(m matching.Matcher, catalogSkills []string, skills matching.SkillSet) tierSplit {
	split := tierSplit{
		missing:  []string{},
		existing: []string{},
	}
	for _, skill := range catalogSkills {
		skill = strings.ToLower(skill)
		if m.Present(skill, skills) {
			split.existing = append(split.existing, skill)
		} else {
			split.missing = append(split.missing, skill)
		}
	}
	return split
}

// Round1 rounds to one decimal place. Exact halves go to the even digit,
// so 62.5/2 = 31.25 becomes 31.2 rather than 31.3.
func Round1(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
