package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/skillgap-advisor/internal/types"
)

// SkillSet is a deduplicated set of lower-cased candidate skills.
// The zero value is an empty set.
type SkillSet struct {
	index map[string]struct{}
	list  []string
}

// NewSkillSet builds a set from raw skill strings. Entries are lower-cased and
// trimmed; empty entries are dropped.
func NewSkillSet(skills ...string) SkillSet {
	var s SkillSet
	s.add(skills...)
	return s
}

// FromProfile unions the three skill sources of a candidate profile:
// `skills`, `all_skills` and every list in `skills_by_category`.
func FromProfile(profile *types.CandidateProfile) SkillSet {
	var s SkillSet
	if profile == nil {
		return s
	}

	s.add(profile.Skills...)
	s.add(profile.AllSkills...)

	categories := make([]string, 0, len(profile.SkillsByCategory))
	for category := range profile.SkillsByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		s.add(profile.SkillsByCategory[category]...)
	}

	return s
}

func (s *SkillSet) add(skills ...string) {
	if s.index == nil {
		s.index = make(map[string]struct{}, len(skills))
	}
	for _, skill := range skills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized == "" {
			continue
		}
		if _, exists := s.index[normalized]; exists {
			continue
		}
		s.index[normalized] = struct{}{}
		s.list = append(s.list, normalized)
	}
}

// Len returns the number of distinct skills
func (s SkillSet) Len() int {
	return len(s.list)
}

// Contains reports exact (case-insensitive) membership
func (s SkillSet) Contains(skill string) bool {
	_, ok := s.index[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// Skills returns the skills in sorted order
func (s SkillSet) Skills() []string {
	out := make([]string, len(s.list))
	copy(out, s.list)
	sort.Strings(out)
	return out
}
