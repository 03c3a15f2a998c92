// Package matching provides the skill comparison primitive used by gap analysis.
package matching

import (
	"fmt"
	"strings"
)

// Matcher decides whether a catalog skill is present in a candidate skill set
type Matcher interface {
	Present(catalogSkill string, skills SkillSet) bool
}

// SubstringMatcher treats a catalog skill as present when it is a substring of
// at least one candidate skill, case-insensitively. "python" matches
// "python 3", but "java" also matches "javascript".
type SubstringMatcher struct{}

// Present implements Matcher
func (SubstringMatcher) Present(catalogSkill string, skills SkillSet) bool {
	needle := strings.ToLower(catalogSkill)
	for _, candidate := range skills.list {
		if strings.Contains(candidate, needle) {
			return true
		}
	}
	return false
}

// ExactMatcher treats a catalog skill as present only on case-insensitive equality
type ExactMatcher struct{}

// Present implements Matcher
func (ExactMatcher) Present(catalogSkill string, skills SkillSet) bool {
	return skills.Contains(catalogSkill)
}

// Default is the matcher used when none is configured
var Default Matcher = SubstringMatcher{}

// CountPresent returns how many of the catalog skills are present
func CountPresent(m Matcher, catalogSkills []string, skills SkillSet) int {
	count := 0
	for _, skill := range catalogSkills {
		if m.Present(skill, skills) {
			count++
		}
	}
	return count
}

// Matcher names accepted by ByName
const (
	NameSubstring = "substring"
	NameExact     = "exact"
)

// ByName returns the matcher registered under name. An empty name selects Default.
func ByName(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameSubstring:
		return SubstringMatcher{}, nil
	case NameExact:
		return ExactMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q", name)
	}
}
