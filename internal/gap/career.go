package gap

import (
	"github.com/jonathan/skillgap-advisor/internal/matching"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

// BeginnerLevel is reported when no career level reaches the threshold
const BeginnerLevel = "beginner"

// A level qualifies when at least levelNumerator/levelDenominator (70%) of
// its skills are matched. Compared in integers so 7 of 10 is exactly enough.
const (
	levelNumerator   = 7
	levelDenominator = 10
)

// CareerLevel walks the progression in catalog order and returns the first level
// the candidate qualifies for. The first qualifying level wins even when a later
// level also qualifies. Levels without skills are skipped.
func CareerLevel(m matching.Matcher, progression types.CareerProgression, skills matching.SkillSet) string {
	if m == nil {
		m = matching.Default
	}
	for _, level := range progression {
		if len(level.Skills) == 0 {
			continue
		}
		matched := matching.CountPresent(m, level.Skills, skills)
		if matched*levelDenominator >= len(level.Skills)*levelNumerator {
			return level.Name
		}
	}
	return BeginnerLevel
}
