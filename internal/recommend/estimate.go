package recommend

import "github.com/jonathan/skillgap-advisor/internal/types"

// DefaultLearningWeeks is used for skills absent from the estimate tables
const DefaultLearningWeeks = 4

var learningWeeks = map[types.Tier]map[string]int{
	types.TierRequired: {
		"python": 6, "sql": 4, "html": 2, "css": 2, "javascript": 6,
		"linux": 8, "docker": 4, "design": 6, "programming": 8,
	},
	types.TierAdvanced: {
		"machine_learning": 12, "deep_learning": 16, "kubernetes": 8,
		"tensorflow": 10, "pytorch": 10, "react": 8, "nodejs": 8,
	},
	types.TierTool: {
		"git": 2, "aws": 10, "azure": 10, "terraform": 6, "jenkins": 4,
		"figma": 4, "sketch": 4, "webpack": 3, "typescript": 4,
	},
}

// Minimum estimates for skills known to take long regardless of tier
var complexityFloor = map[string]int{
	"machine_learning": 12,
	"deep_learning":    12,
	"kubernetes":       12,
	"python":           6,
	"javascript":       6,
	"react":            6,
}

// EstimateLearningTime returns the estimated learning time of a skill for the
// given tier. Lookups are by exact skill name.
func EstimateLearningTime(skill string, tier types.Tier) int {
	weeks, ok := learningWeeks[tier][skill]
	if !ok {
		weeks = DefaultLearningWeeks
	}
	if floor, ok := complexityFloor[skill]; ok && weeks < floor {
		return floor
	}
	return weeks
}
