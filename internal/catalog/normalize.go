package catalog

import "strings"

// positionAliases maps common job-title variants to canonical catalog keys
var positionAliases = map[string]string{
	"data_scientist":      "data_science",
	"web_developer":       "web_development",
	"frontend_developer":  "web_development",
	"backend_developer":   "web_development",
	"fullstack_developer": "web_development",
	"devops_engineer":     "devops",
	"mobile_developer":    "mobile_development",
	"ui_designer":         "ui_ux_design",
	"ux_designer":         "ui_ux_design",
	"ui_ux_designer":      "ui_ux_design",
}

// NormalizePosition lower-cases a position name, replaces spaces and hyphens
// with underscores and maps known title variants to their catalog key.
// Unknown names pass through.
func NormalizePosition(position string) string {
	normalized := strings.ToLower(position)
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	if canonical, ok := positionAliases[normalized]; ok {
		return canonical
	}
	return normalized
}
