package catalog

import "github.com/jonathan/skillgap-advisor/internal/types"

// DefaultPositions returns the built-in position catalog written on first bootstrap.
func DefaultPositions() Document {
	return Document{
		"data_science": {
			RequiredSkills: []string{"python", "sql", "statistics"},
			AdvancedSkills: []string{"machine learning", "deep learning", "nlp"},
			ToolSkills:     []string{"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy"},
			BusinessSkills: []string{"data storytelling", "business acumen", "problem solving"},
			CareerProgression: types.CareerProgression{
				{Name: "junior", Skills: []string{"python", "sql", "statistics", "excel"}},
				{Name: "mid", Skills: []string{"python", "sql", "machine learning", "data visualization"}},
				{Name: "senior", Skills: []string{"python", "sql", "machine learning", "deep learning", "mlops", "leadership"}},
				{Name: "lead", Skills: []string{"python", "sql", "machine learning", "deep learning", "mlops", "leadership", "strategic thinking"}},
			},
		},
		"web_development": {
			RequiredSkills: []string{"html", "css", "javascript"},
			AdvancedSkills: []string{"react", "nodejs", "typescript", "graphql"},
			ToolSkills:     []string{"webpack", "docker", "git", "ci/cd"},
			BusinessSkills: []string{"ux design", "communication", "problem solving"},
			CareerProgression: types.CareerProgression{
				{Name: "junior", Skills: []string{"html", "css", "javascript", "git"}},
				{Name: "mid", Skills: []string{"html", "css", "javascript", "react", "nodejs", "typescript"}},
				{Name: "senior", Skills: []string{"html", "css", "javascript", "react", "nodejs", "typescript", "architecture", "performance"}},
				{Name: "lead", Skills: []string{"html", "css", "javascript", "react", "nodejs", "typescript", "architecture", "leadership", "mentoring"}},
			},
		},
		"devops": {
			RequiredSkills: []string{"linux", "docker", "cloud"},
			AdvancedSkills: []string{"kubernetes", "terraform", "ansible", "ci/cd"},
			ToolSkills:     []string{"jenkins", "gitlab", "monitoring", "security"},
			BusinessSkills: []string{"cost optimization", "scalability", "reliability"},
			CareerProgression: types.CareerProgression{
				{Name: "junior", Skills: []string{"linux", "docker", "git"}},
				{Name: "mid", Skills: []string{"linux", "docker", "kubernetes", "aws", "ci/cd"}},
				{Name: "senior", Skills: []string{"linux", "docker", "kubernetes", "terraform", "ansible", "security", "performance"}},
				{Name: "lead", Skills: []string{"linux", "docker", "kubernetes", "terraform", "ansible", "security", "architecture", "leadership"}},
			},
		},
		"mobile_development": {
			RequiredSkills: []string{"mobile_development", "programming"},
			AdvancedSkills: []string{"react native", "flutter", "swift", "kotlin"},
			ToolSkills:     []string{"xcode", "android studio", "firebase"},
			BusinessSkills: []string{"app store optimization", "ui/ux", "testing"},
			CareerProgression: types.CareerProgression{
				{Name: "junior", Skills: []string{"javascript", "react native", "mobile_development"}},
				{Name: "mid", Skills: []string{"javascript", "react native", "flutter", "native_development"}},
				{Name: "senior", Skills: []string{"javascript", "react native", "flutter", "swift", "kotlin", "architecture", "performance"}},
				{Name: "lead", Skills: []string{"javascript", "react native", "flutter", "swift", "kotlin", "architecture", "leadership", "strategy"}},
			},
		},
		"ui_ux_design": {
			RequiredSkills: []string{"design", "ui/ux"},
			AdvancedSkills: []string{"figma", "sketch", "adobe creative suite", "prototyping"},
			ToolSkills:     []string{"figma", "sketch", "adobe xd", "invision"},
			BusinessSkills: []string{"user research", "design thinking", "communication"},
			CareerProgression: types.CareerProgression{
				{Name: "junior", Skills: []string{"design", "figma", "ui/ux"}},
				{Name: "mid", Skills: []string{"design", "figma", "sketch", "prototyping", "user research"}},
				{Name: "senior", Skills: []string{"design", "figma", "sketch", "prototyping", "user research", "design systems", "leadership"}},
				{Name: "lead", Skills: []string{"design", "figma", "sketch", "prototyping", "user research", "design systems", "strategy", "mentoring"}},
			},
		},
	}
}
