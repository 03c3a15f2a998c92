package gap

import (
	"testing"

	"github.com/jonathan/skillgap-advisor/internal/catalog"
	"github.com/jonathan/skillgap-advisor/internal/matching"
	"github.com/jonathan/skillgap-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, position string) *types.PositionProfile {
	t.Helper()
	profile, ok := catalog.Default().Lookup(position)
	require.True(t, ok, "position %q missing from default catalog", position)
	return &profile
}

func TestAnalyze_DataScienceMissingStatistics(t *testing.T) {
	a := NewAnalyzer(nil)
	result := a.Analyze(matching.NewSkillSet("python", "sql"), lookup(t, "data_science"), "data_science")

	assert.Equal(t, []string{"statistics"}, result.MissingRequiredSkills)
	assert.Equal(t, []string{"python", "sql"}, result.ExistingRequiredSkills)
	assert.Equal(t, 66.7, result.CompletionPercentages.Required)
	assert.Equal(t, result.MissingRequiredSkills, result.CriticalGaps)
}

func TestAnalyze_WebDevelopmentMissingJavascript(t *testing.T) {
	a := NewAnalyzer(nil)
	set := matching.NewSkillSet(types.SplitSkills("python, html, css, git")...)
	result := a.Analyze(set, lookup(t, "web_development"), "web_development")

	assert.Equal(t, []string{"javascript"}, result.MissingRequiredSkills)
	assert.InDelta(t, 66.7, result.CompletionPercentages.Required, 0.05)
	assert.Contains(t, result.ExistingToolSkills, "git")
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	a := NewAnalyzer(nil)
	result := a.Analyze(matching.NewSkillSet("Python", "SQL", "Statistics"), lookup(t, "data_science"), "data_science")

	assert.Empty(t, result.MissingRequiredSkills)
	assert.Equal(t, 100.0, result.CompletionPercentages.Required)
}

func TestAnalyze_CatalogSkillsAreLowerCased(t *testing.T) {
	profile := &types.PositionProfile{RequiredSkills: []string{"Python", "Rust"}}
	result := NewAnalyzer(nil).Analyze(matching.NewSkillSet("python"), profile, "custom")

	assert.Equal(t, []string{"python"}, result.ExistingRequiredSkills)
	assert.Equal(t, []string{"rust"}, result.MissingRequiredSkills)
}

func TestAnalyze_EmptyTiers(t *testing.T) {
	profile := &types.PositionProfile{}
	result := NewAnalyzer(nil).Analyze(matching.NewSkillSet("python"), profile, "empty")

	assert.Equal(t, 100.0, result.CompletionPercentages.Required)
	assert.Equal(t, 0.0, result.CompletionPercentages.Advanced)
	assert.Equal(t, 0.0, result.CompletionPercentages.Tools)
	assert.NotNil(t, result.MissingRequiredSkills)
	assert.NotNil(t, result.ExistingToolSkills)
	assert.Equal(t, BeginnerLevel, result.CareerLevel)
}

func TestAnalyze_EmptyAdvancedTierIsZeroEvenWhenEverythingElseMatches(t *testing.T) {
	profile := &types.PositionProfile{
		RequiredSkills: []string{"python"},
		ToolSkills:     []string{"git"},
	}
	result := NewAnalyzer(nil).Analyze(matching.NewSkillSet("python", "git"), profile, "custom")

	assert.Equal(t, 100.0, result.CompletionPercentages.Required)
	assert.Equal(t, 0.0, result.CompletionPercentages.Advanced)
	assert.Equal(t, 100.0, result.CompletionPercentages.Tools)
}

func TestAnalyze_ZeroSkills(t *testing.T) {
	cat := catalog.Default()
	a := NewAnalyzer(nil)

	for _, position := range cat.Positions() {
		t.Run(position, func(t *testing.T) {
			result := a.Analyze(matching.SkillSet{}, lookup(t, position), position)

			assert.Equal(t, 0.0, result.CompletionPercentages.Required)
			assert.Equal(t, 0.0, result.CompletionPercentages.Advanced)
			assert.Equal(t, 0.0, result.CompletionPercentages.Tools)
			assert.Empty(t, result.ExistingRequiredSkills)
			assert.Equal(t, BeginnerLevel, result.CareerLevel)
		})
	}
}

func TestAnalyze_ExactMatcherIsStricter(t *testing.T) {
	profile := &types.PositionProfile{RequiredSkills: []string{"java"}}
	set := matching.NewSkillSet("javascript")

	loose := NewAnalyzer(matching.SubstringMatcher{}).Analyze(set, profile, "custom")
	strict := NewAnalyzer(matching.ExactMatcher{}).Analyze(set, profile, "custom")

	assert.Empty(t, loose.MissingRequiredSkills)
	assert.Equal(t, []string{"java"}, strict.MissingRequiredSkills)
}

func TestAnalyze_NilAnalyzerUsesDefaultMatcher(t *testing.T) {
	var a *Analyzer
	result := a.Analyze(matching.NewSkillSet("python"), &types.PositionProfile{RequiredSkills: []string{"python"}}, "custom")
	assert.Equal(t, 100.0, result.CompletionPercentages.Required)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 66.7, Round1(200.0/3))
	assert.Equal(t, 33.3, Round1(100.0/3))
	assert.Equal(t, 100.0, Round1(100))
	assert.Equal(t, 0.0, Round1(0))
	assert.Equal(t, 62.5, Round1(500.0/8))
	assert.Equal(t, 6.2, Round1(100.0/16), "exact halves round to even")
	assert.Equal(t, 31.2, Round1(31.25))
	assert.Equal(t, 68.8, Round1(68.75))
}
