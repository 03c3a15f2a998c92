package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCareerProgression_JSONKeepsOrder(t *testing.T) {
	input := `{"senior": ["go", "leadership"], "junior": ["go"], "mid": []}`

	var cp CareerProgression
	require.NoError(t, json.Unmarshal([]byte(input), &cp))
	require.Len(t, cp, 3)
	assert.Equal(t, "senior", cp[0].Name)
	assert.Equal(t, "junior", cp[1].Name)
	assert.Equal(t, "mid", cp[2].Name)

	out, err := json.Marshal(cp)
	require.NoError(t, err)
	assert.Equal(t, `{"senior":["go","leadership"],"junior":["go"],"mid":[]}`, string(out))
}

func TestCareerProgression_RejectsNonObject(t *testing.T) {
	var cp CareerProgression
	assert.Error(t, json.Unmarshal([]byte(`["junior"]`), &cp))
}

func TestCareerProgression_YAMLKeepsOrder(t *testing.T) {
	cp := CareerProgression{
		{Name: "lead", Skills: []string{"strategy"}},
		{Name: "junior", Skills: nil},
	}

	out, err := yaml.Marshal(cp)
	require.NoError(t, err)
	assert.Contains(t, string(out), "lead:")
	assert.Less(t, strings.Index(string(out), "lead:"), strings.Index(string(out), "junior:"))

	var decoded CareerProgression
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "lead", decoded[0].Name)
	assert.Equal(t, "junior", decoded[1].Name)
	assert.Empty(t, decoded[1].Skills)
}

func TestCareerProgression_Level(t *testing.T) {
	cp := CareerProgression{{Name: "junior", Skills: []string{"go"}}}

	level, ok := cp.Level("junior")
	require.True(t, ok)
	assert.Equal(t, []string{"go"}, level.Skills)

	_, ok = cp.Level("principal")
	assert.False(t, ok)
}

func TestPositionProfile_Skills(t *testing.T) {
	p := PositionProfile{
		RequiredSkills: []string{"a"},
		AdvancedSkills: []string{"b"},
		ToolSkills:     []string{"c"},
		BusinessSkills: []string{"d"},
	}

	assert.Equal(t, []string{"a"}, p.Skills(TierRequired))
	assert.Equal(t, []string{"b"}, p.Skills(TierAdvanced))
	assert.Equal(t, []string{"c"}, p.Skills(TierTool))
	assert.Equal(t, []string{"d"}, p.Skills(TierBusiness))
	assert.Nil(t, p.Skills(Tier(9)))
	assert.Equal(t, "tier(9)", Tier(9).String())
}
