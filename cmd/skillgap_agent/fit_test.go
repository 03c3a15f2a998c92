package main

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/skillgap-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitCommand_JSON(t *testing.T) {
	output, err := runCLI(t, "fit", "--profile", testProfilePath, "--catalog", tempCatalog(t), "--json")
	require.NoError(t, err)

	var result struct {
		Positions []types.PositionFit `json:"positions"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	require.Len(t, result.Positions, 5)

	for i := 1; i < len(result.Positions); i++ {
		prev, cur := result.Positions[i-1], result.Positions[i]
		assert.GreaterOrEqual(t, prev.OverallScore, cur.OverallScore)
		if prev.OverallScore == cur.OverallScore {
			assert.Less(t, prev.Position, cur.Position)
		}
	}
	assert.Equal(t, "web_development", result.Positions[0].Position)
}

func TestFitCommand_Table(t *testing.T) {
	output, err := runCLI(t, "fit", "--profile", testProfilePath, "--catalog", tempCatalog(t))
	require.NoError(t, err)

	assert.Contains(t, output, "POSITION FIT")
	assert.Contains(t, output, "#1  Web Development")
}
