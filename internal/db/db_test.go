package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap-advisor/internal/types"
)

func TestNewAnalysis_FullReport(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	report := &types.Report{
		TargetPosition:    "data_science",
		AnalysisTimestamp: ts,
		OverallScore: &types.ScoreResult{
			OverallScore:   16.7,
			ReadinessLevel: "Significant Development Required",
		},
	}
	id := uuid.New()
	user := uuid.New()

	a := NewAnalysis(id, report, &user)

	assert.Equal(t, id, a.ID)
	assert.Equal(t, "data_science", a.TargetPosition)
	require.NotNil(t, a.OverallScore)
	assert.InDelta(t, 16.7, *a.OverallScore, 1e-9)
	assert.Equal(t, "Significant Development Required", a.ReadinessLevel)
	assert.Equal(t, &user, a.RequestedBy)
	assert.Equal(t, ts, a.CreatedAt)
	assert.Same(t, report, a.Report)
}

func TestNewAnalysis_ErrorReport(t *testing.T) {
	report := &types.Report{
		TargetPosition: "quantum_barista",
		Error:          "No requirements found for position: quantum_barista",
	}

	a := NewAnalysis(uuid.New(), report, nil)

	assert.Nil(t, a.OverallScore)
	assert.Empty(t, a.ReadinessLevel)
	assert.Equal(t, report.Error, a.Error)
	assert.Nil(t, a.RequestedBy)
}

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name      string
		filters   AnalysisFilters
		contains  []string
		wantArgs  int
		wantLimit int
	}{
		{
			name:      "no filters uses default limit",
			filters:   AnalysisFilters{},
			contains:  []string{"ORDER BY created_at DESC LIMIT $1"},
			wantArgs:  1,
			wantLimit: DefaultListLimit,
		},
		{
			name:      "position filter",
			filters:   AnalysisFilters{TargetPosition: "devops", Limit: 5},
			contains:  []string{"target_position = $1", "LIMIT $2"},
			wantArgs:  2,
			wantLimit: 5,
		},
		{
			name: "all filters",
			filters: AnalysisFilters{
				TargetPosition: "devops",
				ReadinessLevel: "Highly Ready",
				RequestedBy:    uuid.New(),
				Limit:          10,
			},
			contains:  []string{"target_position = $1", "readiness_level = $2", "requested_by = $3", "LIMIT $4"},
			wantArgs:  4,
			wantLimit: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListQuery(tt.filters)
			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
			require.Len(t, args, tt.wantArgs)
			assert.Equal(t, tt.wantLimit, args[len(args)-1])
		})
	}
}
