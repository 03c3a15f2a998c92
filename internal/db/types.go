package db

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillgap-advisor/internal/types"
)

// ErrAnalysisNotFound is returned when deleting an analysis that does not exist
var ErrAnalysisNotFound = errors.New("analysis not found")

// DefaultListLimit caps ListAnalyses when no limit is given
const DefaultListLimit = 50

// Analysis represents a stored skill-gap analysis
type Analysis struct {
	ID             uuid.UUID     `json:"id"`
	TargetPosition string        `json:"target_position"`
	OverallScore   *float64      `json:"overall_score,omitempty"`
	ReadinessLevel string        `json:"readiness_level,omitempty"`
	Error          string        `json:"error,omitempty"`
	RequestedBy    *uuid.UUID    `json:"requested_by,omitempty"`
	Report         *types.Report `json:"report"`
	CreatedAt      time.Time     `json:"created_at"`
}

// AnalysisSummary is a lightweight view of an analysis for listing
type AnalysisSummary struct {
	ID             uuid.UUID `json:"id"`
	TargetPosition string    `json:"target_position"`
	OverallScore   *float64  `json:"overall_score,omitempty"`
	ReadinessLevel string    `json:"readiness_level,omitempty"`
	Failed         bool      `json:"failed"`
	CreatedAt      time.Time `json:"created_at"`
}

// AnalysisFilters holds optional filters for listing analyses
type AnalysisFilters struct {
	TargetPosition string
	ReadinessLevel string
	RequestedBy    uuid.UUID
	Limit          int
}

// NewAnalysis derives the indexed columns of a report
func NewAnalysis(id uuid.UUID, report *types.Report, requestedBy *uuid.UUID) *Analysis {
	a := &Analysis{
		ID:             id,
		TargetPosition: report.TargetPosition,
		Error:          report.Error,
		RequestedBy:    requestedBy,
		Report:         report,
		CreatedAt:      report.AnalysisTimestamp,
	}
	if report.OverallScore != nil {
		score := report.OverallScore.OverallScore
		a.OverallScore = &score
		a.ReadinessLevel = report.OverallScore.ReadinessLevel
	}
	return a
}
