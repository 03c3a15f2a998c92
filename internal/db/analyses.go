package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/skillgap-advisor/internal/types"
)

// SaveAnalysis stores an analysis, replacing any previous analysis with the same ID
func (db *DB) SaveAnalysis(ctx context.Context, a *Analysis) error {
	reportJSON, err := json.Marshal(a.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO skill_gap_analyses (id, target_position, overall_score, readiness_level, error, requested_by, report, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, NOW()))
		 ON CONFLICT (id) DO UPDATE SET
			target_position = $2, overall_score = $3, readiness_level = $4,
			error = $5, requested_by = $6, report = $7`,
		a.ID, a.TargetPosition, a.OverallScore, a.ReadinessLevel, a.Error, a.RequestedBy, reportJSON, nullableTime(a),
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", a.ID, err)
	}
	return nil
}

// SaveReport stores a report under a new ID and returns it
func (db *DB) SaveReport(ctx context.Context, report *types.Report, requestedBy *uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	if err := db.SaveAnalysis(ctx, NewAnalysis(id, report, requestedBy)); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// GetAnalysis retrieves an analysis by ID. Returns nil, nil when it does not exist.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var a Analysis
	var reportJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, target_position, overall_score, readiness_level, error, requested_by, report, created_at
		 FROM skill_gap_analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.TargetPosition, &a.OverallScore, &a.ReadinessLevel, &a.Error, &a.RequestedBy, &reportJSON, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var report types.Report
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	a.Report = &report

	return &a, nil
}

// ListAnalyses retrieves recent analyses with optional filters, newest first
func (db *DB) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]AnalysisSummary, error) {
	query, args := buildListQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	analyses := []AnalysisSummary{}
	for rows.Next() {
		var s AnalysisSummary
		var errMsg string
		if err := rows.Scan(&s.ID, &s.TargetPosition, &s.OverallScore, &s.ReadinessLevel, &errMsg, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		s.Failed = errMsg != ""
		analyses = append(analyses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

func buildListQuery(filters AnalysisFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultListLimit
	}

	query := `SELECT id, target_position, overall_score, readiness_level, error, created_at
		FROM skill_gap_analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.TargetPosition != "" {
		query += fmt.Sprintf(" AND target_position = $%d", argNum)
		args = append(args, filters.TargetPosition)
		argNum++
	}
	if filters.ReadinessLevel != "" {
		query += fmt.Sprintf(" AND readiness_level = $%d", argNum)
		args = append(args, filters.ReadinessLevel)
		argNum++
	}
	if filters.RequestedBy != uuid.Nil {
		query += fmt.Sprintf(" AND requested_by = $%d", argNum)
		args = append(args, filters.RequestedBy)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	return query, args
}

// DeleteAnalysis deletes an analysis. Returns ErrAnalysisNotFound if nothing was deleted.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM skill_gap_analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrAnalysisNotFound, id)
	}
	return nil
}

func nullableTime(a *Analysis) any {
	if a.CreatedAt.IsZero() {
		return nil
	}
	return a.CreatedAt
}
