// Package service combines the analysis engine with caching, storage and
// metrics. It is shared by the HTTP server and the queue worker.
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillgap-advisor/internal/advisor"
	"github.com/jonathan/skillgap-advisor/internal/cache"
	"github.com/jonathan/skillgap-advisor/internal/catalog"
	"github.com/jonathan/skillgap-advisor/internal/db"
	"github.com/jonathan/skillgap-advisor/internal/matching"
	"github.com/jonathan/skillgap-advisor/internal/metrics"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

// ErrStorageDisabled is returned by storage operations when no store is configured
var ErrStorageDisabled = errors.New("analysis storage is not configured")

// Store persists analyses. *db.DB implements it.
type Store interface {
	SaveReport(ctx context.Context, report *types.Report, requestedBy *uuid.UUID) (uuid.UUID, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (*db.Analysis, error)
	ListAnalyses(ctx context.Context, filters db.AnalysisFilters) ([]db.AnalysisSummary, error)
	DeleteAnalysis(ctx context.Context, id uuid.UUID) error
}

// Cache stores JSON values by key. *cache.Redis implements it.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

// Deps are the collaborators of a Service. Only Engine is required.
type Deps struct {
	Engine      *advisor.Engine
	MatcherName string
	Store       Store
	Cache       Cache
	Metrics     *metrics.Manager
}

// Service runs analyses for the outer surfaces
type Service struct {
	engine      *advisor.Engine
	matcherName string
	store       Store
	cache       Cache
	metrics     *metrics.Manager
}

// New creates a Service
func New(deps Deps) *Service {
	name := deps.MatcherName
	if name == "" {
		name = matching.NameSubstring
	}
	return &Service{
		engine:      deps.Engine,
		matcherName: name,
		store:       deps.Store,
		cache:       deps.Cache,
		metrics:     deps.Metrics,
	}
}

// Catalog returns the catalog analyses run against
func (s *Service) Catalog() *catalog.Catalog {
	return s.engine.Catalog()
}

// StorageEnabled reports whether analyses can be stored
func (s *Service) StorageEnabled() bool {
	return s.store != nil
}

// Analyze produces a report, serving it from the cache when an identical
// request was analyzed before. Failed reports are never cached.
func (s *Service) Analyze(ctx context.Context, req *types.AnalyzeRequest) *types.Report {
	profile := &req.CandidateProfile
	position := catalog.NormalizePosition(req.TargetPosition)
	key := cache.ReportKey(s.Catalog().Fingerprint(), position, matching.FromProfile(profile).Skills(), profile.YearsExperience, profile.EducationLevel, s.matcherName)

	if s.cache != nil {
		var cached types.Report
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			log.Printf("[CACHE] Lookup failed for %s: %v", position, err)
		}
		s.metrics.RecordCacheLookup(hit)
		if hit {
			return &cached
		}
	}

	start := time.Now()
	report := s.engine.Analyze(profile, req.TargetPosition)
	s.metrics.RecordAnalysis(s.positionLabel(report.TargetPosition), report.Failed(), time.Since(start))

	if s.cache != nil && !report.Failed() {
		if err := s.cache.SetJSON(ctx, key, report); err != nil {
			log.Printf("[CACHE] Failed to store report for %s: %v", position, err)
		}
	}
	return report
}

// positionLabel bounds the metric label to catalog keys
func (s *Service) positionLabel(position string) string {
	if _, ok := s.Catalog().Lookup(position); ok {
		return position
	}
	return metrics.UnknownPosition
}

// AnalyzeAndStore analyzes and persists the report, returning its ID.
// Failed reports are stored too so callers can retrieve the error.
func (s *Service) AnalyzeAndStore(ctx context.Context, req *types.AnalyzeRequest, requestedBy *uuid.UUID) (uuid.UUID, *types.Report, error) {
	if s.store == nil {
		return uuid.Nil, nil, ErrStorageDisabled
	}
	report := s.Analyze(ctx, req)
	id, err := s.store.SaveReport(ctx, report, requestedBy)
	if err != nil {
		return uuid.Nil, report, err
	}
	return id, report, nil
}

// Fit ranks every catalog position for the candidate
func (s *Service) Fit(ctx context.Context, profile *types.CandidateProfile) ([]types.PositionFit, error) {
	key := cache.FitKey(s.Catalog().Fingerprint(), matching.FromProfile(profile).Skills(), s.matcherName)

	if s.cache != nil {
		var cached []types.PositionFit
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			log.Printf("[CACHE] Fit lookup failed: %v", err)
		}
		s.metrics.RecordCacheLookup(hit)
		if hit {
			return cached, nil
		}
	}

	fits, err := s.engine.AnalyzeAll(ctx, profile)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, fits); err != nil {
			log.Printf("[CACHE] Failed to store fit ranking: %v", err)
		}
	}
	return fits, nil
}

// GetAnalysis returns a stored analysis, or nil when it does not exist
func (s *Service) GetAnalysis(ctx context.Context, id uuid.UUID) (*db.Analysis, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	return s.store.GetAnalysis(ctx, id)
}

// ListAnalyses returns stored analyses, newest first
func (s *Service) ListAnalyses(ctx context.Context, filters db.AnalysisFilters) ([]db.AnalysisSummary, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	return s.store.ListAnalyses(ctx, filters)
}

// DeleteAnalysis removes a stored analysis
func (s *Service) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	if s.store == nil {
		return ErrStorageDisabled
	}
	return s.store.DeleteAnalysis(ctx, id)
}
