package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap-advisor/internal/advisor"
	"github.com/jonathan/skillgap-advisor/internal/catalog"
	"github.com/jonathan/skillgap-advisor/internal/db"
	"github.com/jonathan/skillgap-advisor/internal/metrics"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() *advisor.Engine {
	return advisor.NewEngine(catalog.Default(), advisor.WithClock(func() time.Time { return fixedTime }))
}

func dataScienceRequest() *types.AnalyzeRequest {
	return &types.AnalyzeRequest{
		TargetPosition: "data_scientist",
		CandidateProfile: types.CandidateProfile{
			Skills: types.SkillList{"python", "html", "css", "git"},
		},
	}
}

func TestAnalyze_CachesSuccessfulReports(t *testing.T) {
	c := newMemoryCache()
	m := metrics.New()
	svc := New(Deps{Engine: newTestEngine(), Cache: c, Metrics: m})

	first := svc.Analyze(context.Background(), dataScienceRequest())
	require.False(t, first.Failed())
	assert.Equal(t, 1, c.sets)

	second := svc.Analyze(context.Background(), dataScienceRequest())
	assert.Equal(t, 1, c.sets, "second analysis should be served from cache")
	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.SkillGapAnalysis, second.SkillGapAnalysis)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "skillgap_cache_hits_total 1")
	assert.Contains(t, rec.Body.String(), "skillgap_cache_misses_total 1")
}

func TestAnalyze_SkillOrderSharesCacheEntry(t *testing.T) {
	c := newMemoryCache()
	svc := New(Deps{Engine: newTestEngine(), Cache: c})

	a := dataScienceRequest()
	b := dataScienceRequest()
	b.CandidateProfile.Skills = types.SkillList{"Git", "css", "HTML", "python"}

	svc.Analyze(context.Background(), a)
	svc.Analyze(context.Background(), b)
	assert.Len(t, c.entries, 1)
}

func TestAnalyze_FailedReportsAreNotCached(t *testing.T) {
	c := newMemoryCache()
	svc := New(Deps{Engine: newTestEngine(), Cache: c})

	report := svc.Analyze(context.Background(), &types.AnalyzeRequest{TargetPosition: "quantum_barista"})
	assert.True(t, report.Failed())
	assert.Empty(t, c.entries)
}

func TestAnalyze_EducationSpellingIsNotShared(t *testing.T) {
	c := newMemoryCache()
	svc := New(Deps{Engine: newTestEngine(), Cache: c})

	req := dataScienceRequest()
	req.CandidateProfile.EducationLevel = "Bachelor"
	first := svc.Analyze(context.Background(), req)
	require.NotNil(t, first.CandidateProfile)
	assert.Equal(t, "Bachelor", first.CandidateProfile.EducationLevel)

	req = dataScienceRequest()
	req.CandidateProfile.EducationLevel = "bachelor"
	second := svc.Analyze(context.Background(), req)
	require.NotNil(t, second.CandidateProfile)
	assert.Equal(t, "bachelor", second.CandidateProfile.EducationLevel)
	assert.Len(t, c.entries, 2)
}

func TestAnalyze_CatalogChangeMissesCache(t *testing.T) {
	c := newMemoryCache()
	before := New(Deps{Engine: newTestEngine(), Cache: c})
	first := before.Analyze(context.Background(), dataScienceRequest())
	require.NotNil(t, first.OverallScore)

	doc := catalog.DefaultPositions()
	ds := doc["data_science"]
	ds.RequiredSkills = []string{"python"}
	doc["data_science"] = ds
	edited, err := catalog.New(doc, catalog.DefaultResources())
	require.NoError(t, err)

	after := New(Deps{Engine: advisor.NewEngine(edited, advisor.WithClock(func() time.Time { return fixedTime })), Cache: c})
	second := after.Analyze(context.Background(), dataScienceRequest())
	require.NotNil(t, second.OverallScore)

	assert.Equal(t, 2, c.sets)
	assert.Equal(t, 100.0, second.SkillGapAnalysis.CompletionPercentages.Required)
	assert.NotEqual(t, first.OverallScore, second.OverallScore)
}

func TestAnalyze_UnknownPositionsShareOneMetricSeries(t *testing.T) {
	m := metrics.New()
	svc := New(Deps{Engine: newTestEngine(), Metrics: m})

	for i := 0; i < 50; i++ {
		req := dataScienceRequest()
		req.TargetPosition = fmt.Sprintf("made_up_%d", i)
		require.True(t, svc.Analyze(context.Background(), req).Failed())
	}
	series, err := testutil.GatherAndCount(m.Registry(), "skillgap_analyses_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series)

	svc.Analyze(context.Background(), dataScienceRequest())
	series, err = testutil.GatherAndCount(m.Registry(), "skillgap_analyses_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `skillgap_analyses_total{outcome="error",position="unknown"} 50`)
	assert.Contains(t, rec.Body.String(), `skillgap_analyses_total{outcome="success",position="data_science"} 1`)
}

func TestAnalyze_WithoutCache(t *testing.T) {
	svc := New(Deps{Engine: newTestEngine()})
	report := svc.Analyze(context.Background(), dataScienceRequest())
	require.NotNil(t, report.OverallScore)
	assert.Equal(t, 16.7, report.OverallScore.OverallScore)
}

func TestAnalyzeAndStore(t *testing.T) {
	store := newMemoryStore()
	svc := New(Deps{Engine: newTestEngine(), Store: store})
	user := uuid.New()

	id, report, err := svc.AnalyzeAndStore(context.Background(), dataScienceRequest(), &user)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	stored, err := svc.GetAnalysis(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, report, stored.Report)
	assert.Equal(t, &user, stored.RequestedBy)

	list, err := svc.ListAnalyses(context.Background(), db.AnalysisFilters{TargetPosition: "data_science"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteAnalysis(context.Background(), id))
	err = svc.DeleteAnalysis(context.Background(), id)
	assert.True(t, errors.Is(err, db.ErrAnalysisNotFound))
}

func TestStorageDisabled(t *testing.T) {
	svc := New(Deps{Engine: newTestEngine()})
	ctx := context.Background()

	assert.False(t, svc.StorageEnabled())

	_, _, err := svc.AnalyzeAndStore(ctx, dataScienceRequest(), nil)
	assert.ErrorIs(t, err, ErrStorageDisabled)
	_, err = svc.GetAnalysis(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrStorageDisabled)
	_, err = svc.ListAnalyses(ctx, db.AnalysisFilters{})
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, svc.DeleteAnalysis(ctx, uuid.New()), ErrStorageDisabled)
}

func TestFit_UsesCache(t *testing.T) {
	c := newMemoryCache()
	svc := New(Deps{Engine: newTestEngine(), Cache: c})
	profile := &types.CandidateProfile{AllSkills: []string{"html", "css", "javascript"}}

	first, err := svc.Fit(context.Background(), profile)
	require.NoError(t, err)
	require.Len(t, first, 5)
	assert.Equal(t, "web_development", first[0].Position)

	second, err := svc.Fit(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.sets)
}
