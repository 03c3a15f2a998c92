// Package advisor runs the skill-gap analysis pipeline and assembles reports.
package advisor

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillgap-advisor/internal/catalog"
	"github.com/jonathan/skillgap-advisor/internal/gap"
	"github.com/jonathan/skillgap-advisor/internal/matching"
	"github.com/jonathan/skillgap-advisor/internal/planning"
	"github.com/jonathan/skillgap-advisor/internal/recommend"
	"github.com/jonathan/skillgap-advisor/internal/scoring"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

// UnknownEducation is reported when the candidate profile has no education level
const UnknownEducation = "unknown"

// DefaultFitConcurrency bounds the number of positions analyzed at once by AnalyzeAll
const DefaultFitConcurrency = 4

// Engine analyzes candidates against an immutable position catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog  *catalog.Catalog
	analyzer *gap.Analyzer
	builder  *recommend.Builder
	now      func() time.Time
	verbose  bool

	fitConcurrency int
}

// Option configures an Engine
type Option func(*Engine)

// WithMatcher replaces the default substring matcher
func WithMatcher(m matching.Matcher) Option {
	return func(e *Engine) {
		e.analyzer = gap.NewAnalyzer(m)
	}
}

// WithClock sets the source of analysis timestamps
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithVerbose enables per-analysis logging
func WithVerbose(verbose bool) Option {
	return func(e *Engine) {
		e.verbose = verbose
	}
}

// WithFitConcurrency bounds how many positions AnalyzeAll analyzes at once
func WithFitConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.fitConcurrency = n
		}
	}
}

// NewEngine creates an Engine over the given catalog
func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:  cat,
		analyzer: gap.NewAnalyzer(nil),
		now:      time.Now,

		fitConcurrency: DefaultFitConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.builder = recommend.NewBuilder(e.analyzer, cat)
	return e
}

// Catalog returns the catalog the engine analyzes against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Analyze produces the report of a candidate against a target position.
// Failures are returned as reports carrying an error message, never as panics.
func (e *Engine) Analyze(profile *types.CandidateProfile, targetPosition string) *types.Report {
	report, _ := e.Run(profile, targetPosition)
	return report
}

// Run is Analyze that also returns an *AnalysisError when the report failed
func (e *Engine) Run(profile *types.CandidateProfile, targetPosition string) (report *types.Report, err error) {
	position := catalog.NormalizePosition(targetPosition)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ADVISOR] Analysis of %q panicked: %v\n%s", position, r, debug.Stack())
			err = &AnalysisError{Position: position, Message: fmt.Sprint(r)}
			report = e.errorReport(position, fmt.Sprint(r))
		}
	}()

	requirements, ok := e.catalog.Lookup(position)
	if !ok {
		msg := fmt.Sprintf("No requirements found for position: %s", position)
		return e.errorReport(position, msg), &AnalysisError{Position: position, Message: msg, Cause: ErrUnknownPosition}
	}

	if profile == nil {
		profile = &types.CandidateProfile{}
	}
	skills := matching.FromProfile(profile)

	analysis := e.analyzer.Analyze(skills, &requirements, position)
	recs := e.builder.Build(skills, &requirements, position)
	plan := planning.Build(recs)
	score := scoring.Calculate(analysis)

	if e.verbose {
		log.Printf("[ADVISOR] %s: score %.1f (%s), %d critical gaps", position, score.OverallScore, score.ReadinessLevel, len(analysis.CriticalGaps))
	}

	return &types.Report{
		TargetPosition:    position,
		AnalysisTimestamp: e.now(),
		CandidateProfile:  summarize(profile, skills),
		SkillGapAnalysis:  analysis,
		Recommendations:   recs,
		ImprovementPlan:   plan,
		OverallScore:      score,
	}, nil
}

func (e *Engine) errorReport(position, msg string) *types.Report {
	return &types.Report{
		TargetPosition:    position,
		AnalysisTimestamp: e.now(),
		Error:             msg,
	}
}

func summarize(profile *types.CandidateProfile, skills matching.SkillSet) *types.CandidateSummary {
	education := profile.EducationLevel
	if education == "" {
		education = UnknownEducation
	}
	return &types.CandidateSummary{
		SkillsCount:     skills.Len(),
		ExperienceYears: profile.YearsExperience,
		EducationLevel:  education,
	}
}

// AnalyzeAll scores the candidate against every catalog position and ranks the
// positions by overall score, best first. Ties are broken by position name.
func (e *Engine) AnalyzeAll(ctx context.Context, profile *types.CandidateProfile) ([]types.PositionFit, error) {
	positions := e.catalog.Positions()
	fits := make([]types.PositionFit, len(positions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.fitConcurrency)

	for i, position := range positions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := e.Run(profile, position)
			if err != nil {
				return fmt.Errorf("failed to analyze %s: %w", position, err)
			}
			fits[i] = types.PositionFit{
				Position:       position,
				OverallScore:   report.OverallScore.OverallScore,
				ReadinessLevel: report.OverallScore.ReadinessLevel,
				CareerLevel:    report.SkillGapAnalysis.CareerLevel,
				CriticalGaps:   len(report.SkillGapAnalysis.CriticalGaps),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(fits, func(i, j int) bool {
		if fits[i].OverallScore != fits[j].OverallScore {
			return fits[i].OverallScore > fits[j].OverallScore
		}
		return fits[i].Position < fits[j].Position
	})
	return fits, nil
}
