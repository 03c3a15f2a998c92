package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/skillgap-advisor/internal/advisor"
	"github.com/jonathan/skillgap-advisor/internal/catalog"
	"github.com/jonathan/skillgap-advisor/internal/config"
	"github.com/jonathan/skillgap-advisor/internal/matching"
	"github.com/jonathan/skillgap-advisor/internal/schemas"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

// loadSettings merges CLI flags over the config file over the environment and defaults
func loadSettings() (*config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	if matcherName != "" {
		cfg.Matcher = matcherName
	}
	if verbose {
		cfg.Verbose = true
	}

	merged := cfg.MergeWithDefaults(config.FromEnv())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// newEngine loads the catalog named by the settings and builds an engine around it
func newEngine(cfg *config.Config) (*advisor.Engine, error) {
	cat, err := catalog.LoadOrBootstrap(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	matcher, err := matching.ByName(cfg.Matcher)
	if err != nil {
		return nil, err
	}

	return advisor.NewEngine(cat,
		advisor.WithMatcher(matcher),
		advisor.WithVerbose(cfg.Verbose),
		advisor.WithFitConcurrency(cfg.FitConcurrency),
	), nil
}

// readProfile loads a candidate profile, warning when it does not match the schema
func readProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.CandidateProfileSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: profile does not match schema: %v\n", err)
			}
		}
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}
