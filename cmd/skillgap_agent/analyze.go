package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/skillgap-advisor/internal/observability"
	"github.com/jonathan/skillgap-advisor/internal/schemas"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a candidate profile against a target position",
	Long: `Compares a candidate profile against one position of the catalog and produces the
skill-gap report: missing skills per tier, learning recommendations, a phased improvement
plan and a readiness score. The report is printed as text unless --out or --json is given.`,
	RunE: runAnalyze,
}

var (
	analyzeProfile  string
	analyzePosition string
	analyzeOut      string
	analyzeJSON     bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeProfile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzePosition, "position", "t", "", "Target position, e.g. data_scientist (defaults to config 'position')")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Path to write the report JSON file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON instead of text")

	if err := analyzeCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	position := analyzePosition
	if position == "" {
		position = cfg.Position
	}
	if position == "" {
		return fmt.Errorf("a target position is required: pass --position or set 'position' in the config file")
	}

	profile, err := readProfile(analyzeProfile)
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	report, runErr := engine.Run(profile, position)
	out := cmd.OutOrStdout()

	if cfg.Verbose && !report.Failed() {
		printer := observability.NewPrinter(out)
		printer.PrintGapAnalysis(report.TargetPosition, report.SkillGapAnalysis)
		printer.PrintRecommendations(report.Recommendations)
		printer.PrintScore(report.OverallScore)
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	switch {
	case analyzeOut != "":
		if err := writeReport(analyzeOut, jsonBytes); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Successfully wrote report for %s to %s\n", report.TargetPosition, analyzeOut)
	case analyzeJSON:
		_, _ = fmt.Fprintln(out, string(jsonBytes))
	default:
		_, _ = fmt.Fprintln(out, observability.FormatReport(report))
	}

	if runErr != nil {
		return runErr
	}
	return nil
}

// writeReport persists the report and checks it against the report schema
func writeReport(path string, jsonBytes []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	schemaPath := schemas.ResolveSchemaPath(schemas.SkillGapReportSchema)
	if schemaPath == "" {
		return nil
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("output validation failed: %w", err)
		}
		if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not load report schema: %v\n", err)
			return nil
		}
		return fmt.Errorf("output validation error: %w", err)
	}
	return nil
}
