package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/skillgap-advisor/internal/observability"
	"github.com/spf13/cobra"
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Rank every catalog position for a candidate",
	Long:  "Scores the candidate against each position in the catalog and lists them from best to worst fit.",
	RunE:  runFit,
}

var (
	fitProfile string
	fitJSON    bool
)

func init() {
	fitCmd.Flags().StringVarP(&fitProfile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	fitCmd.Flags().BoolVar(&fitJSON, "json", false, "Print the ranking as JSON")

	if err := fitCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	profile, err := readProfile(fitProfile)
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fits, err := engine.AnalyzeAll(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to rank positions: %w", err)
	}

	if fitJSON {
		jsonBytes, err := json.MarshalIndent(map[string]any{"positions": fits}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal ranking: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintPositionFits(fits)
	return nil
}
