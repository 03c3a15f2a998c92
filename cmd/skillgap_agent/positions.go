package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/skillgap-advisor/internal/catalog"
	"github.com/jonathan/skillgap-advisor/internal/observability"
	"github.com/spf13/cobra"
)

var positionsCmd = &cobra.Command{
	Use:   "positions [position]",
	Short: "List catalog positions or show one position's requirements",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPositions,
}

func init() {
	rootCmd.AddCommand(positionsCmd)
}

func runPositions(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	cat, err := catalog.LoadOrBootstrap(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, position := range cat.Positions() {
			_, _ = fmt.Fprintf(out, "%-20s %s\n", position, observability.DisplayPosition(position))
		}
		return nil
	}

	position := catalog.NormalizePosition(args[0])
	profile, ok := cat.Lookup(position)
	if !ok {
		return fmt.Errorf("no requirements found for position: %s", position)
	}

	jsonBytes, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal position: %w", err)
	}
	_, _ = fmt.Fprintln(out, string(jsonBytes))
	return nil
}
