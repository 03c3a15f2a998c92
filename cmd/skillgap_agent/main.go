// Package main provides the entry point for the skill-gap advisor CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillgap_agent",
	Short: "Skill-gap advisor CLI and HTTP API server",
	Long: `Skill-gap advisor compares a candidate's skills against a catalog of target positions,
recommends learning resources, builds a phased improvement plan and scores readiness.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Persistent flags shared by every subcommand
var (
	configPath  string
	catalogPath string
	matcherName string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to the position catalog (default: models/skills_database.json)")
	rootCmd.PersistentFlags().StringVar(&matcherName, "matcher", "", "Skill matcher: substring or exact")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed progress")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
