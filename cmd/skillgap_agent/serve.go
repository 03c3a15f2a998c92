package main

import (
	"fmt"
	"time"

	"github.com/jonathan/skillgap-advisor/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyses, position fit and stored reports.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: config 'port' or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port := cfg.Port
	if servePort > 0 {
		port = servePort
	}

	srv, err := server.New(server.Config{
		Port:           port,
		DatabaseURL:    cfg.DatabaseURL,
		RedisURL:       cfg.RedisURL,
		CatalogPath:    cfg.CatalogPath,
		Matcher:        cfg.Matcher,
		CacheTTL:       time.Duration(cfg.CacheTTLSeconds) * time.Second,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		FitConcurrency: cfg.FitConcurrency,
		Verbose:        cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
