package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/skillgap-advisor/internal/cache"
	"github.com/jonathan/skillgap-advisor/internal/db"
	"github.com/jonathan/skillgap-advisor/internal/metrics"
	"github.com/jonathan/skillgap-advisor/internal/queue"
	"github.com/jonathan/skillgap-advisor/internal/service"
	"github.com/spf13/cobra"
)

var (
	workerConcurrency int
	workerMetricsPort int
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume analysis requests from RabbitMQ",
	Long: `Consumes analysis requests from the skillgap_requests queue, stores each report and
publishes status updates on the skillgap_updates exchange. Requires RABBITMQ_URL and DATABASE_URL.`,
	RunE: runWorker,
}

func init() {
	workerCmd.Flags().IntVar(&workerConcurrency, "concurrency", queue.DefaultConcurrency, "Number of messages processed at once")
	workerCmd.Flags().IntVar(&workerMetricsPort, "metrics-port", 0, "Port serving /metrics (0 disables)")
	rootCmd.AddCommand(workerCmd)
}

func runWorker(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	if cfg.RabbitMQURL == "" {
		return fmt.Errorf("RABBITMQ_URL environment variable is required")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database, err := db.Connect(connectCtx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(connectCtx); err != nil {
		return err
	}

	reportCache := cache.Connect(connectCtx, cfg.RedisURL, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	defer func() { _ = reportCache.Close() }()

	m := metrics.New()
	if workerMetricsPort > 0 {
		metricsServer := &http.Server{
			Addr:              fmt.Sprintf(":%d", workerMetricsPort),
			Handler:           m.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("[WORKER] Metrics server stopped: %v", err)
			}
		}()
		defer func() { _ = metricsServer.Close() }()
	}

	svc := service.New(service.Deps{
		Engine:      engine,
		MatcherName: cfg.Matcher,
		Store:       database,
		Cache:       reportCache,
		Metrics:     m,
	})

	conn, err := queue.Dial(cfg.RabbitMQURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	handler := queue.NewHandler(svc, queue.NewAMQPPublisher(conn, queue.UpdateExchange), m)
	worker := queue.NewWorker(conn, handler, workerConcurrency)

	_, _ = fmt.Fprintf(os.Stdout, "Worker consuming %s with concurrency %d\n", queue.RequestQueue, workerConcurrency)
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
