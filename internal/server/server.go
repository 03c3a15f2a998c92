// Package server provides the HTTP REST API for the skill-gap advisor.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/skillgap-advisor/internal/advisor"
	"github.com/jonathan/skillgap-advisor/internal/cache"
	"github.com/jonathan/skillgap-advisor/internal/catalog"
	"github.com/jonathan/skillgap-advisor/internal/config"
	"github.com/jonathan/skillgap-advisor/internal/db"
	"github.com/jonathan/skillgap-advisor/internal/matching"
	"github.com/jonathan/skillgap-advisor/internal/metrics"
	"github.com/jonathan/skillgap-advisor/internal/server/middleware"
	"github.com/jonathan/skillgap-advisor/internal/server/ratelimit"
	"github.com/jonathan/skillgap-advisor/internal/service"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	svc         *service.Service
	metrics     *metrics.Manager
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	closers     []func()
}

// Config holds server configuration
type Config struct {
	Port           int
	DatabaseURL    string
	RedisURL       string
	CatalogPath    string
	Matcher        string
	CacheTTL       time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	FitConcurrency int
	Verbose        bool
}

// Options assembles a server from ready-made collaborators
type Options struct {
	Port        int
	Service     *service.Service
	Metrics     *metrics.Manager
	JWTService  *JWTService
	RateLimiter *ratelimit.Limiter
}

// New creates a new server instance, connecting to the configured backends.
// Storage is required; the cache is optional and bypassed when unreachable.
func New(cfg Config) (*Server, error) {
	cat, err := catalog.LoadOrBootstrap(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	matcher, err := matching.ByName(cfg.Matcher)
	if err != nil {
		return nil, err
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}

	reportCache := cache.Connect(ctx, cfg.RedisURL, cfg.CacheTTL)
	m := metrics.New()

	engine := advisor.NewEngine(cat,
		advisor.WithMatcher(matcher),
		advisor.WithVerbose(cfg.Verbose),
		advisor.WithFitConcurrency(cfg.FitConcurrency),
	)

	s := NewWithOptions(Options{
		Port: cfg.Port,
		Service: service.New(service.Deps{
			Engine:      engine,
			MatcherName: cfg.Matcher,
			Store:       database,
			Cache:       reportCache,
			Metrics:     m,
		}),
		Metrics:     m,
		JWTService:  NewJWTService(jwtConfig),
		RateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig(cfg.RateLimitRPS, cfg.RateLimitBurst)),
	})
	s.closers = append(s.closers, database.Close, func() { _ = reportCache.Close() })
	return s, nil
}

// NewWithOptions builds the router around existing collaborators
func NewWithOptions(opts Options) *Server {
	s := &Server{
		svc:         opts.Service,
		metrics:     opts.Metrics,
		rateLimiter: opts.RateLimiter,
		jwtService:  opts.JWTService,
	}
	if s.rateLimiter == nil {
		s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{Enabled: false})
	}

	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	// Catalog
	mux.HandleFunc("GET /positions", s.handleListPositions)
	mux.HandleFunc("GET /positions/{name}", s.handleGetPosition)

	// Analyses
	mux.Handle("POST /analyses", auth(http.HandlerFunc(s.handleCreateAnalysis)))
	mux.HandleFunc("GET /analyses", s.handleListAnalyses)
	mux.HandleFunc("GET /analyses/{id}", s.handleGetAnalysis)
	mux.HandleFunc("GET /analyses/{id}/report.txt", s.handleAnalysisReportText)
	mux.Handle("DELETE /analyses/{id}", auth(http.HandlerFunc(s.handleDeleteAnalysis)))

	// Cross-position ranking
	mux.HandleFunc("POST /fit", s.handleFit)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the root handler including middleware
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Close()
	log.Println("Server stopped")
	return nil
}

// Close releases the rate limiter and backend connections
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	for _, closeFn := range s.closers {
		closeFn()
	}
	s.closers = nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging and metrics
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs each request and counts it by route pattern
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		// ServeMux sets the matched pattern on the request it routes
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.RecordHTTPRequest(r.Method, route, rec.status)
		log.Printf("[%s] %s %d in %v", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":   "rate_limit_exceeded",
		"message": "Rate limit exceeded. Please try again later.",
		"limit":   info.Limit,
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Retry=%v", info.Limit, info.RetryAfter)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failResponse maps err to a status code and writes it
func (s *Server) failResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[SERVER] Internal error: %v", err)
	}
	s.errorResponse(w, status, err.Error())
}
