// Package server provides the HTTP REST API for the interview coach.
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

	"github.com/jonathan/careergpt/internal/config"
	"github.com/jonathan/careergpt/internal/db"
	"github.com/jonathan/careergpt/internal/ingestion"
	"github.com/jonathan/careergpt/internal/interview"
	"github.com/jonathan/careergpt/internal/llm"
	"github.com/jonathan/careergpt/internal/server/middleware"
	"github.com/jonathan/careergpt/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	interviewer *llm.Interviewer
	llmClient   llm.Client
	fetchOpts   *ingestion.Options
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
}

// Config holds server configuration
type Config struct {
	Port           int
	DatabaseURL    string
	GeminiAPIKey   string
	BanksPath      string
	FetchTimeout   time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// New creates a new server instance. The database and the generative model
// are both optional: without a database transcripts are not persisted,
// without an API key the rule-based selector answers every turn.
func New(cfg Config) (*Server, error) {
	s := &Server{
		fetchOpts: ingestion.DefaultOptions(),
	}
	if cfg.FetchTimeout > 0 {
		s.fetchOpts.Timeout = cfg.FetchTimeout
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
	}

	// Question banks: defaults unless a custom bank file is configured
	banks := interview.DefaultBanks()
	if cfg.BanksPath != "" {
		loaded, err := interview.LoadBanks(cfg.BanksPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load question banks: %w", err)
		}
		banks = loaded
	}
	selector := interview.NewSelector(banks, nil)

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		s.llmClient = client
	}
	s.interviewer = llm.NewInterviewer(s.llmClient, selector)

	// Rate limiter: environment defaults, default bucket shaped by the
	// operator's configured rate when one is set
	rlConfig := ratelimit.LoadConfig()
	rlConfig.ApplyFileRate(cfg.RateLimitRPS, cfg.RateLimitBurst)
	s.rateLimiter = ratelimit.NewLimiter(rlConfig)

	// Authentication is enabled only when JWT_SECRET is set
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Resume endpoints
	mux.HandleFunc("POST /resumes/parse", s.handleParseResume)
	mux.HandleFunc("GET /users/{user_id}/profile", s.handleGetProfile)
	mux.HandleFunc("DELETE /users/{user_id}/profile", s.handleDeleteProfile)

	// Interview endpoints
	mux.HandleFunc("POST /interviews", s.handleCreateInterview)
	mux.HandleFunc("GET /interviews", s.handleListInterviews)
	mux.HandleFunc("POST /interviews/respond", s.handleRespond)
	mux.HandleFunc("GET /interviews/{id}", s.handleGetInterview)
	mux.HandleFunc("GET /interviews/{id}/transcript", s.handleGetTranscript)
	mux.HandleFunc("POST /interviews/{id}/complete", s.handleCompleteInterview)
	mux.HandleFunc("DELETE /interviews/{id}", s.handleDeleteInterview)

	authMiddleware := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(authMiddleware(mux)))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
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

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		// Check rate limit
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		// Set rate limit headers for successful requests
		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db == nil {
		status["storage"] = "disabled"
	}
	s.jsonResponse(w, http.StatusOK, status)
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

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
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

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
