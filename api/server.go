// Package api exposes the HTTP surface of the service: public data
// routes backed by the resolver services and an authenticated cron
// route that triggers ingestion.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"debtwatch/config"
	"debtwatch/ratelimit"
	"debtwatch/service"
)

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	cfg    *config.Config

	debt     service.DebtService
	auctions service.AuctionService
	maturity service.MaturityService
	health   service.HealthService
	ingest   service.IngestService

	limiter ratelimit.Store
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(
	cfg *config.Config,
	debt service.DebtService,
	auctions service.AuctionService,
	maturity service.MaturityService,
	health service.HealthService,
	ingest service.IngestService,
	limiter ratelimit.Store,
) *Server {
	srv := &Server{
		cfg:      cfg,
		debt:     debt,
		auctions: auctions,
		maturity: maturity,
		health:   health,
		ingest:   ingest,
		limiter:  limiter,
	}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server and blocks until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("HTTP server listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Remaining", "Retry-After"},
		MaxAge:         300,
	}))

	// Public data routes share one per-client rate limit.
	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			limitCfg := ratelimit.Config{
				Interval: time.Minute,
				Limit:    s.cfg.RateLimitPerMinute,
			}
			r.Use(ratelimit.Middleware(s.limiter, limitCfg, ratelimit.DefaultKeyFunc))
		}

		r.Get("/debt", s.handleDebt)
		r.Get("/auctions", s.handleAuctions)
		r.Get("/maturity-wall", s.handleMaturityWall)
		r.Get("/health", s.handleHealth)
		r.Get("/health/history", s.handleHealthHistory)
	})

	// Ingestion trigger is authenticated, not rate limited.
	r.Post("/cron/ingest", s.handleCronIngest)

	return r
}

// requestLogger logs each request with its status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		log.WithFields(log.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"durationMs": time.Since(start).Milliseconds(),
			"requestId":  middleware.GetReqID(r.Context()),
		}).Info("Handled request")
	})
}

// errorResponse is the JSON body for non-2xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
