// Package httpapi serves date conversions over HTTP.
//
// Routes:
//
//	GET /api/v1/{calendar}/solar/{date}          solar date to lunar
//	GET /api/v1/{calendar}/lunar/{date}[?leap=]  lunar date to solar
//	GET /api/v1/{calendar}/years/{year}          month layout of a lunar year
//	GET /api/v1/{calendar}/range                 span covered by the table
//	GET /health
//	GET /metrics
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/golunar/lunardate"
	"github.com/golunar/lunardate/internal/types"
)

// Config holds server settings.
type Config struct {
	Addr            string
	RateLimit       float64 // requests per second; 0 disables limiting
	Burst           int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		RateLimit:       100,
		Burst:           200,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 15 * time.Second,
	}
}

// Server is the HTTP front end of a lunardate.Converter.
type Server struct {
	types.Logger
	cfg      Config
	conv     *lunardate.Converter
	metrics  *Metrics
	registry *prometheus.Registry
	limiter  *rate.Limiter
	router   *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.L = logger }
}

// WithRegistry sets the registry metrics are registered with and served
// from. By default each Server gets its own registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// New returns a Server converting with conv.
func New(conv *lunardate.Converter, cfg Config, opts ...Option) *Server {
	s := &Server{cfg: cfg, conv: conv}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = NewMetrics(s.registry, "lunardate")
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestID, s.instrument)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1/{calendar}").Subrouter()
	api.Use(s.rateLimit)
	api.HandleFunc("/solar/{date}", s.handleSolar).Methods(http.MethodGet)
	api.HandleFunc("/lunar/{date}", s.handleLunar).Methods(http.MethodGet)
	api.HandleFunc("/years/{year:[0-9]+}", s.handleYear).Methods(http.MethodGet)
	api.HandleFunc("/range", s.handleRange).Methods(http.MethodGet)
	return r
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.router }

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.Log(slog.LevelInfo, "listening", slog.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	s.Log(slog.LevelInfo, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "listen")
	}
	return nil
}
