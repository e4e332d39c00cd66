// Package server implements the callirhoe HTTP render service.
//
// The service renders calendars on request and shares the pipeline with the
// CLI, so a query renders exactly what the equivalent command line would:
//
//	GET /healthz
//	GET /version
//	GET /themes
//	GET /calendar.svg?year=2025&months=1:6&style=bw&page=1
//	POST /calendar.pdf?year=2025   (body: YAML holiday file)
//
// Every response carries an X-Request-ID header. Artifacts are cached by the
// runner's cache, typically Redis when several instances serve together.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/callirhoe/pkg/buildinfo"
	"github.com/matzehuels/callirhoe/pkg/pipeline"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

const (
	// DefaultAddr is the listen address of the service.
	DefaultAddr = ":8080"

	// DefaultTimeout bounds the handling of one request.
	DefaultTimeout = 60 * time.Second

	// maxHolidayBody caps the size of a posted holiday file.
	maxHolidayBody = 1 << 20

	shutdownTimeout = 10 * time.Second
)

// Server serves rendered calendars over HTTP.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	themes  theme.Provider
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithThemes sets the theme provider requests are resolved against.
func WithThemes(p theme.Provider) Option {
	return func(s *Server) { s.themes = p }
}

// WithTimeout bounds the handling of one request.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithClock sets the clock used to resolve year 0 and month 0.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates a server rendering through runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:  runner,
		logger:  logger,
		themes:  theme.NewRegistry(),
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler of the service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/themes", s.handleThemes)
	r.Get("/calendar.{format}", s.handleCalendar)
	r.Post("/calendar.{format}", s.handleCalendar)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("Serving calendars", "addr", addr, "version", buildinfo.Version)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}
