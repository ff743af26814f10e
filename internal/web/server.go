package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/folio/internal/ports"
	"github.com/emiliopalmerini/folio/internal/shared/middleware"
)

// Options controls how views are rendered.
type Options struct {
	Title           string
	Locale          string
	WeekStart       time.Weekday
	ShutdownTimeout time.Duration
	// Now is the clock used when a view needs the current year.
	Now func() time.Time
}

type Server struct {
	router       *http.ServeMux
	handler      http.Handler
	port         int
	opts         Options
	log          *zap.Logger
	metrics      ports.RenderMetrics
	activityRepo ports.ActivityRepository
	projectRepo  ports.ProjectRepository
}

func NewServer(
	port int,
	opts Options,
	log *zap.Logger,
	metrics ports.RenderMetrics,
	ar ports.ActivityRepository,
	pr ports.ProjectRepository,
) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		router:       http.NewServeMux(),
		port:         port,
		opts:         opts,
		log:          log,
		metrics:      metrics,
		activityRepo: ar,
		projectRepo:  pr,
	}
	s.setupRoutes()
	s.handler = middleware.Recovery(log)(middleware.HTMX(middleware.Logger(log)(s.router)))
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages
	s.router.HandleFunc("GET /{$}", s.handleHome)
	s.router.HandleFunc("GET /projects", s.handleProjects)
	s.router.HandleFunc("GET /projects/{id}", s.handleProjectRedirect)

	// Fragments (for HTMX)
	s.router.HandleFunc("GET /partials/contributions", s.handleContributionsPartial)

	// API endpoints
	s.router.HandleFunc("GET /api/contributions", s.handleAPIContributions)
	s.router.HandleFunc("GET /api/projects", s.handleAPIProjects)

	s.router.HandleFunc("/", s.handleNotFound)
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info("starting server", zap.String("url", fmt.Sprintf("http://localhost:%d", s.port)))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Error("server shutdown error", zap.Error(err))
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil // Graceful shutdown
	}
	return err
}
