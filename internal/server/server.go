// Package server exposes the render pipeline over HTTP.
//
// Routes:
//
//	POST /render          JSON request → image/svg+xml document
//	POST /bbox            JSON request → view box and member count
//	GET  /files/{path}    renders a file below the data directory
//	GET  /healthz         liveness probe
//
// Every response carries an X-Request-ID (taken from the request when it is
// a UUID, generated otherwise) and a Server header naming the build.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/geosvg/pkg/config"
	"github.com/matzehuels/geosvg/pkg/pipeline"
)

const (
	readTimeout     = 30 * time.Second
	writeTimeout    = 60 * time.Second
	shutdownTimeout = 10 * time.Second

	// maxBodySize leaves room for the JSON envelope around the input.
	maxBodySize = pipeline.MaxInputSize + 1<<20
)

// Options configures a Server.
type Options struct {
	// Config supplies style profiles and document defaults.
	Config *config.Config

	// DataDir enables GET /files/{path}. Empty disables the route.
	DataDir string
}

// Server routes HTTP requests to a pipeline runner.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	cfg     *config.Config
	dataDir string
	router  chi.Router
}

// New builds a server around runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	s := &Server{
		runner:  runner,
		logger:  logger,
		cfg:     opts.Config,
		dataDir: opts.DataDir,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)
	r.Use(serverHeader)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Post("/bbox", s.handleBounds)
	if s.dataDir != "" {
		r.Get("/files/*", s.handleFile)
	}
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
