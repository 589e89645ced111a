// Package http exposes a grantqa.Asker over HTTP using gin.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/grantqa"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultAddr is the address the server listens on if none is given.
const DefaultAddr = ":3005"

// ShutdownTimeout bounds how long in-flight requests may run after shutdown starts.
const ShutdownTimeout = 10 * time.Second

// Server serves questions over HTTP.
type Server struct {
	asker   grantqa.Asker
	logger  *slog.Logger
	limiter *rate.Limiter
	addr    string

	engine *gin.Engine
	server *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithLogger sets the logger used for request and error logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRateLimit limits /api/ask to rps requests per second with the given burst.
// Each question may cost an LLM call, so the limit is shared by all clients.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewServer creates a new Server.
func NewServer(asker grantqa.Asker, opts ...Option) *Server {
	s := &Server{
		asker:  asker,
		logger: slog.Default(),
		addr:   DefaultAddr,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = gin.New()
	s.engine.HandleMethodNotAllowed = true
	s.engine.Use(
		s.recovery(),
		requestID(),
		s.logRequests(),
		cors(),
	)
	s.registerRoutes()

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("starting server", "addr", s.addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		s.logger.Info("stopping server")
		return s.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) registerRoutes() {
	s.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
	})
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
	})

	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/api/ask", s.rateLimit(), s.handleAsk)
}
