package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/item-service/pkg/logger"
)

// Validator adapts go-playground/validator to Echo's Validator interface,
// so handlers can call c.Validate on bound requests.
type Validator struct {
	validate *validator.Validate
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Server is the HTTP server.
type Server struct {
	echo   *echo.Echo
	logger *zap.Logger
	port   int
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithPort sets the listen port.
func WithPort(port int) ServerOption {
	return func(s *Server) {
		s.port = port
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer builds an HTTP server carrying the shared middleware stack:
// panic recovery, CORS, request IDs and zap request logging.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		echo:   echo.New(),
		logger: zap.NewNop(),
		port:   8080,
	}

	for _, opt := range opts {
		opt(s)
	}

	e := s.echo
	e.Validator = &Validator{validate: validator.New()}

	logger.WithEchoLogger(e, s.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.NewEchoRequestLogger(s.logger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "item",
		})
	})

	return s
}

// RegisterRoutes runs the given route registration hook against the
// underlying Echo instance.
func (s *Server) RegisterRoutes(registerFunc func(e *echo.Echo)) {
	registerFunc(s.echo)
}

// Start begins serving on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting HTTP server", zap.String("addr", addr))

	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

// GetEcho returns the underlying Echo instance.
func (s *Server) GetEcho() *echo.Echo {
	return s.echo
}
