package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/dippingsauce/backend/config"
	"github.com/pageza/dippingsauce/backend/internal/api"
	"github.com/pageza/dippingsauce/backend/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    *zap.Logger
}

// New builds the engine with the shared middleware chain and every route
func New(cfg *config.Config, log *zap.Logger, metrics *middleware.Metrics, deps api.Dependencies) (*Server, error) {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(log, "/health", "/metrics"),
		metrics.Middleware(),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.ErrorHandler(log),
	)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	if err := api.RegisterRoutes(router, deps); err != nil {
		return nil, err
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}, nil
}

// Handler exposes the engine for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.log.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
