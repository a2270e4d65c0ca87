package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/gig-earnings/internal/config"
	"github.com/grachmannico95/gig-earnings/internal/handler"
	"github.com/grachmannico95/gig-earnings/internal/middleware"
	"github.com/grachmannico95/gig-earnings/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// maxUploadBody caps request bodies; exports are small text files.
const maxUploadBody = "10M"

type Server struct {
	echo           *echo.Echo
	cfg            *config.Config
	logger         *logger.Logger
	connectHandler *handler.ConnectHandler
	studyHandler   *handler.StudyHandler
	healthHandler  *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	connectHandler *handler.ConnectHandler,
	studyHandler *handler.StudyHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:           e,
		cfg:            cfg,
		logger:         log,
		connectHandler: connectHandler,
		studyHandler:   studyHandler,
		healthHandler:  healthHandler,
	}
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(echoMiddleware.BodyLimit(maxUploadBody))
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	s.echo.POST("/connect/earnings", s.connectHandler.Calculate)

	uploads := s.echo.Group("/prolific/uploads")
	uploads.POST("", s.studyHandler.Upload)
	uploads.GET("/:id", s.studyHandler.Get)
	uploads.DELETE("/:id", s.studyHandler.Delete)
	uploads.POST("/:id/calculate", s.studyHandler.Calculate)
}

// Handler exposes the configured router for in-process tests.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}
