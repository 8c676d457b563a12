package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ayakimenko/route-weather-bot/internal/config"
	"github.com/ayakimenko/route-weather-bot/internal/forecast"
	"github.com/ayakimenko/route-weather-bot/internal/server/handlers"
	"github.com/ayakimenko/route-weather-bot/internal/server/middlewares"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server is the operational HTTP surface that runs alongside the bot:
// health probes plus a development /report endpoint that renders a route
// report without going through Telegram.
type Server struct {
	engine *gin.Engine
	server *http.Server
	agg    *forecast.Aggregator
	logger *zap.Logger
}

func NewServer(agg *forecast.Aggregator, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middlewares.RequestIDMiddleware(logger))
	engine.Use(middlewares.LoggingMiddleware(logger, time.RFC3339, true))
	engine.Use(middlewares.RecoveryMiddleware(logger, true))

	s := &Server{
		engine: engine,
		agg:    agg,
		logger: logger,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Development endpoint
	s.engine.GET("/report", handlers.NewReportHandler(s.agg, s.logger).GetReport)

	// Health endpoints (Kubernetes friendly)
	s.engine.GET("/health", handlers.NewHealthHandler(s.logger).Health)
	s.engine.GET("/health/live", handlers.NewHealthHandler(s.logger).Liveness)
	s.engine.GET("/health/ready", handlers.NewHealthHandler(s.logger).Readiness)
}

func (s *Server) Start() error {
	cfg := config.GetConfig()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	s.logger.Info("Starting ops server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
