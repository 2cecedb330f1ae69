package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/AgentOS/urls/internal/api/http"
	"github.com/GriffinCanCode/AgentOS/urls/internal/api/middleware"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/monitoring"
	httpProvider "github.com/GriffinCanCode/AgentOS/urls/internal/providers/http"
	httpclient "github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/client"
	urlsProvider "github.com/GriffinCanCode/AgentOS/urls/internal/providers/urls"
	"github.com/GriffinCanCode/AgentOS/urls/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	handler  http.Handler
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	http     *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger := logging.NewFor(cfg.Logging.Level, cfg.Logging.Development)

	logger.Info("Initializing URL tools server",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
	)

	metrics := monitoring.NewMetrics()

	client, err := httpclient.NewClient(cfg.Client, logger, metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	serviceRegistry := service.NewRegistry(logger, metrics)
	if err := registerProviders(serviceRegistry, cfg, client, logger); err != nil {
		return nil, err
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
			zap.Bool("global", cfg.RateLimit.Global),
		)
		limits := middleware.DefaultRateLimitConfig()
		limits.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		limits.Burst = cfg.RateLimit.Burst
		if cfg.RateLimit.Global {
			router.Use(middleware.GlobalRateLimit(limits))
		} else {
			router.Use(middleware.RateLimit(limits))
		}
	}

	apihttp.NewHandlers(serviceRegistry, metrics, logger).Register(router)

	var handler http.Handler = router
	if cfg.Server.Gzip {
		handler = gzhttp.GzipHandler(router)
	}

	stats := serviceRegistry.Stats()
	logger.Info("Server initialized successfully",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)

	return &Server{
		router:   router,
		handler:  handler,
		registry: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler returns the root handler, including compression when enabled
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until Shutdown is called or listening fails
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	defer func() { _ = s.logger.Sync() }()

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("Graceful shutdown failed", zap.Error(err))
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func registerProviders(registry *service.Registry, cfg *config.Config, client *httpclient.Client, logger *logging.Logger) error {
	if err := registry.Register(urlsProvider.NewProvider(cfg.Query, logger)); err != nil {
		return fmt.Errorf("failed to register urls provider: %w", err)
	}
	if err := registry.Register(httpProvider.NewProvider(client)); err != nil {
		return fmt.Errorf("failed to register http provider: %w", err)
	}
	return nil
}
