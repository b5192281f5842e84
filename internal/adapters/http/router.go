package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/speech-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/speech-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/speech-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/speech-service/internal/platform/config"
	"github.com/jsamuelsen/speech-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default deadline of an API request.
const DefaultRequestTimeout = config.DefaultRequestTimeout

// API base paths. The unversioned alias serves the same handlers.
const (
	APIBasePath      = "/api/v1"
	APIAliasBasePath = "/api"
)

// Envelope messages for requests no route serves.
const (
	MessageRouteNotFound    = "Route not found"
	MessageMethodNotAllowed = "Method not allowed"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig names the service in traces and metrics.
	AppConfig *config.AppConfig

	// HealthHandler handles the /-/ endpoints.
	HealthHandler *handlers.HealthHandler

	// SpeechHandler handles the speech resource. Nil registers no API routes.
	SpeechHandler *handlers.SpeechHandler

	// Timeout is the deadline of an API request. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing and metrics
//  5. Logging (skips /-/ endpoints)
//  6. Timeout (API routes only)
//
// Route groups:
//   - /-/: probes, build info and Prometheus metrics
//   - /api/v1/speeches and /api/speeches: the speech resource
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	serviceName := "speech-service"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(serviceName)...)
	engine.Use(middleware.Logging(logger))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	for _, base := range []string{APIBasePath, APIAliasBasePath} {
		api := engine.Group(base)
		if cfg.Timeout > 0 {
			api.Use(middleware.Timeout(cfg.Timeout))
		}

		setupAPIRoutes(api, cfg)
	}

	engine.NoRoute(func(c *gin.Context) {
		dto.AbortWithStatus(c, http.StatusNotFound, MessageRouteNotFound)
	})
	engine.NoMethod(func(c *gin.Context) {
		dto.AbortWithStatus(c, http.StatusMethodNotAllowed, MessageMethodNotAllowed)
	})
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.SpeechHandler != nil {
		cfg.SpeechHandler.RegisterSpeechRoutes(rg)
	}
}

// NewDefaultRouterConfig creates a RouterConfig using DefaultRequestTimeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	speechHandler *handlers.SpeechHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		SpeechHandler: speechHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
