package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appControllers "github.com/yigit/curricuforge/internal/app/controllers"
	"github.com/yigit/curricuforge/internal/app/export"
	"github.com/yigit/curricuforge/internal/app/generation"
	"github.com/yigit/curricuforge/internal/app/models/dto"
	appRoutes "github.com/yigit/curricuforge/internal/app/routes"
	appServices "github.com/yigit/curricuforge/internal/app/services"
	"github.com/yigit/curricuforge/internal/app/session"
	"github.com/yigit/curricuforge/internal/app/trends"
	"github.com/yigit/curricuforge/internal/config"
	appMiddleware "github.com/yigit/curricuforge/internal/middleware"
	"github.com/yigit/curricuforge/internal/pkg/logger"
	"github.com/yigit/curricuforge/internal/pkg/tracing"
	"github.com/yigit/curricuforge/internal/pkg/validation"
	"github.com/yigit/curricuforge/internal/pkg/websocket"
)

const (
	chartWidth  = 800
	chartHeight = 400
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store                *session.Store
	Hub                  *websocket.Hub
	Generator            generation.Generator
	SessionService       appServices.SessionService
	CurriculumService    appServices.CurriculumService
	TrendService         appServices.TrendService
	SessionController    *appControllers.SessionController
	CurriculumController *appControllers.CurriculumController
	TrendController      *appControllers.TrendController
	HealthController     *appControllers.HealthController
	EventsHandler        *websocket.Handler
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupTracing installs the tracer provider when tracing is enabled
func SetupTracing(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (tracing.ShutdownFunc, error) {
	return tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Environment: cfg.Server.Mode,
		SampleRatio: cfg.Tracing.SampleRatio,
	}, lgr)
}

// BuildDependencies initializes the session store, services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	charts, err := trends.NewChartRenderer(chartWidth, chartHeight)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize chart renderer")
		return nil, fmt.Errorf("failed to initialize chart renderer: %w", err)
	}

	deps.Store = session.NewStore(lgr)
	deps.Hub = websocket.NewHub(lgr)
	deps.Generator = generation.New(cfg, lgr)

	deps.SessionService = appServices.NewSessionService(deps.Store, deps.Hub, lgr)
	deps.CurriculumService = appServices.NewCurriculumService(deps.Store, deps.Generator, export.NewExporter(cfg.Export.ProductName), deps.Hub, lgr)
	deps.TrendService = appServices.NewTrendService(trends.NewStaticProvider(), charts, lgr)

	deps.SessionController = appControllers.NewSessionController(deps.SessionService)
	deps.CurriculumController = appControllers.NewCurriculumController(deps.CurriculumService, cfg.Server.MaxUploadBytes)
	deps.TrendController = appControllers.NewTrendController(deps.TrendService)
	deps.HealthController = appControllers.NewHealthController(cfg.Generation.Provider, cfg.APIKey() != "", deps.Store.Len)
	deps.EventsHandler = websocket.NewHandler(deps.Hub, deps.Store.Resolve, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	production := strings.ToLower(cfg.Server.Mode) == "production"
	switch {
	case production:
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case cfg.Server.Mode == "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterWithGin(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validation rules")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Tracing.Enabled {
		router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.CORS(cfg.AllowedOrigins()),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, appRoutes.Controllers{
		Session:    deps.SessionController,
		Curriculum: deps.CurriculumController,
		Trend:      deps.TrendController,
		Health:     deps.HealthController,
		Events:     deps.EventsHandler,
	})

	if production {
		setupStaticFileServing(router, cfg.Server.StaticDir, lgr)
	}

	return router
}

// setupStaticFileServing serves the built UI with a fallback to index.html
// for client-side routes
func setupStaticFileServing(router *gin.Engine, dir string, lgr zerolog.Logger) {
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		lgr.Warn().Err(err).Str("path", dir).Msg("UI bundle not found, static serving disabled")
		return
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found")))
			return
		}
		file := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(index)
	})
	lgr.Info().Str("path", dir).Msg("Static file serving configured for UI bundle")
}
