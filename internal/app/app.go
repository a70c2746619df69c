package app

import (
	"context"
	"creator_insight_backend/internal/config"
	"creator_insight_backend/internal/controller"
	"creator_insight_backend/internal/middleware"
	"creator_insight_backend/internal/repository"
	"creator_insight_backend/internal/service"
	"creator_insight_backend/pkg/configwatcher"
	"creator_insight_backend/pkg/database"
	"creator_insight_backend/pkg/logger"
	"creator_insight_backend/pkg/monitoring"
	"creator_insight_backend/pkg/security"
	"creator_insight_backend/pkg/tracing"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	creator     *repository.CreatorRepository
	course      *repository.CourseRepository
	enrollment  *repository.EnrollmentRepository
	analytic    *repository.AnalyticRepository
	review      *repository.ReviewRepository
	insight     *repository.InsightRepository
	diagnostics *repository.DiagnosticsRepository
}

type services struct {
	auth        *service.AuthService
	dashboard   *service.DashboardService
	course      *service.CourseService
	insight     *service.InsightService
	portfolio   *service.PortfolioService
	achievement *service.AchievementService
	diagnostics *service.DiagnosticsService
}

type controllers struct {
	auth        *controller.AuthController
	dashboard   *controller.DashboardController
	course      *controller.CourseController
	insight     *controller.InsightController
	portfolio   *controller.PortfolioController
	achievement *controller.AchievementController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		creator:     repository.NewCreatorRepository(db),
		course:      repository.NewCourseRepository(db),
		enrollment:  repository.NewEnrollmentRepository(db),
		analytic:    repository.NewAnalyticRepository(db),
		review:      repository.NewReviewRepository(db),
		insight:     repository.NewInsightRepository(db),
		diagnostics: repository.NewDiagnosticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	var points service.PointsStore = service.DemoPointsStore{Value: cfg.Achievements.DemoPoints}
	if cfg.Achievements.Source == config.PointsSourceDatabase {
		points = service.CreatorPointsStore{Repo: repos.creator}
	}

	return &services{
		auth:        service.NewAuthService(service.NewTokenManager(cfg.Auth)),
		dashboard:   service.NewDashboardService(repos.course, repos.enrollment),
		course:      service.NewCourseService(repos.course, repos.analytic, repos.review),
		insight:     service.NewInsightService(repos.insight),
		portfolio:   service.NewPortfolioService(),
		achievement: service.NewAchievementService(points, cfg.Achievements.DemoPoints),
		diagnostics: service.NewDiagnosticsService(repos.diagnostics, &cfg.Database),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		dashboard:   controller.NewDashboardController(s.dashboard),
		course:      controller.NewCourseController(s.course),
		insight:     controller.NewInsightController(s.insight),
		portfolio:   controller.NewPortfolioController(s.portfolio),
		achievement: controller.NewAchievementController(s.achievement),
		health:      controller.NewHealthController(s.diagnostics),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(security.CORS())
	router.Use(security.Secure())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.RequestLogger())
}

// New 用给定的数据库连接组装路由，db 为 nil 时所有读接口返回演示数据
func New(cfg *config.Config, db *gorm.DB) *App {
	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg)
	controllers := app.initControllers(app.services)

	monitoring.Init()

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

// NewApp 初始化日志、数据库和追踪后组装应用，数据库不可用时降级运行
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	db, err := database.InitDB(&cfg.Database)
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		logger.Log.Warn("Database not configured, serving demo data")
		db = nil
	case err != nil:
		logger.Log.Warn("Database unavailable, serving demo data", zap.Error(err))
		db = nil
	default:
		logger.Log.Info("Database connection established")
	}

	if db != nil && (cfg.ForceMigrate || cfg.Seed) {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Database migration failed", zap.Error(err))
		}
		logger.Log.Info("Database migration completed")
	}
	if db != nil && cfg.Seed {
		if err := database.Seed(context.Background(), db); err != nil {
			logger.Log.Fatal("Database seed failed", zap.Error(err))
		}
		logger.Log.Info("Demo data seeded")
	}

	app := New(cfg, db)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.RegisterConfigCallback(func(c *config.Config) {
		logger.SetLevel(c.Log.Level)
		logger.Log.Info("Log level updated", zap.String("level", logger.Level().String()))
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if a.Config.Watch.Watch && a.Config.File != "" {
		go func() {
			err := configwatcher.Watch(watchCtx, a.Config.File, func(c *config.Config) {
				for _, cb := range a.configCallbacks {
					cb(c)
				}
			})
			if err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	logger.Log.Info("Server exiting")
}
