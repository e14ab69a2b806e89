package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/medilab/lab-api/config"
	deliveryHttp "github.com/medilab/lab-api/internal/delivery/http"
	"github.com/medilab/lab-api/internal/delivery/http/handler"
	"github.com/medilab/lab-api/internal/delivery/http/middleware"
	"github.com/medilab/lab-api/internal/infrastructure/cache"
	"github.com/medilab/lab-api/internal/infrastructure/database"
	"github.com/medilab/lab-api/internal/ml"
	"github.com/medilab/lab-api/internal/repository"
	"github.com/medilab/lab-api/internal/service"
	"github.com/medilab/lab-api/internal/usecase"
	"github.com/medilab/lab-api/pkg/jwt"
	"github.com/medilab/lab-api/pkg/validator"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Run database migrations
	if err := database.RunMigrations(cfg.DB, "migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize session service
	sessionService := jwt.NewSessionService(cfg.Session)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize ML predictor
	predictor := ml.NewPredictor(cfg.ML, log)

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	reportRepo := repository.NewReportRepository()
	doctorRepo := repository.NewDoctorRepository()
	secretaryRepo := repository.NewSecretaryRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, doctorRepo, secretaryRepo, sessionService, redisClient, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, reportRepo, auditService)
	reportUsecase := usecase.NewReportUsecase(db, log, reportRepo, patientRepo, auditService)
	secretaryUsecase := usecase.NewSecretaryUsecase(db, log, secretaryRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, patientRepo, reportRepo, redisClient)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, sessionService)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase, customValidator)
	secretaryHandler := handler.NewSecretaryHandler(secretaryUsecase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	predictHandler := handler.NewPredictHandler(predictor)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(sessionService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		reportHandler,
		secretaryHandler,
		dashboardHandler,
		predictHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
