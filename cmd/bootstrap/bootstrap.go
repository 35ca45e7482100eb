package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management-api/config"
	deliveryHttp "hospital-management-api/internal/delivery/http"
	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/infrastructure/cache"
	"hospital-management-api/internal/infrastructure/database"
	gormRepo "hospital-management-api/internal/repository"
	mongoRepo "hospital-management-api/internal/repository/mongodb"
	"hospital-management-api/internal/service"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/events"
	"hospital-management-api/pkg/jwt"
	"hospital-management-api/pkg/password"
	"hospital-management-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	MongoClient *mongo.Client
	RedisClient *redis.Client
	Publisher   events.Publisher
	Server      *http.Server
}

// repositories is the store-specific half of the wiring.
type repositories struct {
	patients  repository.PatientRepository
	doctors   repository.DoctorRepository
	auditLogs repository.AuditLogRepository
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{Log: setupLogger()}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.Log.Info("Configuration loaded successfully")
	if cfg.JWT.Secret == config.DefaultJWTSecret {
		app.Log.Warn("JWT_SECRET is not set; using the development default")
	}

	repos, err := app.initStore(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	var profileCache repository.ProfileCache
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis, app.Log)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		profileCache = cache.NewProfileCache(redisClient, cfg.Redis.ProfileCacheTTL)
		app.Log.Info("Redis connected successfully")
	}

	app.Publisher = events.NoopPublisher{}
	if cfg.NATS.Enabled() {
		publisher, err := events.NewNATSPublisher(cfg.NATS.URL, app.Log)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		app.Publisher = publisher
		app.Log.Info("NATS connected successfully")
	}

	app.Server = app.initializeServer(cfg, repos, profileCache)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}

// initStore connects the configured database and builds its repositories.
func (app *App) initStore(cfg *config.Config) (*repositories, error) {
	switch cfg.DB.Driver {
	case config.DriverMongo:
		client, db, err := database.NewMongoConnection(cfg.Mongo, app.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		app.MongoClient = client
		app.Log.Info("MongoDB connected successfully")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := mongoRepo.EnsureIndexes(ctx, db); err != nil {
			return nil, fmt.Errorf("failed to ensure indexes: %w", err)
		}

		return &repositories{
			patients:  mongoRepo.NewPatientRepository(db, cfg.DB.Timeout),
			doctors:   mongoRepo.NewDoctorRepository(db, cfg.DB.Timeout),
			auditLogs: mongoRepo.NewAuditLogRepository(db, cfg.DB.Timeout),
		}, nil

	default:
		db, err := database.NewPostgresConnection(cfg.DB, app.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		app.Log.Info("Database connected successfully")

		if err := database.ApplyMigrations(db); err != nil {
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		app.Log.Info("Migrations applied successfully")

		return &repositories{
			patients:  gormRepo.NewPatientRepository(db, cfg.DB.Timeout),
			doctors:   gormRepo.NewDoctorRepository(db, cfg.DB.Timeout),
			auditLogs: gormRepo.NewAuditLogRepository(db, cfg.DB.Timeout),
		}, nil
	}
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(cfg *config.Config, repos *repositories, profileCache repository.ProfileCache) *http.Server {
	log := app.Log
	devMode := cfg.App.IsDevelopment()

	jwtService := jwt.NewJWTService(cfg.JWT)
	hasher := password.NewHasher(cfg.Hash.Cost, cfg.Hash.Concurrency)

	// Handlers and the registration validator share one validator instance.
	customValidator := validator.NewValidator()

	// Initialize services
	auditService := service.NewAuditService(log, repos.auditLogs)

	// Initialize usecases
	registration := usecase.NewRegistrationValidator(log, customValidator, repos.patients, time.Now)
	authUsecase := usecase.NewAuthUsecase(
		log,
		repos.patients,
		repos.doctors,
		registration,
		hasher,
		jwtService,
		auditService,
		app.Publisher,
		profileCache,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, devMode)
	doctorHandler := handler.NewDoctorHandler(authUsecase, customValidator, devMode)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUsecase, devMode)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.ClientURL)

	// Initialize router
	router := deliveryHttp.NewRouter(log, authHandler, doctorHandler, authMiddleware, corsMiddleware)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close releases every connection that was opened.
func (app *App) Close() {
	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			app.Log.Warnf("Failed to close event publisher: %+v", err)
		}
	}

	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.MongoClient.Disconnect(ctx); err != nil {
			app.Log.Warnf("Failed to disconnect MongoDB: %+v", err)
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
