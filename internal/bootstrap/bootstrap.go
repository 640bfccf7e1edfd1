package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/studyhub/backend/internal/app/controllers"
	appMigrations "github.com/studyhub/backend/internal/app/migrations"
	appRepos "github.com/studyhub/backend/internal/app/repositories"
	appRoutes "github.com/studyhub/backend/internal/app/routes"
	appServices "github.com/studyhub/backend/internal/app/services"
	"github.com/studyhub/backend/internal/config"
	"github.com/studyhub/backend/internal/db"
	appMiddleware "github.com/studyhub/backend/internal/middleware"
	pkgAuth "github.com/studyhub/backend/internal/pkg/auth"
	"github.com/studyhub/backend/internal/pkg/drive"
	"github.com/studyhub/backend/internal/pkg/filestorage"
	"github.com/studyhub/backend/internal/pkg/logger"
	"github.com/studyhub/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	TokenService         *pkgAuth.TokenService
	AuthMiddleware       *appMiddleware.AuthMiddleware
	FileStorage          *filestorage.LocalStorage
	AuthController       *appControllers.AuthController
	ResultController     *appControllers.ResultController
	FutureTestController *appControllers.FutureTestController
	EvaluationController *appControllers.EvaluationController
	ChatController       *appControllers.ChatController
	DirectoryController  *appControllers.DirectoryController
	ResourceController   *appControllers.ResourceController
	PageController       *appControllers.PageController
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; real deployments set variables directly
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Demo accounts are a convenience, not a startup requirement
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Resources.CacheDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize resource cache")
		return nil, fmt.Errorf("failed to initialize resource cache: %w", err)
	}

	deps.TokenService = pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		SecretKey: cfg.JWT.Secret,
		TokenExp:  cfg.TokenExpiration(),
		Issuer:    cfg.JWT.Issuer,
	})

	authService := appServices.NewAuthService(deps.Repos.Students, deps.Repos.Instructors, deps.TokenService, lgr)
	resultService := appServices.NewResultService(deps.Repos.Results, deps.Repos.Students, lgr)
	futureTestService := appServices.NewFutureTestService(deps.Repos.FutureTests, deps.Repos.Instructors, lgr)
	evaluationService := appServices.NewEvaluationService(deps.Repos.Evaluations, deps.Repos.Students, deps.Repos.Instructors, lgr)
	chatService := appServices.NewChatService(deps.Repos.Chat, lgr)
	directoryService := appServices.NewDirectoryService(deps.Repos.Students, deps.Repos.Instructors)
	resourceService := appServices.NewResourceService(
		deps.FileStorage,
		drive.NewClient(cfg.Resources.DriveBaseURL),
		cfg.Resources.Catalog,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.TokenService)

	deps.AuthController = appControllers.NewAuthController(authService, lgr)
	deps.ResultController = appControllers.NewResultController(resultService, lgr)
	deps.FutureTestController = appControllers.NewFutureTestController(futureTestService, lgr)
	deps.EvaluationController = appControllers.NewEvaluationController(evaluationService, lgr)
	deps.ChatController = appControllers.NewChatController(chatService, lgr)
	deps.DirectoryController = appControllers.NewDirectoryController(directoryService)
	deps.ResourceController = appControllers.NewResourceController(resourceService, lgr)
	deps.PageController = appControllers.NewPageController(cfg.Server.StaticDir)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ResultController,
		deps.FutureTestController,
		deps.EvaluationController,
		deps.ChatController,
		deps.DirectoryController,
		deps.ResourceController,
		deps.PageController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
