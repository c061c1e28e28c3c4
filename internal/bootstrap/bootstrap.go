package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tpcell/launchpad/internal/app/controllers"
	"github.com/tpcell/launchpad/internal/app/migrations"
	"github.com/tpcell/launchpad/internal/app/repositories"
	"github.com/tpcell/launchpad/internal/app/routes"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/config"
	"github.com/tpcell/launchpad/internal/db"
	"github.com/tpcell/launchpad/internal/middleware"
	"github.com/tpcell/launchpad/internal/pkg/auth"
	"github.com/tpcell/launchpad/internal/pkg/filestorage"
	"github.com/tpcell/launchpad/internal/pkg/helpers"
	"github.com/tpcell/launchpad/internal/pkg/logger"
	"github.com/tpcell/launchpad/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *repositories.Repositories
	JWTService     *auth.JWTService
	FileStorage    *filestorage.LocalStorage
	AuthMiddleware *middleware.AuthMiddleware
	Controllers    *routes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// seeds the default staff account
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

	lgr.Info().Msg("Running database migrations...")
	migrator := migrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(dbPool)

	// Purge refresh tokens past their expiry; revoked-but-live tokens stay
	// for the logout audit trail.
	if removed, err := deps.Repos.Token.DeleteExpired(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to purge expired refresh tokens")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Purged expired refresh tokens")
	}

	// File URLs must match the static route mounted at /uploads
	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	authService := services.NewAuthService(deps.Repos.User, deps.Repos.Token, deps.JWTService)
	userService := services.NewUserService(deps.Repos.User, deps.FileStorage)
	skillService := services.NewSkillService(deps.Repos.Skill)
	projectService := services.NewProjectService(deps.Repos.Project)
	resumeService := services.NewResumeService(deps.Repos.Resume, deps.FileStorage)
	internshipService := services.NewInternshipService(deps.Repos.Internship, deps.FileStorage)
	jobPostService := services.NewJobPostService(deps.Repos.JobPost)
	applicationService := services.NewApplicationService(deps.Repos.Application, deps.Repos.JobPost, deps.Repos.Resume)
	notificationService := services.NewNotificationService(deps.Repos.Notification)
	analyticsService := services.NewAnalyticsService(deps.Repos.Analytics)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = &routes.Controllers{
		Auth:         controllers.NewAuthController(authService, lgr),
		User:         controllers.NewUserController(userService, lgr),
		Skill:        controllers.NewSkillController(skillService, lgr),
		Project:      controllers.NewProjectController(projectService, lgr),
		Resume:       controllers.NewResumeController(resumeService, lgr),
		Internship:   controllers.NewInternshipController(internshipService, lgr),
		JobPost:      controllers.NewJobPostController(jobPostService, lgr),
		Application:  controllers.NewApplicationController(applicationService, lgr),
		Notification: controllers.NewNotificationController(notificationService, lgr),
		Analytics:    controllers.NewAnalyticsController(analyticsService, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	routes.SetupSwagger(router)
	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
