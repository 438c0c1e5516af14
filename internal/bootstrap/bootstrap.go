package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/feedbackd/internal/app/controllers"
	appMigrations "github.com/yigit/feedbackd/internal/app/migrations"
	appRepos "github.com/yigit/feedbackd/internal/app/repositories"
	appRoutes "github.com/yigit/feedbackd/internal/app/routes"
	appServices "github.com/yigit/feedbackd/internal/app/services"
	"github.com/yigit/feedbackd/internal/app/views"
	"github.com/yigit/feedbackd/internal/config"
	"github.com/yigit/feedbackd/internal/db"
	appMiddleware "github.com/yigit/feedbackd/internal/middleware"
	pkgAuth "github.com/yigit/feedbackd/internal/pkg/auth"
	"github.com/yigit/feedbackd/internal/pkg/logger"
	"github.com/yigit/feedbackd/internal/pkg/metrics"
	"github.com/yigit/feedbackd/internal/pkg/session"
	"github.com/yigit/feedbackd/internal/seed"
)

// Pinger reports whether the store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthController      *appControllers.AuthController
	FeedbackController  *appControllers.FeedbackController
	DashboardController *appControllers.DashboardController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	DB                  Pinger
	Logger              zerolog.Logger
}

// Repositories is the set of stores the services are built on
type Repositories struct {
	Students appRepos.IStudentRepository
	Faculty  appRepos.IFacultyRepository
	Teachers appRepos.ITeacherRepository
	Feedback appRepos.IFeedbackRepository
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, applies the embedded schema and, when enabled,
// inserts the demo data.
func SetupDatabase(ctx context.Context, cfg *config.Config, verifier pkgAuth.PasswordVerifier, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg.Database, cfg.GetPostgresConnectionString())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := appMigrations.NewMigrator(database.Pool).Up(ctx); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Schema bootstrap failed")
		return nil, fmt.Errorf("schema bootstrap failed: %w", err)
	}

	if cfg.Database.SeedDemo {
		if err := seed.CreateDemoData(ctx, database, verifier, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes services, controllers and middleware over repos.
func BuildDependencies(cfg *config.Config, repos Repositories, verifier pkgAuth.PasswordVerifier, pinger Pinger, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr, DB: pinger}

	authService := appServices.NewAuthService(repos.Students, repos.Faculty, verifier, lgr.With().Str("component", "auth").Logger())
	feedbackService := appServices.NewFeedbackService(repos.Teachers, repos.Feedback, cfg.Feedback.Semester, lgr.With().Str("component", "feedback").Logger())
	dashboardService := appServices.NewDashboardService(repos.Teachers, repos.Feedback, lgr.With().Str("component", "dashboard").Logger())

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(appControllers.LoginPath, lgr)

	deps.AuthController = appControllers.NewAuthController(authService, lgr)
	deps.FeedbackController = appControllers.NewFeedbackController(feedbackService, lgr)
	deps.DashboardController = appControllers.NewDashboardController(dashboardService, lgr)

	return deps
}

// PostgresRepositories adapts the pgx repositories to the Repositories set
func PostgresRepositories(database *db.PostgresDB) Repositories {
	r := appRepos.NewRepositories(database.Pool)
	return Repositories{
		Students: r.StudentRepository,
		Faculty:  r.FacultyRepository,
		Teachers: r.TeacherRepository,
		Feedback: r.FeedbackRepository,
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))
	router.Use(session.Middleware(session.Options{
		Name:   cfg.Session.Name,
		Secret: cfg.Session.Secret,
		MaxAge: cfg.SessionMaxAge(),
		Secure: cfg.Session.Secure,
	}))

	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.FeedbackController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	router.GET("/healthz", healthHandler(deps.DB))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router, nil
}

func healthHandler(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinger == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := pinger.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
