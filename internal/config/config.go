package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yigit/feedbackd/internal/pkg/apperrors"
	"github.com/yigit/feedbackd/internal/pkg/auth"
	"github.com/yigit/feedbackd/internal/pkg/helpers"
)

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port string `yaml:"port" env:"SERVER_PORT"`
	Mode string `yaml:"mode" env:"SERVER_MODE"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host            string `yaml:"host" env:"DB_HOST"`
	Port            string `yaml:"port" env:"DB_PORT"`
	User            string `yaml:"user" env:"DB_USER"`
	Password        string `yaml:"password" env:"DB_PASSWORD"`
	DBName          string `yaml:"dbname" env:"DB_NAME"`
	SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
	MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	SeedDemo        bool   `yaml:"seed_demo" env:"DB_SEED_DEMO"`
}

// SessionConfig holds the signed cookie session settings
type SessionConfig struct {
	Secret string `yaml:"secret" env:"SESSION_SECRET"`
	Name   string `yaml:"name" env:"SESSION_NAME"`
	MaxAge string `yaml:"max_age" env:"SESSION_MAX_AGE"`
	Secure bool   `yaml:"secure" env:"SESSION_SECURE"`
}

// AuthConfig selects how stored passwords are compared
type AuthConfig struct {
	PasswordMode string `yaml:"password_mode" env:"AUTH_PASSWORD_MODE"`
}

// FeedbackConfig holds the semester that new submissions are filed under
type FeedbackConfig struct {
	Semester string `yaml:"semester" env:"FEEDBACK_SEMESTER"`
}

// LoggingConfig holds zerolog settings
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// Config structure represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Auth     AuthConfig     `yaml:"auth"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables.
// A missing config file is not an error; defaults and the environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	setDefaults(cfg)

	if file, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Server.Port = "8080"
	cfg.Server.Mode = "development"

	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.DBName = "feedback"
	cfg.Database.SSLMode = "disable"
	cfg.Database.MaxIdleConns = 2
	cfg.Database.MaxOpenConns = 10
	cfg.Database.ConnMaxLifetime = "1h"

	cfg.Session.Name = "feedback_session"
	cfg.Session.MaxAge = "12h"

	cfg.Auth.PasswordMode = auth.ModePlaintext
	cfg.Feedback.Semester = "Fall 2024"

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
}

// Validate ensures that the configuration is usable
func (c *Config) Validate() error {
	var errs []error

	if c.Database.Host == "" {
		errs = append(errs, errors.New("database host is required"))
	}
	if c.Session.Secret == "" {
		errs = append(errs, errors.New("session secret is required"))
	}
	if c.Session.Name == "" {
		errs = append(errs, errors.New("session name is required"))
	}
	if _, err := time.ParseDuration(c.Session.MaxAge); err != nil {
		errs = append(errs, fmt.Errorf("invalid session max age: %w", err))
	}
	if _, err := time.ParseDuration(c.Database.ConnMaxLifetime); err != nil {
		errs = append(errs, fmt.Errorf("invalid connection max lifetime: %w", err))
	}
	if _, err := auth.NewPasswordVerifier(c.Auth.PasswordMode); err != nil {
		errs = append(errs, err)
	}
	if c.Feedback.Semester == "" {
		errs = append(errs, errors.New("feedback semester is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// SessionMaxAge returns the parsed session lifetime
func (c *Config) SessionMaxAge() time.Duration {
	return helpers.ParseDuration(c.Session.MaxAge, 12*time.Hour)
}

// IsProduction reports whether gin should run in release mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production" || c.Server.Mode == "release"
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     c.Database.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}
