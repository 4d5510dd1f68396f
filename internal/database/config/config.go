// Package config provides database configuration management.
package config

import (
	"fmt"
	"strings"

	appConfig "github.com/aerostudent/teamreg/internal/config"
	"github.com/aerostudent/teamreg/pkg/retry"
)

// Supported DB_DRIVER values.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database connection configuration.
type Config struct {
	// Driver is postgres for the ticketing database or sqlite for local runs.
	Driver   string
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
	// Path is the sqlite database file.
	Path string
	// Migrate applies the team migrations on start-up.
	Migrate        bool
	MigrationsPath string
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Driver:         appConfig.GetEnv("DB_DRIVER", DriverPostgres),
		Host:           appConfig.GetEnv("DB_HOST", "localhost"),
		User:           appConfig.GetEnv("DB_USER", "attendize"),
		Password:       appConfig.GetEnv("DB_PASSWORD", "attendize"),
		DBName:         appConfig.GetEnv("DB_NAME", "attendize"),
		Port:           appConfig.GetEnv("DB_PORT", "5432"),
		SSLMode:        appConfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone:       appConfig.GetEnv("DB_TIMEZONE", "UTC"),
		Path:           appConfig.GetEnv("DB_PATH", "teamreg.db"),
		Migrate:        appConfig.GetEnvBool("DB_MIGRATE", false),
		MigrationsPath: appConfig.GetEnv("MIGRATIONS_PATH", "migrations"),
	}
}

// Validate validates database configuration.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Host == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the %s driver", c.Driver)
		}
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("DB_PATH is required for the %s driver", c.Driver)
		}
		if c.Migrate {
			return fmt.Errorf("DB_MIGRATE is only supported with the %s driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER: %s (must be: %s, %s)", c.Driver, DriverPostgres, DriverSQLite)
	}
	return nil
}

// BuildDSN constructs PostgreSQL DSN string from configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// SanitizeError removes the password from connection error messages.
func SanitizeError(err error, cfg Config) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if cfg.Password != "" {
		msg = strings.ReplaceAll(msg, cfg.Password, "***")
	}
	return fmt.Errorf("failed to connect to database: %s", msg)
}

// LoadRetryConfigFromEnv loads the connection retry policy from environment variables.
func LoadRetryConfigFromEnv() retry.Config {
	cfg := retry.PostgresConfig()
	cfg.MaxAttempts = appConfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.InitialDelay = appConfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay)
	cfg.MaxDelay = appConfig.GetEnvDuration("DB_RETRY_MAX_DELAY", cfg.MaxDelay)
	cfg.Multiplier = appConfig.GetEnvFloat("DB_RETRY_MULTIPLIER", cfg.Multiplier)
	return cfg
}
