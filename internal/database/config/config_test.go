package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"DB_DRIVER", "DB_HOST", "DB_NAME", "DB_PATH", "DB_MIGRATE", "MIGRATIONS_PATH"} {
			t.Setenv(key, "")
		}

		cfg := LoadConfigFromEnv()

		assert.Equal(t, DriverPostgres, cfg.Driver)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, "attendize", cfg.DBName)
		assert.Equal(t, "teamreg.db", cfg.Path)
		assert.False(t, cfg.Migrate)
		assert.Equal(t, "migrations", cfg.MigrationsPath)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("sqlite", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("DB_PATH", "/tmp/teams.db")
		t.Setenv("DB_MIGRATE", "false")

		cfg := LoadConfigFromEnv()

		assert.Equal(t, DriverSQLite, cfg.Driver)
		assert.Equal(t, "/tmp/teams.db", cfg.Path)
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"postgres", Config{Driver: DriverPostgres, Host: "db", DBName: "attendize"}, false},
		{"postgres without host", Config{Driver: DriverPostgres, DBName: "attendize"}, true},
		{"sqlite", Config{Driver: DriverSQLite, Path: "teams.db"}, false},
		{"sqlite without path", Config{Driver: DriverSQLite}, true},
		{"sqlite with migrations", Config{Driver: DriverSQLite, Path: "teams.db", Migrate: true}, true},
		{"unknown driver", Config{Driver: "mysql"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(Config{
		Host: "db", User: "attendize", Password: "pw", DBName: "attendize",
		Port: "5432", SSLMode: "disable", TimeZone: "UTC",
	})

	assert.Equal(t, "host=db user=attendize password=pw dbname=attendize port=5432 sslmode=disable TimeZone=UTC", dsn)
}

func TestSanitizeError(t *testing.T) {
	cfg := Config{Password: "hunter2"}

	assert.NoError(t, SanitizeError(nil, cfg))

	err := SanitizeError(errors.New("auth failed for password=hunter2"), cfg)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "hunter2")
	assert.Contains(t, err.Error(), "***")
}

func TestLoadRetryConfigFromEnv(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "3")
	t.Setenv("DB_RETRY_INITIAL_DELAY", "100ms")
	t.Setenv("DB_RETRY_MAX_DELAY", "1s")
	t.Setenv("DB_RETRY_MULTIPLIER", "1.5")

	cfg := LoadRetryConfigFromEnv()

	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, time.Second, cfg.MaxDelay)
	assert.InDelta(t, 1.5, cfg.Multiplier, 0.0001)
	assert.NotEmpty(t, cfg.RetryableErrors)
}
