package migrate

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func repoMigrations(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations")
}

func TestUp_Errors(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Run("nil database", func(t *testing.T) {
		assert.ErrorContains(t, Up(nil, "migrations", log), "database connection is nil")
	})

	t.Run("missing directory", func(t *testing.T) {
		err := Up(openSQLite(t), filepath.Join(t.TempDir(), "absent"), log)

		assert.ErrorContains(t, err, "migrations directory does not exist")
	})

	t.Run("not a postgres database", func(t *testing.T) {
		err := Up(openSQLite(t), repoMigrations(t), log)

		assert.Error(t, err)
	})
}

func TestMigrationFiles(t *testing.T) {
	dir := repoMigrations(t)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var ups, downs int
	for _, e := range entries {
		switch filepath.Ext(filepath.Base(e.Name()[:len(e.Name())-len(".sql")])) {
		case ".up":
			ups++
		case ".down":
			downs++
		}
	}

	assert.Equal(t, 2, ups)
	assert.Equal(t, ups, downs)
}
