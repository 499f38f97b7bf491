package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	catalogdomain "github.com/reelmedia/reel/internal/catalog/domain"
	userdomain "github.com/reelmedia/reel/internal/user/domain"
)

// NewTestDB opens an in-memory sqlite database with all tables
// migrated. Each call returns an isolated database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userdomain.User{},
		&catalogdomain.Movie{},
		&catalogdomain.Actor{},
		&catalogdomain.Genre{},
	))

	return db
}
