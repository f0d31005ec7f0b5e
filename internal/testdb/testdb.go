// Package testdb provides an in-memory database for service tests.
package testdb

import (
	"testing"

	"github.com/lumenshop/beacon/internal/models"
	gormzap "github.com/lumenshop/beacon/pkg/gormlog"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens a fresh in-memory sqlite database with the full schema migrated.
// The pool is capped at one connection so the in-memory database is shared
// across all queries in the test.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormzap.New(zap.NewNop().Sugar()),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Merchant{},
		&models.Subscription{},
		&models.PlanLimits{},
		&models.EventLog{},
		&models.AutomationRule{},
		&models.AutomationJob{},
		&models.UsageLog{},
		&models.CustomerProfile{},
		&models.CustomerSession{},
		&models.PushToken{},
	))
	return db
}
