package service

import (
	"context"
	"creator_insight_backend/internal/model"
	"creator_insight_backend/pkg/database"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB 返回已迁移的内存数据库，seed 为 true 时写入演示数据
func openTestDB(t *testing.T, seed bool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库每个连接各自独立
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	if seed {
		require.NoError(t, database.Seed(context.Background(), db))
	}
	return db
}

func demoCreatorID(t *testing.T, db *gorm.DB) string {
	t.Helper()
	var creator model.Creator
	require.NoError(t, db.First(&creator).Error)
	return creator.ID
}
