package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/user/movieadmin/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 内存 sqlite，建好全部表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

// testOplog 测试用操作日志
func testOplog(reason string) *model.OperationLog {
	return &model.OperationLog{
		AdminID:   1,
		IP:        "127.0.0.1",
		Reason:    reason,
		CreatedAt: time.Now(),
	}
}

func oplogCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.OperationLog{}).Count(&count).Error)
	return count
}
