package testutils

import (
	"testing"

	"gorm.io/gorm"

	"terminal-terrace/mp-article/internal/model"
	dbPkg "terminal-terrace/mp-article/pkg/database"
)

// SetupTestDB 创建一个独立的内存 SQLite 库并完成迁移
// 每个测试拥有自己的库，测试结束时自动关闭
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := dbPkg.InitSQLite(&dbPkg.SQLiteConfig{
		ServiceName: "mp-article-test",
		Path:        ":memory:",
		LogLevel:    "silent",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}
