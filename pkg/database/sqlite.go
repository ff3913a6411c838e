package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLiteConfig SQLite 配置，用于本地开发和测试
type SQLiteConfig struct {
	ServiceName string
	Path        string // 数据库文件路径，":memory:" 表示内存库
	LogLevel    string
}

// InitSQLite 初始化 SQLite 连接
func InitSQLite(config *SQLiteConfig) (*gorm.DB, error) {
	if config == nil {
		return nil, fmt.Errorf("配置不能为空")
	}
	if config.Path == "" {
		config.Path = "data/articles.db"
	}

	if config.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(config.Path), 0o755); err != nil {
			return nil, fmt.Errorf("创建数据目录失败: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(config.Path), &gorm.Config{
		Logger: getLogger(config.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// SQLite 单写者，限制为一个连接避免 database is locked
	if err := configurePool(db, 1, 1, 0); err != nil {
		return nil, err
	}

	log.Printf("[%s] SQLite 连接成功 %s", serviceName(config.ServiceName), config.Path)
	return db, nil
}
