package database

import (
	"fmt"
	"log"
	"time"

	"terminal-terrace/mp-article/config"
	"terminal-terrace/mp-article/internal/model"
	pkgDatabase "terminal-terrace/mp-article/pkg/database"

	"gorm.io/gorm"
)

const serviceName = "mp-article"

var (
	DB      *gorm.DB
	RedisDB *pkgDatabase.RedisClient
)

func InitDatabase() {
	var err error
	DB, err = Open(config.Conf.Database)
	if err != nil {
		panic(err)
	}

	// Redis 只用于定时清理的互斥锁，未配置时跳过
	RedisDB, err = OpenRedis(config.Conf.Redis)
	if err != nil {
		panic(err)
	}
}

// Open 按配置的驱动打开数据库并迁移表结构
func Open(conf config.DatabaseConfig) (*gorm.DB, error) {
	// 设置默认日志级别
	logLevel := conf.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	var (
		db  *gorm.DB
		err error
	)
	switch conf.Driver {
	case "sqlite":
		db, err = pkgDatabase.InitSQLite(&pkgDatabase.SQLiteConfig{
			ServiceName: serviceName,
			Path:        conf.Path,
			LogLevel:    logLevel,
		})
	case "postgres", "":
		db, err = pkgDatabase.InitPostgres(&pkgDatabase.PostgresConfig{
			ServiceName:     serviceName,
			Username:        conf.Username,
			Password:        conf.Password,
			Host:            conf.Host,
			Port:            conf.Port,
			Database:        conf.Database,
			SSLMode:         conf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    conf.MaxIdleConns,
			MaxOpenConns:    conf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(conf.MaxLifetime) * time.Second,
		})
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", conf.Driver)
	}
	if err != nil {
		return nil, err
	}

	// 初始化数据库表
	if err := model.InitTable(db); err != nil {
		return nil, fmt.Errorf("初始化数据表失败: %w", err)
	}
	return db, nil
}

// OpenRedis Host 为空时返回 nil
func OpenRedis(conf config.RedisConfig) (*pkgDatabase.RedisClient, error) {
	if conf.Host == "" {
		log.Printf("[%s] 未配置 Redis，定时清理不加锁", serviceName)
		return nil, nil
	}

	return pkgDatabase.InitRedis(&pkgDatabase.RedisConfig{
		ServiceName: serviceName,
		Host:        conf.Host,
		Port:        conf.Port,
		Password:    conf.Password,
		DB:          conf.DB,
		PoolSize:    conf.PoolSize,
	})
}

// Close 关闭数据库与 Redis 连接
func Close() {
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if RedisDB != nil {
		RedisDB.Close()
	}
}
