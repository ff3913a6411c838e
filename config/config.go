// config/config.go - 配置管理文件
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
)

// AppConfig 应用配置结构
type AppConfig struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Log      LogConfig      `koanf:"log"`
	JWT      JWTConfig      `koanf:"jwt"`
	Article  ArticleConfig  `koanf:"article"`
	Cleanup  CleanupConfig  `koanf:"cleanup"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	GRPCPort     int           `koanf:"grpc_port"` // 0 表示不启动 gRPC
	Mode         string        `koanf:"mode"`      // debug, release, test
	FrontendURL  string        `koanf:"frontend_url"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type DatabaseConfig struct {
	Driver       string `koanf:"driver"` // postgres, sqlite
	Path         string `koanf:"path"`   // sqlite 文件路径
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"` // 数据库日志级别
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"` // 秒
}

// RedisConfig Host 为空时不连接 Redis
type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
}

type JWTConfig struct {
	Secret string `koanf:"secret"`
}

type ArticleConfig struct {
	TrueDelete bool `koanf:"true_delete"` // 删除时是否物理删除
}

type CleanupConfig struct {
	Schedule string `koanf:"schedule"` // cron 表达式，为空则不定时清理
	LockTTL  int    `koanf:"lock_ttl"` // 秒
}

// Load 加载配置文件
func Load(configPath string) error {
	var err error
	once.Do(func() {
		// 首先加载 .env 文件到环境变量
		if envErr := godotenv.Load(); envErr != nil {
			log.Printf("警告: 无法加载 .env 文件: %v", envErr)
		}

		Conf, err = Parse(configPath)
	})

	return err
}

// Parse 读取配置文件和环境变量，返回新的配置，不修改全局状态
func Parse(configPath string) (*AppConfig, error) {
	kk := koanf.New(".")

	if err := kk.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("加载配置文件失败: %w", err)
	}

	// APP_ 前缀环境变量，例如 APP_DATABASE_HOST -> database.host
	if err := kk.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "APP_")), "_", ".", -1)
	}), nil); err != nil {
		log.Printf("加载环境变量失败: %v", err)
	}

	loadCustomEnvVars(kk)

	conf := &AppConfig{}
	if err := kk.Unmarshal("", conf); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	conf.Server.ReadTimeout = conf.Server.ReadTimeout * time.Second
	conf.Server.WriteTimeout = conf.Server.WriteTimeout * time.Second
	applyDefaults(conf)

	if err := validateConfig(conf); err != nil {
		return nil, err
	}

	k = kk
	return conf, nil
}

// loadCustomEnvVars 加载简化的环境变量名
func loadCustomEnvVars(k *koanf.Koanf) {
	aliases := map[string]string{
		"DB_DRIVER":           "database.driver",
		"DB_PATH":             "database.path",
		"DB_HOST":             "database.host",
		"DB_PORT":             "database.port",
		"DB_USERNAME":         "database.username",
		"DB_PASSWORD":         "database.password",
		"DB_NAME":             "database.database",
		"DB_LOG_LEVEL":        "database.log_level",
		"REDIS_HOST":          "redis.host",
		"REDIS_PORT":          "redis.port",
		"REDIS_PASSWORD":      "redis.password",
		"JWT_SECRET":          "jwt.secret",
		"LOG_LEVEL":           "log.level",
		"FRONTEND_URL":        "server.frontend_url",
		"GIN_MODE":            "server.mode",
		"CLEANUP_SCHEDULE":    "cleanup.schedule",
		"ARTICLE_TRUE_DELETE": "article.true_delete",
	}
	for name, key := range aliases {
		if v := os.Getenv(name); v != "" {
			k.Set(key, v)
		}
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		k.Set("database.sslmode", v == "true")
	}
}

func applyDefaults(conf *AppConfig) {
	if conf.Server.Port == 0 {
		conf.Server.Port = 8080
	}
	if conf.Server.FrontendURL == "" {
		conf.Server.FrontendURL = "http://localhost:5173"
	}
	if conf.Database.Driver == "" {
		conf.Database.Driver = "postgres"
	}
	if conf.Cleanup.LockTTL == 0 {
		conf.Cleanup.LockTTL = 600
	}
}

// validateConfig 验证配置的有效性
func validateConfig(conf *AppConfig) error {
	switch conf.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", conf.Database.Driver)
	}

	if conf.Database.Driver == "postgres" && conf.Database.Password == "" {
		log.Println("⚠️  Warning: database.password is empty, please set DB_PASSWORD environment variable")
	}

	// HMAC 密钥必填
	if conf.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret 不能为空，请设置 JWT_SECRET 环境变量")
	}

	return nil
}

// MustLoad 加载配置，失败则退出
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
}

// GetString 获取字符串配置
func GetString(key string) string {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.String(key)
}

// GetInt 获取整数配置
func GetInt(key string) int {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.Int(key)
}

// GetBool 获取布尔配置
func GetBool(key string) bool {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.Bool(key)
}
