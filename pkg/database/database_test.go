package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDefaultsAndDSN(t *testing.T) {
	c := &PostgresConfig{Username: "mp", Password: "secret", Database: "articles"}
	setDefaults(c)

	assert.Equal(t, "localhost", c.Host)
	assert.Equal(t, 5432, c.Port)
	assert.Equal(t, 100, c.MaxOpenConns)
	assert.Equal(t, time.Hour, c.ConnMaxLifetime)
	assert.Equal(t,
		"host=localhost user=mp password=secret dbname=articles port=5432 sslmode=disable TimeZone=Asia/Shanghai",
		buildDSN(c))

	c.SSLMode = true
	assert.Contains(t, buildDSN(c), "sslmode=require")
}

func TestRedisDefaults(t *testing.T) {
	c := &RedisConfig{}
	setRedisDefaults(c)

	assert.Equal(t, "localhost", c.Host)
	assert.Equal(t, 6379, c.Port)
	assert.Equal(t, 4, c.PoolSize)

	c.Password = "pw"
	opts := redisOptions(c)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 30*time.Minute, opts.ConnMaxLifetime)
}

func TestInitSQLiteMemory(t *testing.T) {
	db, err := InitSQLite(&SQLiteConfig{ServiceName: "mp-article-test", Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	_, err = InitSQLite(nil)
	assert.Error(t, err)
}
