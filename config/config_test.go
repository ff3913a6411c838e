package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9000
  read_timeout: 10
database:
  driver: sqlite
  path: ":memory:"
jwt:
  secret: yaml-secret
article:
  true_delete: false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	conf, err := Parse(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, 9000, conf.Server.Port)
	assert.Equal(t, 10*time.Second, conf.Server.ReadTimeout)
	assert.Equal(t, "sqlite", conf.Database.Driver)
	assert.Equal(t, "yaml-secret", conf.JWT.Secret)
	assert.False(t, conf.Article.TrueDelete)
	assert.Equal(t, 600, conf.Cleanup.LockTTL)
	assert.Equal(t, "http://localhost:5173", conf.Server.FrontendURL)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ARTICLE_TRUE_DELETE", "true")
	t.Setenv("APP_SERVER_PORT", "9100")

	conf, err := Parse(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", conf.JWT.Secret)
	assert.True(t, conf.Article.TrueDelete)
	assert.Equal(t, 9100, conf.Server.Port)
	assert.True(t, GetBool("article.true_delete"))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse(writeConfig(t, "database:\n  driver: mysql\njwt:\n  secret: s\n"))
	assert.Error(t, err)
}

func TestParseRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Parse(writeConfig(t, "database:\n  driver: sqlite\n  path: \":memory:\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")

	t.Setenv("JWT_SECRET", "from-env")
	conf, err := Parse(writeConfig(t, "database:\n  driver: sqlite\n  path: \":memory:\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", conf.JWT.Secret)
}

func TestSwaggerOptions(t *testing.T) {
	opts := DefaultSwaggerOptions()
	args := opts.args()

	assert.Equal(t, "github.com/swaggo/swag/cmd/swag@"+swagVersion, args[1])
	assert.Contains(t, strings.Join(args, " "), "-g cmd/server/main.go -o docs")

	// 入口文件不存在时不执行 swag
	opts.Entry = filepath.Join(t.TempDir(), "missing.go")
	err := GenerateSwagger(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.go")
}
