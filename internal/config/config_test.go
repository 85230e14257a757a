package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const sampleConfig = `
server:
  port: "8081"
  static_dir: "./static"
database:
  host: db.local
  user: iq
  dbname: iq_db
jwt:
  secret: file-secret
leaderboard:
  cache_ttl_sec: 5
`

func TestLoad_FromFileWithDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "./static", cfg.Server.StaticDir)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port, "порт по умолчанию")
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "migrations", cfg.Database.MigrationsPath)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 168, cfg.JWT.ExpirationHrs)
	assert.Equal(t, 5, cfg.Leaderboard.CacheTTLSec)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_EXPIRATIONHRS", "24")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 24, cfg.JWT.ExpirationHrs)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_USER", "postgres")
	t.Setenv("DATABASE_DBNAME", "iq")
	t.Setenv("JWT_SECRET", "s")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoad_RequiresSecret(t *testing.T) {
	_, err := Load(writeConfig(t, `
database:
  host: h
  user: u
  dbname: d
`))
	assert.Error(t, err)
}

func TestLoad_RequiresDatabase(t *testing.T) {
	_, err := Load(writeConfig(t, `
jwt:
  secret: s
`))
	assert.Error(t, err)
}

func TestPostgresConnectionString(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: "1", User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=disable", d.PostgresConnectionString())
}

func TestLoadDatabase_NoSecretNeeded(t *testing.T) {
	db, err := LoadDatabase(writeConfig(t, `
database:
  host: h
  user: u
  dbname: d
  migrations_path: db/migrations
`))
	require.NoError(t, err)
	assert.Equal(t, "h", db.Host)
	assert.Equal(t, "db/migrations", db.MigrationsPath)

	_, err = LoadDatabase(writeConfig(t, `
jwt:
  secret: s
`))
	assert.Error(t, err)
}
