package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.GetHost())
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime())
	assert.Equal(t, 30*time.Second, cfg.Database.ConnMaxIdleTime())
	assert.Equal(t, "ap-southeast-1", cfg.SES.Region)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  host: 127.0.0.1
  port: 8080
database:
  url: postgres://localhost/intake
ses:
  region: us-east-1
  sender: noreply@aiya.ai
order_sync:
  url: https://sync.example.com/orders
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/intake", cfg.Database.URL)
	assert.Equal(t, "us-east-1", cfg.SES.Region)
	assert.Equal(t, "noreply@aiya.ai", cfg.SES.Sender)
	assert.Equal(t, "https://sync.example.com/orders", cfg.OrderSync.URL)
	// Defaults survive partial files
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/override")
	t.Setenv("AWS_SES_ACCESS_KEY", "AKIATEST")
	t.Setenv("AWS_SES_SECRET_KEY", "secret")
	t.Setenv("AWS_SES_REGION", "eu-west-1")
	t.Setenv("SENDER_EMAIL", "events@aiya.ai")
	t.Setenv("ORDER_SYNC_URL", "https://hooks.example.com/x")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://aiya.ai, https://www.aiya.ai")

	cfg, err := LoadFromEnv(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/override", cfg.Database.URL)
	assert.Equal(t, "AKIATEST", cfg.SES.AccessKey)
	assert.Equal(t, "secret", cfg.SES.SecretKey)
	assert.Equal(t, "eu-west-1", cfg.SES.Region)
	assert.Equal(t, "events@aiya.ai", cfg.SES.Sender)
	assert.Equal(t, "https://hooks.example.com/x", cfg.OrderSync.URL)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []string{"https://aiya.ai", "https://www.aiya.ai"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnvBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	_, err := LoadFromEnv(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.ErrorContains(t, cfg.Validate(), "database url")

	cfg.Database.URL = "postgres://localhost/intake"
	assert.ErrorContains(t, cfg.Validate(), "sender email")

	cfg.SES.Sender = "noreply@aiya.ai"
	assert.NoError(t, cfg.Validate())

	cfg.SES.Region = ""
	assert.ErrorContains(t, cfg.Validate(), "region")
}
