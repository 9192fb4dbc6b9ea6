package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `server:
  host: 127.0.0.1
  port: 4000
  env: dev
database:
  url: postgres://localhost:5432/shopvid?sslmode=disable
storage:
  bucket: clips
  region: eu-central-1
  access_key: AKIATEST
  secret_key: secret
shopify:
  api_key: client-id
  api_secret: client-secret
  admin_token: admin-token
`

func loadFromYAML(t *testing.T, content string) *Config {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DATABASE_URL", "")
	t.Setenv("CONFIG_PATH", path)

	AppConfig = nil
	LoadConfig()
	return AppConfig
}

func TestLoadConfig_YAMLDefaults(t *testing.T) {
	cfg := loadFromYAML(t, minimalYAML)

	// A config that omits the optional sections still yields a working
	// upload limit; a zero max size would reject every file as oversized
	assert.Equal(t, int64(100*1024*1024), cfg.Upload.MaxSize)
	assert.Contains(t, cfg.Upload.AllowedTypes, "video/mp4")
	assert.Equal(t, "s3", cfg.Storage.Type)
	assert.Equal(t, 60, cfg.Storage.SignTTLSeconds)
	assert.Equal(t, "2024-01", cfg.Shopify.APIVersion)
}

func TestLoadConfig_YAMLExplicitValuesKept(t *testing.T) {
	cfg := loadFromYAML(t, minimalYAML+`upload:
  max_size: 1048576
  allowed_types: [video/webm]
`)

	assert.Equal(t, int64(1048576), cfg.Upload.MaxSize)
	assert.Equal(t, []string{"video/webm"}, cfg.Upload.AllowedTypes)
}

func TestLoadConfig_EnvMode(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/shopvid_test?sslmode=disable")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("AWS_BUCKET", "clips")
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("STORAGE_SIGN_TTL", "")
	t.Setenv("SHOPIFY_API_VERSION", "")

	AppConfig = nil
	LoadConfig()
	cfg := AppConfig

	assert.Equal(t, "postgres://localhost:5432/shopvid_test?sslmode=disable", cfg.Database.DSN)

	// Env mode shares the same defaults as yaml mode
	assert.Equal(t, int64(100*1024*1024), cfg.Upload.MaxSize)
	assert.Equal(t, "s3", cfg.Storage.Type)
	assert.Equal(t, 60, cfg.Storage.SignTTLSeconds)
	assert.Equal(t, "2024-01", cfg.Shopify.APIVersion)
}
