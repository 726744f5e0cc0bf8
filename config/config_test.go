package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Gateway.ID)
	assert.Empty(t, cfg.Gateway.Secret)
	assert.Equal(t, "https://gateway.gear.mycelium.com", cfg.Gateway.BaseURL)
	assert.Equal(t, "wss://gateway.gear.mycelium.com", cfg.Gateway.WebsocketURL)
	assert.Equal(t, "gear", cfg.Gateway.SignatureScheme)
	assert.Equal(t, 60*time.Second, cfg.Gateway.Timeout)
	assert.Zero(t, cfg.Gateway.RateLimit)
	assert.Equal(t, 1, cfg.Gateway.RateBurst)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Empty(t, cfg.Server.AdminToken)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, "/gear/callback", cfg.Callback.Path)
	assert.Equal(t, 24*time.Hour, cfg.Callback.DedupeTTL)
	assert.Equal(t, int64(120), cfg.Callback.RateLimit)
	assert.Equal(t, time.Minute, cfg.Callback.RateWindow)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
gateway:
  id: "gw-file"
  secret: "file-secret"
  base_url: "http://localhost:9999"
  signature_scheme: "hmac-sha256-hex"
  timeout: "5s"
  rate_limit: 2.5
  rate_burst: 4
server:
  host: "127.0.0.1"
  port: 9090
  mode: "debug"
  admin_token: "adm"
redis:
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
callback:
  path: "/hooks/gear"
  dedupe_ttl: "1h"
  rate_limit: 10
  rate_window: "30s"
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "gw-file", cfg.Gateway.ID)
	assert.Equal(t, "file-secret", cfg.Gateway.Secret)
	assert.Equal(t, "http://localhost:9999", cfg.Gateway.BaseURL)
	assert.Equal(t, "hmac-sha256-hex", cfg.Gateway.SignatureScheme)
	assert.Equal(t, 5*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, 2.5, cfg.Gateway.RateLimit)
	assert.Equal(t, 4, cfg.Gateway.RateBurst)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "adm", cfg.Server.AdminToken)

	assert.Equal(t, "redis.example.com:6380", cfg.Redis.Addr())
	assert.Equal(t, "redispwd", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.Equal(t, "/hooks/gear", cfg.Callback.Path)
	assert.Equal(t, time.Hour, cfg.Callback.DedupeTTL)
	assert.Equal(t, int64(10), cfg.Callback.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Callback.RateWindow)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GEAR_GATEWAY_ID", "env-gw")
	t.Setenv("GEAR_GATEWAY_SECRET", "env-secret")
	t.Setenv("GEAR_SERVER_PORT", "3000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-gw", cfg.Gateway.ID)
	assert.Equal(t, "env-secret", cfg.Gateway.Secret)
	assert.Equal(t, 3000, cfg.Server.Port)

	creds := cfg.Credentials()
	assert.Equal(t, "env-gw", creds.GatewayID)
	assert.Equal(t, "env-secret", creds.GatewaySecret)
}

func TestRedisConfig_Addr(t *testing.T) {
	redisCfg := RedisConfig{
		Host: "redis.local",
		Port: 6380,
	}

	assert.Equal(t, "redis.local:6380", redisCfg.Addr())
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"unknown server mode", "GEAR_SERVER_MODE", "production"},
		{"relative callback path", "GEAR_CALLBACK_PATH", "gear/callback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
