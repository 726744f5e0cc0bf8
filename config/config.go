package config

import (
	"fmt"
	"strings"
	"time"

	"gear-client/internal/core/domain"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Callback CallbackConfig `mapstructure:"callback"`
	Log      LogConfig      `mapstructure:"log"`
}

// GatewayConfig identifies the gateway account and how to reach it.
type GatewayConfig struct {
	ID              string        `mapstructure:"id"`
	Secret          string        `mapstructure:"secret"`
	BaseURL         string        `mapstructure:"base_url"`
	WebsocketURL    string        `mapstructure:"websocket_url"`
	SignatureScheme string        `mapstructure:"signature_scheme"` // gear, hmac-sha256-hex
	Timeout         time.Duration `mapstructure:"timeout"`          // applied to the http.Client, not the library
	RateLimit       float64       `mapstructure:"rate_limit"`       // requests per second, 0 = unlimited
	RateBurst       int           `mapstructure:"rate_burst"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test

	// AdminToken enables the /api/v1/orders admin API when set.
	AdminToken string `mapstructure:"admin_token"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// CallbackConfig controls the callback endpoint of the host application.
type CallbackConfig struct {
	Path       string        `mapstructure:"path"`
	DedupeTTL  time.Duration `mapstructure:"dedupe_ttl"`
	RateLimit  int64         `mapstructure:"rate_limit"` // per client IP per window, 0 = disabled
	RateWindow time.Duration `mapstructure:"rate_window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Credentials returns the gateway credentials. Their presence is checked by
// the gateway client constructor.
func (c *Config) Credentials() domain.Credentials {
	return domain.Credentials{
		GatewayID:     c.Gateway.ID,
		GatewaySecret: c.Gateway.Secret,
	}
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: GEAR_.
// Nested keys use underscore: GEAR_GATEWAY_ID, GEAR_GATEWAY_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("gateway.id", "")
	v.SetDefault("gateway.secret", "")
	v.SetDefault("gateway.base_url", "https://gateway.gear.mycelium.com")
	v.SetDefault("gateway.websocket_url", "wss://gateway.gear.mycelium.com")
	v.SetDefault("gateway.signature_scheme", "gear")
	v.SetDefault("gateway.timeout", "60s")
	v.SetDefault("gateway.rate_limit", 0)
	v.SetDefault("gateway.rate_burst", 1)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.admin_token", "")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("callback.path", "/gear/callback")
	v.SetDefault("callback.dedupe_ttl", "24h")
	v.SetDefault("callback.rate_limit", 120)
	v.SetDefault("callback.rate_window", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: GEAR_GATEWAY_SECRET -> gateway.secret
	v.SetEnvPrefix("GEAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate rejects values the HTTP layer would otherwise panic on.
func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode %q: want debug, release or test", c.Server.Mode)
	}
	if !strings.HasPrefix(c.Callback.Path, "/") {
		return fmt.Errorf("callback.path %q must start with /", c.Callback.Path)
	}
	return nil
}
