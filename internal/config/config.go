// Package config loads server settings from flags, SHEET_* environment
// variables and an optional config file
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const EnvPrefix = "SHEET"

const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

type ServerConfig struct {
	GRPCPort int `mapstructure:"grpc_port"`
}

type StorageConfig struct {
	// Backend is "redis" or "sqlite"
	Backend    string `mapstructure:"backend"`
	RedisAddr  string `mapstructure:"redis_addr"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type LevelUpConfig struct {
	// DraftTTL bounds how long an unfinished level up is kept
	DraftTTL time.Duration `mapstructure:"draft_ttl"`
}

type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is text or json
	Format string `mapstructure:"format"`
}

type SRDConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Config is the full server configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	LevelUp LevelUpConfig `mapstructure:"levelup"`
	Logging LoggingConfig `mapstructure:"logging"`
	SRD     SRDConfig     `mapstructure:"srd"`
}

// Validate reports every violation at once
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.GRPCPort < 1 || c.Server.GRPCPort > 65535 {
		vb.Fieldf("server.grpc_port", "must be 1-65535, got %d", c.Server.GRPCPort)
	}

	switch c.Storage.Backend {
	case BackendRedis:
		if c.Storage.RedisAddr == "" {
			vb.Field("storage.redis_addr", "is required for the redis backend")
		}
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			vb.Field("storage.sqlite_path", "is required for the sqlite backend")
		}
	default:
		vb.Fieldf("storage.backend", "must be one of [redis, sqlite], got %q", c.Storage.Backend)
	}

	if c.LevelUp.DraftTTL <= 0 {
		vb.Fieldf("levelup.draft_ttl", "must be positive, got %s", c.LevelUp.DraftTTL)
	}

	if _, ok := levels[c.Logging.Level]; !ok {
		vb.Fieldf("logging.level", "must be one of [debug, info, warn, error], got %q", c.Logging.Level)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		vb.Fieldf("logging.format", "must be one of [text, json], got %q", c.Logging.Format)
	}

	if c.SRD.Timeout < 0 {
		vb.Field("srd.timeout", "must not be negative")
	}

	return vb.Build()
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured level, info when unknown
func (l LoggingConfig) SlogLevel() slog.Level {
	if level, ok := levels[l.Level]; ok {
		return level
	}
	return slog.LevelInfo
}

// NewViper returns a viper instance with defaults and SHEET_* env binding
// (SHEET_STORAGE_BACKEND overrides storage.backend)
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// SetDefaults installs the default for every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc_port", 50051)

	v.SetDefault("storage.backend", BackendRedis)
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.sqlite_path", "sheet.db")

	v.SetDefault("levelup.draft_ttl", "30m")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("srd.base_url", "https://www.dnd5eapi.co/api/2014/")
	v.SetDefault("srd.timeout", "30s")
}

// Load reads the optional config file, then decodes and validates v
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
