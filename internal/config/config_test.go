package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func validConfig() Config {
	return Config{
		Server:  ServerConfig{GRPCPort: 50051},
		Storage: StorageConfig{Backend: BackendRedis, RedisAddr: "localhost:6379"},
		LevelUp: LevelUpConfig{DraftTTL: 30 * time.Minute},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		SRD:     SRDConfig{BaseURL: "https://www.dnd5eapi.co/api/2014/", Timeout: 30 * time.Second},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Server.GRPCPort)
	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, 30*time.Minute, cfg.LevelUp.DraftTTL)
	assert.Equal(t, 30*time.Second, cfg.SRD.Timeout)
	assert.Equal(t, slog.LevelInfo, cfg.Logging.SlogLevel())
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := validConfig()
	cfg.Server.GRPCPort = 0
	cfg.Storage.Backend = "postgres"
	cfg.LevelUp.DraftTTL = 0
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "console"
	cfg.SRD.Timeout = -time.Second

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Len(t, fields, 6)
	for _, key := range []string{
		"server.grpc_port", "storage.backend", "levelup.draft_ttl",
		"logging.level", "logging.format", "srd.timeout",
	} {
		assert.Contains(t, fields, key)
	}
}

func TestBackendRequiresItsSetting(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.RedisAddr = ""
	assert.ErrorContains(t, cfg.Validate(), "storage.redis_addr")

	cfg = validConfig()
	cfg.Storage = StorageConfig{Backend: BackendSQLite}
	assert.ErrorContains(t, cfg.Validate(), "storage.sqlite_path")

	cfg.Storage.SQLitePath = "sheet.db"
	assert.NoError(t, cfg.Validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SHEET_STORAGE_BACKEND", "sqlite")
	t.Setenv("SHEET_STORAGE_SQLITE_PATH", "/tmp/sheet.db")
	t.Setenv("SHEET_LEVELUP_DRAFT_TTL", "5m")
	t.Setenv("SHEET_LOGGING_LEVEL", "debug")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/sheet.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 5*time.Minute, cfg.LevelUp.DraftTTL)
	assert.Equal(t, slog.LevelDebug, cfg.Logging.SlogLevel())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  grpc_port: 9090
logging:
  format: json
levelup:
  draft_ttl: 1h
`), 0o600))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.GRPCPort)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, time.Hour, cfg.LevelUp.DraftTTL)
	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPortRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		port := rapid.IntRange(1, 65535).Draw(t, "port")
		cfg := validConfig()
		cfg.Server.GRPCPort = port
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid port %d rejected: %v", port, err)
		}
	})

	rapid.Check(t, func(t *rapid.T) {
		port := rapid.OneOf(
			rapid.IntRange(-1000, 0),
			rapid.IntRange(65536, 100000),
		).Draw(t, "port")
		cfg := validConfig()
		cfg.Server.GRPCPort = port
		if err := cfg.Validate(); err == nil {
			t.Fatalf("invalid port %d accepted", port)
		}
	})
}
