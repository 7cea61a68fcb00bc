package config

import (
	"testing"
	"time"

	pkgRetry "github.com/futig/design-wizard/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("STORAGE_DRIVER", StorageMemory)
}

func TestParse_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 256, cfg.ExportCfg.CacheSize)
	assert.Equal(t, int64(1<<20), cfg.ExportCfg.MaxImportSize)
	assert.Equal(t, *pkgRetry.DefaultRetryConfig(), cfg.DBConnectRetry)
}

func TestParse_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("EXPORT_CACHE_SIZE", "4")
	t.Setenv("DB_CONNECT_RETRY_ATTEMPTS", "2")
	t.Setenv("DB_CONNECT_RETRY_DELAY", "10ms")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.ExportCfg.CacheSize)
	assert.Equal(t, uint(2), cfg.DBConnectRetry.Attempts)
	assert.Equal(t, 10*time.Millisecond, cfg.DBConnectRetry.Delay)
	assert.Equal(t, pkgRetry.DefaultRetryConfig().MaxDelay, cfg.DBConnectRetry.MaxDelay)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "postgres without url",
			env:  map[string]string{"STORAGE_DRIVER": StoragePostgres},
			want: "DATABASE_URL is required",
		},
		{
			name: "unknown driver",
			env:  map[string]string{"STORAGE_DRIVER": "sqlite"},
			want: "STORAGE_DRIVER must be postgres or memory",
		},
		{
			name: "zero cache",
			env:  map[string]string{"EXPORT_CACHE_SIZE": "0"},
			want: "EXPORT_CACHE_SIZE must be positive",
		},
		{
			name: "min above max conns",
			env:  map[string]string{"DB_MAX_CONNS": "2", "DB_MIN_CONNS": "3"},
			want: "DB_MIN_CONNS must be between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Parse()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_MissingRequired(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("STORAGE_DRIVER", StorageMemory)

	_, err := Parse()
	assert.Error(t, err)
}

func TestTelegramConfig_Validate(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	err = cfg.TelegramCfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN is required")

	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_RATE_LIMIT_BURST", "0")
	cfg, err = Parse()
	require.NoError(t, err, "bot settings never fail the server config")

	err = cfg.TelegramCfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_RATE_LIMIT_BURST")

	cfg.TelegramCfg.RateLimitBurst = 3
	assert.NoError(t, cfg.TelegramCfg.Validate())
	assert.Equal(t, 168*time.Hour, cfg.TelegramCfg.ChatTTL)
}

func TestGetEnvFile(t *testing.T) {
	assert.Equal(t, ".env.prod", getEnvFile("production"))
	assert.Equal(t, ".env.local", getEnvFile("dev"))
	assert.Equal(t, ".env.staging", getEnvFile("staging"))
}
