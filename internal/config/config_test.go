package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("RESEND_API_KEY", "re-test")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_STORE_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "techq")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "techq")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("ALLOWED_ORIGINS", "https://techq.co.za, https://www.techq.co.za,,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.LogStore.Driver)
	assert.Equal(t, "host=db port=5433 user=techq password=secret dbname=techq sslmode=disable", cfg.LogStore.DB.DSN)
	assert.Equal(t, []string{"https://techq.co.za", "https://www.techq.co.za"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "gpt-4o-mini", cfg.Chat.Model)
	assert.Equal(t, 500, cfg.Chat.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Chat.Temperature, 0.0001)
	assert.Equal(t, "Techqho@outlook.com", cfg.Email.BusinessInbox)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.Empty(t, cfg.Auth.ClientJWTSecret)
}

func TestLoadConfig_DatabaseURLWins(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/techq")
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost/techq", cfg.LogStore.DB.DSN)
}

func TestLoadConfig_SQLiteAndRedis(t *testing.T) {
	setRequired(t)

	t.Setenv("LOG_STORE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/log.db")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.LogStore.Driver)
	assert.Equal(t, "/tmp/log.db", cfg.LogStore.SQLite.Path)

	t.Setenv("LOG_STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, RedisConfig{Addr: "cache:6379", DB: 2}, cfg.LogStore.Redis)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing openai key", map[string]string{"OPENAI_API_KEY": "", "RESEND_API_KEY": "re"}},
		{"missing resend key", map[string]string{"OPENAI_API_KEY": "sk", "RESEND_API_KEY": ""}},
		{"unknown driver", map[string]string{"OPENAI_API_KEY": "sk", "RESEND_API_KEY": "re", "LOG_STORE_DRIVER": "mongo"}},
		{"bad db port", map[string]string{"OPENAI_API_KEY": "sk", "RESEND_API_KEY": "re", "LOG_STORE_DRIVER": "postgres", "DATABASE_URL": "", "DB_PORT": "x"}},
		{"bad timeout", map[string]string{"OPENAI_API_KEY": "sk", "RESEND_API_KEY": "re", "LOG_STORE_DRIVER": "sqlite", "UPSTREAM_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, ParseOrigins(""))
	assert.Equal(t, []string{"a", "b"}, ParseOrigins(" a ,b"))
}
