package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
)

// Config is loaded once at start-up and handed to every component explicitly.
type Config struct {
	Server   ServerConfig
	LogStore LogStoreConfig
	CORS     CORSConfig
	Chat     ChatConfig
	Email    EmailConfig
	Upstream UpstreamConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LogStoreConfig struct {
	Driver string
	DB     DBConfig
	SQLite SQLiteConfig
	Redis  RedisConfig
}

type DBConfig struct {
	Host    string
	Port    int
	User    string
	Pass    string
	Name    string
	SSLMode string
	DSN     string
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type ChatConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
}

type EmailConfig struct {
	APIKey          string
	BaseURL         string
	FromBusiness    string
	FromCustomer    string
	BusinessInbox   string
	BusinessContact string
}

type UpstreamConfig struct {
	Timeout time.Duration
}

// AuthConfig holds the optional shared secret for client tokens. An empty
// secret disables the check.
type AuthConfig struct {
	ClientJWTSecret string
}

func LoadConfig() (*Config, error) {
	logStore, err := loadLogStoreConfig()
	if err != nil {
		return nil, err
	}

	upstreamTimeout := 30 * time.Second
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		upstreamTimeout, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %v", err)
		}
	}

	chatConfig := ChatConfig{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		BaseURL:     os.Getenv("OPENAI_BASE_URL"),
		Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MaxTokens:   500,
		Temperature: 0.7,
	}
	if chatConfig.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is required")
	}

	emailConfig := EmailConfig{
		APIKey:          os.Getenv("RESEND_API_KEY"),
		BaseURL:         os.Getenv("RESEND_BASE_URL"),
		FromBusiness:    getEnv("CONTACT_FROM_BUSINESS", "Tech Q Contact Form <onboarding@resend.dev>"),
		FromCustomer:    getEnv("CONTACT_FROM_CUSTOMER", "Tech Q <onboarding@resend.dev>"),
		BusinessInbox:   getEnv("CONTACT_BUSINESS_INBOX", "Techqho@outlook.com"),
		BusinessContact: getEnv("CONTACT_BUSINESS_PHONE", "[Your Phone Number]"),
	}
	if emailConfig.APIKey == "" {
		return nil, errors.New("RESEND_API_KEY is required")
	}

	serverConfig := ServerConfig{
		Port:         getEnv("SERVER_PORT", "8080"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Config{
		Server:   serverConfig,
		LogStore: logStore,
		CORS:     CORSConfig{AllowedOrigins: ParseOrigins(os.Getenv("ALLOWED_ORIGINS"))},
		Chat:     chatConfig,
		Email:    emailConfig,
		Upstream: UpstreamConfig{Timeout: upstreamTimeout},
		Auth:     AuthConfig{ClientJWTSecret: os.Getenv("CLIENT_JWT_SECRET")},
	}, nil
}

func loadLogStoreConfig() (LogStoreConfig, error) {
	cfg := LogStoreConfig{Driver: strings.ToLower(getEnv("LOG_STORE_DRIVER", DriverPostgres))}

	switch cfg.Driver {
	case DriverPostgres:
		if url := os.Getenv("DATABASE_URL"); url != "" {
			cfg.DB.DSN = url
			return cfg, nil
		}
		dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
		if err != nil {
			return cfg, fmt.Errorf("invalid DB_PORT: %v", err)
		}
		cfg.DB = DBConfig{
			Host:    os.Getenv("DB_HOST"),
			Port:    dbPort,
			User:    os.Getenv("DB_USER"),
			Pass:    os.Getenv("DB_PASS"),
			Name:    os.Getenv("DB_NAME"),
			SSLMode: getEnv("DB_SSLMODE", "disable"),
		}
		cfg.DB.DSN = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Pass, cfg.DB.Name, cfg.DB.SSLMode,
		)
	case DriverSQLite:
		cfg.SQLite.Path = getEnv("SQLITE_PATH", "techq_requests.db")
	case DriverRedis:
		redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
		if err != nil {
			return cfg, fmt.Errorf("invalid REDIS_DB: %v", err)
		}
		cfg.Redis = RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		}
	default:
		return cfg, fmt.Errorf("unsupported LOG_STORE_DRIVER %q", cfg.Driver)
	}

	return cfg, nil
}

// ParseOrigins splits a comma-separated allow-list, dropping blank entries.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
