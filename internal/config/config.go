package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Env  string `validate:"required"`
	Port int    `validate:"min=1,max=65535"`

	StoreBackend string `validate:"oneof=memory redis postgres"`
	DBURL        string

	RedisURL      string
	RedisPassword string
	RedisDB       int `validate:"min=0"`
	// NotifyRedis also publishes toasts on redis pub/sub.
	NotifyRedis bool

	VisitorTokenSecret string `validate:"required,min=16"`
	VisitorTokenTTL    time.Duration

	CatalogTZ     string
	QueryLatency  time.Duration `validate:"min=0"`
	QueryCacheTTL time.Duration

	PublicBaseURL string `validate:"required,url"`
	CORSOrigins   []string

	RateLimit  int `validate:"min=0"`
	RateWindow time.Duration

	OTelEnabled  bool
	OTelEndpoint string
}

const devTokenSecret = "dev-visitor-secret-change-me"

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not load .env file", "err", err)
	}

	cfg := Config{
		Env:  getEnv("APP_ENV", "dev"),
		Port: getEnvInt("PORT", 8080),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", "memory")),
		DBURL:        buildDBURL(),

		RedisURL:      getEnv("REDIS_URL", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		NotifyRedis:   getEnvBool("NOTIFY_REDIS", false),

		VisitorTokenSecret: getEnv("VISITOR_TOKEN_SECRET", devTokenSecret),
		VisitorTokenTTL:    getEnvDuration("VISITOR_TOKEN_TTL", 720*time.Hour),

		CatalogTZ:     getEnv("CATALOG_TZ", "UTC"),
		QueryLatency:  getEnvDuration("QUERY_LATENCY", 0),
		QueryCacheTTL: getEnvDuration("QUERY_CACHE_TTL", 5*time.Second),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:5173"),
		CORSOrigins:   getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),

		RateLimit:  getEnvInt("RATE_LIMIT", 120),
		RateWindow: getEnvDuration("RATE_WINDOW", time.Minute),

		OTelEnabled:  getEnvBool("OTEL_ENABLED", false),
		OTelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Env == "prod" && c.VisitorTokenSecret == devTokenSecret {
		return errors.New("invalid config: VISITOR_TOKEN_SECRET must be set in prod")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: CATALOG_TZ: %w", err)
	}
	return nil
}

func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.CatalogTZ)
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func buildDBURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "videomatch")
	pass := getEnv("DB_PASSWORD", "videomatch")
	name := getEnv("DB_NAME", "videomatch")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid int in env, using fallback", "key", key, "value", v)
			return fallback
		}
		return num
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("invalid bool in env, using fallback", "key", key, "value", v)
			return fallback
		}
		return b
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration in env, using fallback", "key", key, "value", v)
			return fallback
		}
		return d
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
