package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// DSN renders the pgx connection string.
func (d DatabaseConfig) DSN() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + strconv.Itoa(d.Port) + "/" + d.Name
}

type SecurityConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// Username/Password form the single configured identity accepted by the
	// authentication endpoint.
	Username string
	Password string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether event publishing is configured at all.
func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

type RedisConfig struct {
	Addr string
	TTL  time.Duration
}

func (r RedisConfig) Enabled() bool { return strings.TrimSpace(r.Addr) != "" }

type LoggingConfig struct {
	Level     string
	Format    string
	Directory string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Config is loaded once at process start and treated as read-only afterwards.
// Components receive the sections they need at construction time instead of
// reading the environment themselves.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Security  SecurityConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envString("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     envString("DB_HOST", "localhost"),
			Port:     envInt("DB_PORT", 5432),
			User:     envString("DB_USER", "postgres"),
			Password: envString("DB_PASSWORD", "postgres"),
			Name:     envString("DB_NAME", "eatza"),
		},
		Security: SecurityConfig{
			JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
			TokenTTL:  envDuration("JWT_TTL", 15*time.Minute),
			Username:  envString("AUTH_USERNAME", "user"),
			Password:  envString("AUTH_PASSWORD", "password"),
		},
		Kafka: KafkaConfig{
			Brokers: envList("KAFKA_BROKERS"),
			Topic:   envString("KAFKA_TOPIC", "search.entity.events"),
		},
		Redis: RedisConfig{
			Addr: envString("REDIS_ADDR", ""),
			TTL:  envDuration("REDIS_CACHE_TTL", 5*time.Minute),
		},
		Logging: LoggingConfig{
			Level:     envString("LOG_LEVEL", "info"),
			Format:    envString("LOG_FORMAT", "text"),
			Directory: envString("LOG_DIR", "./logs"),
		},
		RateLimit: RateLimitConfig{
			RPS:   envFloat("RATE_LIMIT_RPS", 20),
			Burst: envInt("RATE_LIMIT_BURST", 40),
		},
	}

	if cfg.Security.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func envList(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
