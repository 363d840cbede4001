package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup and handed to app.New; nothing reads
// the environment after that.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr string
	RedisPwd  string

	WebOrigin string
	Port      string

	ListingCacheTTL time.Duration
	LogLevel        string
	LogFormat       string
	Seed            bool
}

// LoadEnv pulls in a local .env if present. Missing file is fine.
func LoadEnv() { _ = godotenv.Load() }

func Load() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	ttl := 30 * time.Second
	if d, err := time.ParseDuration(get("LISTING_CACHE_TTL", "30s")); err == nil {
		ttl = d
	}

	return Config{
		DBHost:     get("DB_HOST", "127.0.0.1"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     get("DB_NAME", "library"),
		DBPort:     get("DB_PORT", "5432"),

		RedisAddr: get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:  os.Getenv("REDIS_PASSWORD"),

		WebOrigin: get("WEB_ORIGIN", "http://localhost:3000"),
		Port:      get("PORT", "3001"),

		ListingCacheTTL: ttl,
		LogLevel:        get("LOG_LEVEL", "info"),
		LogFormat:       get("LOG_FORMAT", "text"),
		Seed:            strings.EqualFold(get("SEED", ""), "1") || strings.EqualFold(get("SEED", ""), "true"),
	}
}
