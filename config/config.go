package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// FallbackJWTSecret is used when JWT_SECRET is not set. The server still
// boots with it so local development works out of the box, but main logs a
// security warning. Never rely on it in production.
const FallbackJWTSecret = "your-secret-key"

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Version string
	Port    string
	GinMode string

	// JWT
	JWTSecret string
	TokenTTL  time.Duration

	// Redis (rate limiting; limiter is disabled when addr is empty)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CORS
	CORSAllowedOrigins string // comma-separated exact origins
	CORSOriginSuffix   string // e.g. ".vercel.app" allows every preview deployment

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "artify-backend"),
		Env:     getenv("APP_ENV", "development"),
		Version: getenv("APP_VERSION", "1.1.0"),
		Port:    getenv("PORT", "3001"),
		GinMode: getenv("GIN_MODE", "release"),

		JWTSecret: getenv("JWT_SECRET", ""),
		TokenTTL:  getdur("TOKEN_TTL", 168*time.Hour), // 7 days

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS",
			"https://artify-ruddy.vercel.app,http://localhost:3000,http://localhost:5173,http://127.0.0.1:5173,http://localhost:5500"),
		CORSOriginSuffix: getenv("CORS_ORIGIN_SUFFIX", ".vercel.app"),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),
	}
}

// SigningKey returns the configured JWT secret, falling back to the insecure
// default when unset.
func (c *Config) SigningKey() string {
	if c.JWTSecret != "" {
		return c.JWTSecret
	}
	return FallbackJWTSecret
}

// SecretConfigured reports whether JWT_SECRET was provided explicitly.
func (c *Config) SecretConfigured() bool { return c.JWTSecret != "" }

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
