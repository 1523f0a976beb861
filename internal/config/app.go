package config

import (
	"log"
	"os"
	"strconv"
)

const defaultJWTSecret = "your-secret-key"

// AppConfig holds server settings read from the environment
type AppConfig struct {
	Port               string
	JWTSecret          string
	JWTExpirationHours int64
	RedisURL           string // empty disables auth rate limiting
	AuthRateLimit      int    // requests per minute per client IP
}

// LoadAppConfig reads server settings, applying defaults for anything unset or malformed
func LoadAppConfig() *AppConfig {
	cfg := &AppConfig{
		Port:               getEnv("PORT", "5000"),
		JWTSecret:          getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpirationHours: 24,
		RedisURL:           os.Getenv("REDIS_URL"),
		AuthRateLimit:      20,
	}

	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("WARNING: JWT_SECRET not set, using the development default")
	}

	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		hours, err := strconv.ParseInt(v, 10, 64)
		if err != nil || hours <= 0 {
			log.Printf("Invalid JWT_EXPIRATION_HOURS %q, defaulting to 24", v)
		} else {
			cfg.JWTExpirationHours = hours
		}
	}

	if v := os.Getenv("AUTH_RATE_LIMIT_PER_MINUTE"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			log.Printf("Invalid AUTH_RATE_LIMIT_PER_MINUTE %q, defaulting to 20", v)
		} else {
			cfg.AuthRateLimit = limit
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
