package config

import (
	"log"
	"os"
)

// The fallback secret mirrors the original deployment default. Shipping with it
// unset is a known weakness, so we shout about it at startup instead of refusing
// to boot.
const insecureDefaultSecret = "your-secret-key-change-in-production"

// Config holds everything the process reads from the environment. It is built
// once in main and passed by reference into the pieces that need it, so no
// handler ever reaches into os.Getenv on its own.
type Config struct {
	DatabasePath string
	JWTSecret    string
	Host         string
	Port         string
}

func Load() *Config {
	cfg := &Config{
		DatabasePath: getEnv("DB_PATH", "baaje_electronics.db"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "8000"),
	}

	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set. Falling back to the insecure default — do NOT run production like this.")
		cfg.JWTSecret = insecureDefaultSecret
	}

	return cfg
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
