package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB (primary backend)
	MongoURL     string
	MongoDB      string
	MongoTimeout time.Duration

	// Flat-file fallback (secondary backend)
	DataDir string

	// CORS
	CORSAllowedOrigins string // comma-separated

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
		AppName: getenv("APP_NAME", "wedding-cards-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURL:     getenv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:      getenv("DB_NAME", "wedding_cards"),
		MongoTimeout: getdur("MONGO_TIMEOUT", 5*time.Second),

		DataDir: getenv("DATA_DIR", "data"),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// UsersFile is the secondary-backend file for the users collection.
func (c *Config) UsersFile() string {
	return filepath.Join(c.DataDir, "users.json")
}

// WeddingsFile is the secondary-backend file for the weddings collection.
func (c *Config) WeddingsFile() string {
	return filepath.Join(c.DataDir, "weddings.json")
}

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
