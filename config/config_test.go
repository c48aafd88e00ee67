package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "wedding-cards-api", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "wedding_cards", cfg.MongoDB)
	assert.Equal(t, 5*time.Second, cfg.MongoTimeout)
	assert.Equal(t, "data", cfg.DataDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("MONGO_TIMEOUT", "2s")
	t.Setenv("DATA_DIR", "/tmp/cards")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURL)
	assert.Equal(t, 2*time.Second, cfg.MongoTimeout)
	assert.Equal(t, filepath.Join("/tmp/cards", "users.json"), cfg.UsersFile())
	assert.Equal(t, filepath.Join("/tmp/cards", "weddings.json"), cfg.WeddingsFile())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MONGO_TIMEOUT", "soon")
	t.Setenv("HTTP_LOG_ENABLED", "maybe")

	cfg := Load()
	assert.Equal(t, 5*time.Second, cfg.MongoTimeout)
	assert.False(t, cfg.HTTPLogEnabled)
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.example , ,http://b.example")

	cfg := Load()
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins())
}
