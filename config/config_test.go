package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, 5*time.Second, cfg.CarouselInterval)
	assert.Empty(t, cfg.RabbitURL)
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("CAROUSEL_INTERVAL", "250ms")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "campus")
	t.Setenv("TIMEZONE", "UTC")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, 250*time.Millisecond, cfg.CarouselInterval)
	assert.Equal(t, "host=db port=5432 user=postgres password=postgres dbname=campus sslmode=disable", cfg.DSN())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLocation_Unknown(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus"}
	assert.Equal(t, time.Local, cfg.Location())
}
