package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort string

	StoreDriver string
	DataDir     string
	SQLitePath  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RabbitURL string

	CatalogFile      string
	Timezone         string
	CarouselInterval time.Duration
	LogLevel         string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("STORE_DRIVER", "memory")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("SQLITE_PATH", "./data/campus.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "campus_db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("CATALOG_FILE", "")
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("CAROUSEL_INTERVAL", "5s")
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment")
	}
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServerPort:       v.GetString("SERVER_PORT"),
		StoreDriver:      v.GetString("STORE_DRIVER"),
		DataDir:          v.GetString("DATA_DIR"),
		SQLitePath:       v.GetString("SQLITE_PATH"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		RabbitURL:        v.GetString("RABBITMQ_URL"),
		CatalogFile:      v.GetString("CATALOG_FILE"),
		Timezone:         v.GetString("TIMEZONE"),
		CarouselInterval: v.GetDuration("CAROUSEL_INTERVAL"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// Location resolves Timezone; an unknown zone falls back to the local zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.WithError(err).Warnf("unknown timezone %q, using local time", c.Timezone)
		return time.Local
	}
	return loc
}
