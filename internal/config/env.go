package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig is the API server's environment configuration.
type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string

	OpenMeteoBaseURL string
	WeatherCache     WeatherCacheConfig
	Redis            RedisConfig

	// DatabaseURL selects the Postgres analysis store; empty keeps results in memory.
	DatabaseURL string
	SitesFile   string
	SimWorkers  int
}

type WeatherCacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// RedisConfig selects the shared weather cache; empty Addr uses the in-process cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func LoadServer() *ServerConfig {
	// .env is optional
	_ = godotenv.Load()

	return &ServerConfig{
		Port:             getEnv("API_PORT", "8080"),
		Env:              getEnv("API_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		OpenMeteoBaseURL: getEnv("OPEN_METEO_BASE_URL", "https://archive-api.open-meteo.com/v1/archive"),
		WeatherCache: WeatherCacheConfig{
			Enabled: getEnvAsBool("ENABLE_WEATHER_CACHE", true),
			TTL:     getEnvAsDuration("WEATHER_CACHE_TTL", 6*time.Hour),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SitesFile:   getEnv("SITES_FILE", "data/sites.json"),
		SimWorkers:  getEnvAsInt("SIM_WORKERS", 0),
	}
}

func (c *ServerConfig) IsProduction() bool { return c.Env == "production" }

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}
