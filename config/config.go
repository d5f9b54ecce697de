package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment variables for the storefront.
type Config struct {
	Port         string
	Env          string
	DataDir      string
	StoreBackend string // file | memory | redis
	RedisURL     string
	JWTSecret    string
	CatalogDelay time.Duration
	SessionTTL   time.Duration
}

// Load reads the environment (and an optional .env file) into a Config.
func Load() Config {
	// .env is optional; system environment wins when both exist
	_ = godotenv.Load()

	return Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		StoreBackend: getEnv("STORE_BACKEND", "file"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-only-secret"),
		CatalogDelay: time.Duration(getEnvInt("CATALOG_DELAY_MS", 500)) * time.Millisecond,
		SessionTTL:   time.Hour * 24,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
