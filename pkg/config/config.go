package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// ContentBackend selects the content repository: api, sqlite or postgres.
	ContentBackend string
	ContentAPIURL  string
	ContentProject string
	ContentDataset string
	SQLitePath     string
	PostgresDSN    string

	// CartBackend selects the cart slot: redis, file or memory.
	CartBackend  string
	RedisAddr    string
	CartStateDir string

	ImageCDNBase string
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		ContentBackend: getEnv("CONTENT_BACKEND", "sqlite"),
		ContentAPIURL:  getEnv("CONTENT_API_URL", ""),
		ContentProject: getEnv("CONTENT_PROJECT", "57dexdgi"),
		ContentDataset: getEnv("CONTENT_DATASET", "production"),
		SQLitePath:     getEnv("SQLITE_PATH", "storefront.db"),
		PostgresDSN:    getEnv("POSTGRES_DSN", ""),

		CartBackend:  getEnv("CART_BACKEND", "file"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		CartStateDir: getEnv("CART_STATE_DIR", ".state"),

		ImageCDNBase: getEnv("IMAGE_CDN_BASE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
