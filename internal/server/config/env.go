package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a .env
// file first if one is present (ok if missing in prod).
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString(&config.Addr, "INKWELL_ADDR")
	setString(&config.StoreDriver, "INKWELL_STORE_DRIVER")
	setString(&config.DataDir, "INKWELL_DATA_DIR")
	setString(&config.SQLitePath, "INKWELL_SQLITE_PATH")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.SecretKey, "INKWELL_SECRET_KEY")
	setDuration(&config.SessionTTL, "INKWELL_SESSION_TTL")
	setDuration(&config.CacheWindow, "INKWELL_CACHE_WINDOW")
	setString(&config.S3RootUser, "S3_ROOT_USER")
	setString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	setString(&config.S3Bucket, "S3_BUCKET")
	setString(&config.S3Region, "S3_REGION")
	setString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
