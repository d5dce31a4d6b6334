package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DatabaseURL           string
	JWTSecret             string
	JWTIssuer             string
	AccessTTLSeconds      int64
	UploadStoragePath     string
	MetricsDiskPath       string
	MetricsSampleSeconds  int
	SignageRefreshSeconds int
	ActiveWindowDays      int
	AdminPassword         string
	SuperAdminPassword    string
	CorsOrigins           []string
}

func Load() Config {
	return Config{
		DatabaseURL:           mustEnv("DATABASE_URL"),
		JWTSecret:             mustEnv("JWT_SECRET"),
		JWTIssuer:             envOr("JWT_ISSUER", "roomdesk"),
		AccessTTLSeconds:      int64(envOrInt("ACCESS_TTL_SECONDS", 14400)),
		UploadStoragePath:     envOr("UPLOAD_STORAGE_PATH", "storage/uploads"),
		MetricsDiskPath:       envOr("METRICS_DISK_PATH", "storage/uploads"),
		MetricsSampleSeconds:  envOrInt("METRICS_SAMPLE_INTERVAL", 15),
		SignageRefreshSeconds: envOrInt("SIGNAGE_REFRESH_SECONDS", 10),
		ActiveWindowDays:      envOrInt("ACTIVE_WINDOW_DAYS", 7),
		AdminPassword:         envOr("ADMIN_INITIAL_PASSWORD", "admin"),
		SuperAdminPassword:    envOr("SUPERADMIN_INITIAL_PASSWORD", "superadmin"),
		CorsOrigins:           parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
