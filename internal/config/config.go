// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration for tools built on the SDK.
type Config struct {
	HostURI       string        // CASEBOARD_HOST, default "http://127.0.0.1:5000"
	Username      string        // CASEBOARD_USERNAME
	Password      string        // CASEBOARD_PASSWORD
	TLSSkipVerify bool          // CASEBOARD_TLS_SKIP_VERIFY, default false
	HTTPTimeout   time.Duration // HTTP_CLIENT_TIMEOUT_MS, default 30000ms (30s)
	CacheMaxItems int           // RESOURCE_CACHE_MAX_ITEMS, default 0 (disabled)

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		HostURI:       getEnvString("CASEBOARD_HOST", "http://127.0.0.1:5000"),
		Username:      getEnvString("CASEBOARD_USERNAME", ""),
		Password:      getEnvString("CASEBOARD_PASSWORD", ""),
		TLSSkipVerify: getEnvBool("CASEBOARD_TLS_SKIP_VERIFY", false),
		HTTPTimeout:   getEnvDurationMs("HTTP_CLIENT_TIMEOUT_MS", 30000),
		CacheMaxItems: getEnvInt("RESOURCE_CACHE_MAX_ITEMS", 0),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
