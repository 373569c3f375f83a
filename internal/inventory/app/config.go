package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseFile    string        // Optional: path to SQLite database file (default: data/materials_db.sqlite)
	PepperFile      string        // Optional: path to file containing pepper for password hashing (default: data/pepper)
	ExportDir       string        // Optional: directory offered for exported reports (default: .)
	ExportFormat    string        // Optional: report file format (xlsx, csv) (default: xlsx)
	OpenAfterExport bool          // Optional: open the report with the system viewer after export (default: true)
	LoginAttempts   int           // Optional: failed logins allowed per window (default: 5)
	LoginWindow     time.Duration // Optional: window the failed logins are counted over (default: 1m)
	Env             string        // Environment (dev, prod) (default: dev)
	LogLevel        string        // Log level (debug, info, warn, error) (default: info)
	LogFormat       string        // Log format (json, text) (default: text)
	LogFile         string        // Optional: write logs here instead of stderr

	ShutdownGracePeriod time.Duration // Time a running command gets to finish on shutdown (default: 10s)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present; variables already
// set in the environment win.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DatabaseFile:    getEnvOrDefault("INVENTORY_DATABASE_FILE", "data/materials_db.sqlite"),
		PepperFile:      getEnvOrDefault("INVENTORY_PEPPER_FILE", "data/pepper"),
		ExportDir:       getEnvOrDefault("INVENTORY_EXPORT_DIR", "."),
		ExportFormat:    exportFormat(getEnvOrDefault("INVENTORY_EXPORT_FORMAT", "xlsx")),
		OpenAfterExport: getEnvBoolOrDefault("INVENTORY_OPEN_AFTER_EXPORT", true),
		LoginAttempts:   getEnvIntOrDefault("INVENTORY_LOGIN_ATTEMPTS", 5),
		LoginWindow:     getEnvDurationOrDefault("INVENTORY_LOGIN_WINDOW", time.Minute),
		Env:             getEnvOrDefault("ENV", "dev"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", "text"),
		LogFile:         os.Getenv("LOG_FILE"),

		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// exportFormat accepts "csv" in any case, with or without the dot.
// Anything else falls back to xlsx.
func exportFormat(s string) string {
	if strings.EqualFold(strings.TrimPrefix(s, "."), "csv") {
		return "csv"
	}
	return "xlsx"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
