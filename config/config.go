package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the service.
type Config struct {
	Port            string
	DataDir         string
	StorageBackend  string
	ZipkinAddress   string
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file, then the environment. Values that fail
// to parse fall back to their defaults with a warning.
func Load(envFiles ...string) *Config {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: could not read env file: %v", err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "3001"),
		DataDir:        getEnv("DATA_DIR", "data"),
		StorageBackend: getEnv("STORAGE_BACKEND", "json"),
		ZipkinAddress:  getEnv("ZIPKIN_ADDRESS", ""),
	}

	metrics, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		log.Printf("WARNING: invalid METRICS_ENABLED, using true: %v", err)
		metrics = true
	}
	cfg.MetricsEnabled = metrics

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		log.Printf("WARNING: invalid SHUTDOWN_TIMEOUT, using 10s: %v", err)
		timeout = 10 * time.Second
	}
	cfg.ShutdownTimeout = timeout

	return cfg
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// getEnv returns the environment value for key, or fallback when unset
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
