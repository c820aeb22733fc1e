package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	APIBaseURL  string
	ProfileDir  string
	HTTPTimeout time.Duration
	RatePerSec  float64
	RateBurst   int
}

// LoadConfig reads .env (when present) and the process environment.
// An empty API_URL puts the storefront in offline mode, served from the
// built-in sample catalog.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      os.Getenv("APP_ENV"),
		APIBaseURL:  os.Getenv("API_URL"),
		ProfileDir:  os.Getenv("PROFILE_DIR"),
		HTTPTimeout: durationEnv("HTTP_TIMEOUT", 10*time.Second),
		RatePerSec:  floatEnv("RATE_PER_SEC", 20),
		RateBurst:   intEnv("RATE_BURST", 40),
	}

	if cfg.ProfileDir == "" {
		cfg.ProfileDir = defaultProfileDir()
	}

	return cfg
}

func defaultProfileDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "vastra-store")
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func floatEnv(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
