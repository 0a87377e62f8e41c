package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port         string
	DatabaseURL  string // MongoDB URI; takes precedence over DBDSN
	DatabaseName string
	DBDSN        string // embedded sqlite file; empty with no DatabaseURL means no store

	AdminKey        string
	AdminKeyHash    string
	RequireAdminKey bool

	MaxListLimit int
	RateLimit    int // requests per minute per IP, 0 disables
	AllowOrigins string
	SeedDemo     bool

	LogFile string
	LogMode string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: want a non-negative integer, got %q", key, v)
	}
	return n, nil
}

func getBool(key string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: want a boolean, got %q", key, v)
	}
	return b, nil
}

// Load reads the environment. It fails when ADMIN_REQUIRE_KEY is set and no
// admin secret is configured, instead of starting with an open admin gate.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "arihant"),
		DBDSN:        getEnv("DB_DSN", "arihant.db"),
		AdminKey:     os.Getenv("ADMIN_API_KEY"),
		AdminKeyHash: os.Getenv("ADMIN_API_KEY_BCRYPT"),
		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		LogFile:      os.Getenv("LOG_FILE"),
		LogMode:      getEnv("LOG_MODE", "development"),
	}

	var err error
	if cfg.RequireAdminKey, err = getBool("ADMIN_REQUIRE_KEY"); err != nil {
		return Config{}, err
	}
	if cfg.SeedDemo, err = getBool("SEED_DEMO"); err != nil {
		return Config{}, err
	}
	if cfg.MaxListLimit, err = getInt("LIST_LIMIT_MAX", 0); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = getInt("RATE_LIMIT_PER_MIN", 120); err != nil {
		return Config{}, err
	}

	if cfg.RequireAdminKey && cfg.AdminKey == "" && cfg.AdminKeyHash == "" {
		return Config{}, errors.New("ADMIN_REQUIRE_KEY is set but neither ADMIN_API_KEY nor ADMIN_API_KEY_BCRYPT is configured")
	}
	return cfg, nil
}

// AdminGateOpen reports whether admin routes are unprotected.
func (c Config) AdminGateOpen() bool {
	return c.AdminKey == "" && c.AdminKeyHash == ""
}
