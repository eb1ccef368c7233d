package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPAddr       string
	BackendURL     string
	BackendTimeout time.Duration

	SessionSecret string
	CookieSecure  bool
	SessionIdle   time.Duration
	JWTSecret     string

	// DBDSN enables MySQL cart persistence; empty keeps carts in memory.
	DBDSN string

	CatalogCache string // memory | redis
	RedisURL     string
	CatalogTTL   time.Duration

	Currency              string
	ShippingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	TaxRate               decimal.Decimal
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	// .env is optional; production uses real env vars.
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	var (
		cfg Config
		err error
	)
	cfg.HTTPAddr = envOr("HTTP_ADDR", ":8080")
	cfg.BackendURL = strings.TrimRight(envOr("BACKEND_URL", "http://localhost:8000"), "/")
	cfg.SessionSecret = envOr("SESSION_SECRET", "")
	cfg.JWTSecret = envOr("JWT_SECRET", "")
	cfg.DBDSN = envOr("DB_DSN", "")
	cfg.CatalogCache = strings.ToLower(envOr("CATALOG_CACHE", "memory"))
	cfg.RedisURL = envOr("REDIS_URL", "")
	cfg.Currency = envOr("CURRENCY", "LKR")

	if cfg.BackendTimeout, err = durationOr("BACKEND_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SessionIdle, err = durationOr("SESSION_IDLE", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.CatalogTTL, err = durationOr("CATALOG_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.CookieSecure, err = boolOr("COOKIE_SECURE", false); err != nil {
		return Config{}, err
	}
	if cfg.ShippingFee, err = decimalOr("SHIPPING_FEE", "500"); err != nil {
		return Config{}, err
	}
	if cfg.FreeShippingThreshold, err = decimalOr("FREE_SHIPPING_THRESHOLD", "1000"); err != nil {
		return Config{}, err
	}
	if cfg.TaxRate, err = decimalOr("TAX_RATE", "0.05"); err != nil {
		return Config{}, err
	}

	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required")
	}
	switch cfg.CatalogCache {
	case "memory":
	case "redis":
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL is required when CATALOG_CACHE=redis")
		}
	default:
		return Config{}, fmt.Errorf("unknown CATALOG_CACHE: %s", cfg.CatalogCache)
	}
	if cfg.TaxRate.IsNegative() || cfg.ShippingFee.IsNegative() || cfg.FreeShippingThreshold.IsNegative() {
		return Config{}, fmt.Errorf("pricing values must not be negative")
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func durationOr(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}

func boolOr(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}

func decimalOr(k, def string) (decimal.Decimal, error) {
	v := envOr(k, def)
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}
