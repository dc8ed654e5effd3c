// Package config loads application configuration from environment
// variables. Variables with sane defaults use getenv(); the JWT secret
// has none and is enforced with must().
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration. The DB_* values are optional:
// when DB_HOST is empty the service runs with the mock credential
// verifier instead of MySQL-backed accounts.
type Config struct {
	Env  string
	Port string

	// Key-value storage. Empty DataDir keeps submitted listings in
	// memory only.
	DataDir string

	// Simulated fetch latencies, mirroring the remote-API feel the
	// client was built against.
	SearchDelay time.Duration
	LookupDelay time.Duration

	// Mock auth behavior.
	LoginDelay       time.Duration
	VerificationCode string

	// Optional MySQL account store.
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	JWTSecret      string
	AccessTTLMin   int
	RefreshTTLDays int
	BcryptCost     int
}

// Load reads the environment into a Config.
func Load() Config {
	return Config{
		Env:              getenv("APP_ENV", "dev"),
		Port:             getenv("APP_PORT", "8080"),
		DataDir:          os.Getenv("DATA_DIR"),
		SearchDelay:      parseDur(getenv("SEARCH_DELAY", "600ms")),
		LookupDelay:      parseDur(getenv("LOOKUP_DELAY", "300ms")),
		LoginDelay:       parseDur(getenv("LOGIN_DELAY", "500ms")),
		VerificationCode: getenv("VERIFICATION_CODE", "123456"),
		DBUser:           os.Getenv("DB_USER"),
		DBPass:           os.Getenv("DB_PASS"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getenv("DB_PORT", "3306"),
		DBName:           os.Getenv("DB_NAME"),
		JWTSecret:        must("JWT_SECRET"),
		AccessTTLMin:     atoi(getenv("ACCESS_TOKEN_TTL_MIN", "15")),
		RefreshTTLDays:   atoi(getenv("REFRESH_TOKEN_TTL_DAYS", "30")),
		BcryptCost:       atoi(getenv("BCRYPT_COST", "10")),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
