package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultEnv            = "development"
	defaultDBPath         = "./catalog.db"
	defaultPort           = "8080"
	defaultRoundThreshold = 100
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env    string
	Port   string
	DBPath string
	// SeedCatalog inserts the default catalog on startup.
	SeedCatalog bool
	LogLevel    slog.Level
	// RoundThreshold is the largest amount per order that price rounding
	// may add; zero disables rounding.
	RoundThreshold float64
	// APIToken, when set, is required as a bearer token on the API routes.
	APIToken string
}

// IsDevelopment reports whether the service runs in a local environment.
func (c Config) IsDevelopment() bool {
	return c.Env == defaultEnv
}

// Load reads .env from the working directory, then the environment.
func Load() Config {
	return load(".env")
}

func load(dotenv string) Config {
	// Variables already in the environment win over the file.
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not read dotenv file", "path", dotenv, "err", err)
	}

	cfg := Config{
		Env:            os.Getenv("ENV"),
		Port:           os.Getenv("PORT"),
		DBPath:         os.Getenv("DB_PATH"),
		APIToken:       os.Getenv("API_TOKEN"),
		SeedCatalog:    true,
		LogLevel:       slog.LevelInfo,
		RoundThreshold: defaultRoundThreshold,
	}

	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if v := os.Getenv("SEED_CATALOG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("invalid SEED_CATALOG, seeding anyway", "value", v)
		} else {
			cfg.SeedCatalog = b
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			slog.Warn("invalid LOG_LEVEL, using info", "value", v)
			cfg.LogLevel = slog.LevelInfo
		}
	} else if cfg.IsDevelopment() {
		cfg.LogLevel = slog.LevelDebug
	}

	if v := os.Getenv("ROUND_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			slog.Warn("invalid ROUND_THRESHOLD, using default", "value", v, "default", defaultRoundThreshold)
		} else {
			cfg.RoundThreshold = f
		}
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Warn("PORT is not numeric", "port", cfg.Port)
	}

	return cfg
}
