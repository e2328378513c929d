package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultStationID is the single-outlet account used when STATION_ID is unset.
const DefaultStationID = "00000000-0000-0000-0000-000000000001"

const defaultDSN = "host=localhost user=postgres password=postgres dbname=fuelstation port=5432 sslmode=disable"

type Config struct {
	HTTPPort       string
	DatabaseDriver string // postgres | sqlite
	DatabaseDSN    string
	JWTSecret      string
	CORSOrigins    string
	StationID      uuid.UUID
	AppEnv         string
	LogLevel       string

	// one shared password per role
	ProprietorPassword string
	ManagerPassword    string
	SupervisorPassword string

	DeleteUndoWindow       time.Duration
	SessionTTL             time.Duration
	ChartWindow            int
	TableWindow            int
	SupervisorHistoryLimit int
}

// Load reads .env (if present) and the environment. Invalid configuration
// is fatal.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg(".env could not be read")
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.DatabaseDriver == "postgres" && cfg.DatabaseDSN == defaultDSN {
		log.Warn().Msg("DATABASE_DSN uses the default value, set your own Postgres connection for production")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Warn().Msg("CORS_ALLOWED_ORIGINS uses the default value, set your own domain for production")
	}

	return cfg
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DatabaseDriver:     strings.ToLower(getEnv("DATABASE_DRIVER", "postgres")),
		DatabaseDSN:        getEnv("DATABASE_DSN", defaultDSN),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		CORSOrigins:        getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		ProprietorPassword: getEnv("PROPRIETOR_PASSWORD", ""),
		ManagerPassword:    getEnv("MANAGER_PASSWORD", ""),
		SupervisorPassword: getEnv("SUPERVISOR_PASSWORD", ""),
	}

	var err error
	if cfg.StationID, err = uuid.Parse(getEnv("STATION_ID", DefaultStationID)); err != nil {
		return nil, fmt.Errorf("STATION_ID: %w", err)
	}

	undo, err := getEnvInt("DELETE_UNDO_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	cfg.DeleteUndoWindow = time.Duration(undo) * time.Second

	ttl, err := getEnvInt("SESSION_TTL_HOURS", 12)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = time.Duration(ttl) * time.Hour

	if cfg.ChartWindow, err = getEnvInt("CHART_WINDOW", 30); err != nil {
		return nil, err
	}
	if cfg.TableWindow, err = getEnvInt("TABLE_WINDOW", 10); err != nil {
		return nil, err
	}
	if cfg.SupervisorHistoryLimit, err = getEnvInt("SUPERVISOR_HISTORY_LIMIT", 15); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 characters")
	}
	if c.DatabaseDriver != "postgres" && c.DatabaseDriver != "sqlite" {
		return fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", c.DatabaseDriver)
	}
	if c.ProprietorPassword == "" || c.ManagerPassword == "" || c.SupervisorPassword == "" {
		return errors.New("PROPRIETOR_PASSWORD, MANAGER_PASSWORD and SUPERVISOR_PASSWORD are required")
	}
	return nil
}

// IsDevelopment reports whether console logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "" || c.AppEnv == "development"
}

// CORSOriginList splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) CORSOriginList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
