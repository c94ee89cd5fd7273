package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverGorm = "gorm"
	DriverPgx  = "pgx"
)

type Config struct {
	ProjectID  string
	InstanceID string
	DatabaseID string
	Port       string

	DBUser      string
	DBPassword  string
	DBSSLMode   string
	DatabaseURL string

	StoreDriver     string
	MaxConns        int
	PingTimeout     time.Duration
	AutoSchema      bool
	ShutdownTimeout time.Duration
	LogLevel        slog.Level
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	maxConns, err := envInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	pingTimeout, err := envDuration("DB_PING_TIMEOUT", 2*time.Second)
	if err != nil {
		return nil, err
	}
	autoSchema, err := envBool("AUTO_SCHEMA", false)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := envDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(envString("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		ProjectID:       envString("PROJECT_ID", "cafe-menu"),
		InstanceID:      envString("INSTANCE_ID", "localhost:5432"),
		DatabaseID:      envString("DATABASE_ID", "menu"),
		Port:            envString("PORT", "8080"),
		DBUser:          envString("DB_USER", "postgres"),
		DBPassword:      envString("DB_PASSWORD", ""),
		DBSSLMode:       envString("DB_SSLMODE", "disable"),
		DatabaseURL:     envString("DATABASE_URL", ""),
		StoreDriver:     strings.ToLower(envString("STORE_DRIVER", DriverGorm)),
		MaxConns:        maxConns,
		PingTimeout:     pingTimeout,
		AutoSchema:      autoSchema,
		ShutdownTimeout: shutdownTimeout,
		LogLevel:        level,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ProjectID) == "" {
		return errors.New("PROJECT_ID must not be blank")
	}
	if c.DatabaseURL == "" {
		if strings.TrimSpace(c.InstanceID) == "" {
			return errors.New("INSTANCE_ID is required when DATABASE_URL is unset")
		}
		if strings.TrimSpace(c.DatabaseID) == "" {
			return errors.New("DATABASE_ID is required when DATABASE_URL is unset")
		}
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT is required")
	}
	switch c.StoreDriver {
	case DriverGorm, DriverPgx:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverGorm, DriverPgx, c.StoreDriver)
	}
	if c.MaxConns < 1 {
		return errors.New("DB_MAX_CONNS must be >= 1")
	}
	if c.PingTimeout <= 0 {
		return errors.New("DB_PING_TIMEOUT must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// DSN returns DATABASE_URL when set, otherwise a postgres URL built from
// the instance and database identifiers.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	host := c.InstanceID
	if _, _, err := net.SplitHostPort(host); err != nil {
		host = net.JoinHostPort(host, "5432")
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     host,
		Path:     "/" + c.DatabaseID,
		RawQuery: url.Values{"sslmode": []string{c.DBSSLMode}}.Encode(),
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	return u.String()
}
