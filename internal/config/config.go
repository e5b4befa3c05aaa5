// Package config loads barvote settings from the environment, optionally seeded
// from a .env file.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DaySourceDatabase = "database"
	DaySourceLocal    = "local"
)

type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:"0.0.0.0:8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	FrontendURL     string        `envconfig:"FRONTEND_URL" default:"*"`

	AutoMigrate bool `envconfig:"AUTO_MIGRATE" default:"true"`

	JWTSecret         string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL            time.Duration `envconfig:"JWT_TTL" default:"720h"`
	AuthRatePerMinute int           `envconfig:"AUTH_RATE_PER_MINUTE" default:"30"`

	DaySource string `envconfig:"DAY_SOURCE" default:"database"`
	Timezone  string `envconfig:"TIMEZONE" default:"UTC"`

	Database
	Log
}

// Database is loaded separately by tools that only need a connection.
type Database struct {
	DatabaseURL      string        `envconfig:"DATABASE_URL"`
	PostgresHost     string        `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     string        `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string        `envconfig:"POSTGRES_USER"`
	PostgresPassword string        `envconfig:"POSTGRES_PASSWORD"`
	PostgresDB       string        `envconfig:"POSTGRES_DB"`
	PostgresSSLMode  string        `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	DBMaxOpenConns   int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	DBMaxIdleConns   int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLife    time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
}

type Log struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Path       string `envconfig:"LOG_PATH"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"7"`
	Compress   bool   `envconfig:"LOG_COMPRESS" default:"false"`
}

// Load reads an optional .env file and then the process environment.
// The returned bool reports whether a .env file was found.
func Load() (Config, bool, error) {
	foundDotenv := godotenv.Load() == nil

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, foundDotenv, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, foundDotenv, err
	}
	return c, foundDotenv, nil
}

func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.DaySource {
	case DaySourceDatabase, DaySourceLocal:
	default:
		return fmt.Errorf("DAY_SOURCE must be %q or %q, got %q", DaySourceDatabase, DaySourceLocal, c.DaySource)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return c.Database.Validate()
}

// LoadDatabase reads only the connection settings.
func LoadDatabase() (Database, error) {
	_ = godotenv.Load()

	var d Database
	if err := envconfig.Process("", &d); err != nil {
		return Database{}, err
	}
	if err := d.Validate(); err != nil {
		return Database{}, err
	}
	return d, nil
}

func (c Database) Validate() error {
	if c.DatabaseURL == "" && (c.PostgresUser == "" || c.PostgresDB == "") {
		return fmt.Errorf("DATABASE_URL or POSTGRES_USER and POSTGRES_DB are required")
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise a URL built from the POSTGRES_* values.
func (c Database) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:     c.PostgresHost + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=" + url.QueryEscape(c.PostgresSSLMode),
	}
	return u.String()
}

func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.FrontendURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
