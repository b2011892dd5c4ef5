package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageFromPostgres = "postgres"
	StorageFromMemory   = "memory"
)

type Config struct {
	DatabaseURL          string
	MigrationsPath       string
	Storage              string
	HTTPPort             int
	RequestTimeout       time.Duration
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetime    time.Duration
	LogLevel             slog.Level
	NotificationsEnabled bool
	NotificationsBaseURL string
	NotificationsTimeout time.Duration
	StockScope           string
	GameImageRequired    bool
}

/* Reads the configuration from the environment, after loading a .env file when there is one. */
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

/* Builds the configuration from getenv. Every invalid value is reported, not only the first one. */
func FromEnv(getenv func(string) string) (Config, error) {
	p := parser{getenv: getenv}
	cfg := Config{
		DatabaseURL:          getenv("DATABASE_URL"),
		MigrationsPath:       p.str("DATABASE_MIGRATIONS_PATH", "migrations"),
		Storage:              p.oneOf("STORAGE", StorageFromPostgres, StorageFromPostgres, StorageFromMemory),
		HTTPPort:             p.integer("HTTP_PORT", 8080),
		RequestTimeout:       p.duration("HTTP_REQUEST_TIMEOUT", 5*time.Second),
		DBMaxOpenConns:       p.integer("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:       p.integer("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime:    p.duration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		LogLevel:             p.level("LOG_LEVEL", slog.LevelInfo),
		NotificationsEnabled: p.boolean("NOTIFICATIONS_ENABLED", false),
		NotificationsBaseURL: getenv("NOTIFICATIONS_BASE_URL"),
		NotificationsTimeout: p.duration("NOTIFICATIONS_TIMEOUT", 2*time.Second),
		StockScope:           p.oneOf("RENTALS_STOCK_SCOPE", "open", "open", "all"),
		GameImageRequired:    p.boolean("GAME_IMAGE_REQUIRED", true),
	}

	if cfg.Storage == StorageFromPostgres && cfg.DatabaseURL == "" {
		p.errs = append(p.errs, errors.New("DATABASE_URL is required when STORAGE is postgres"))
	}
	if cfg.NotificationsEnabled && cfg.NotificationsBaseURL == "" {
		p.errs = append(p.errs, errors.New("NOTIFICATIONS_BASE_URL is required when NOTIFICATIONS_ENABLED is true"))
	}

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

type parser struct {
	getenv func(string) string
	errs   []error
}

func (p *parser) str(key, def string) string {
	if v := p.getenv(key); v != "" {
		return v
	}
	return def
}

func (p *parser) integer(key string, def int) int {
	v := p.getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		p.errs = append(p.errs, fmt.Errorf("%s must be a non negative integer, got %q", key, v))
		return def
	}
	return n
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := p.getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		p.errs = append(p.errs, fmt.Errorf("%s must be a positive duration like 5s, got %q", key, v))
		return def
	}
	return d
}

func (p *parser) boolean(key string, def bool) bool {
	v := p.getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s must be true or false, got %q", key, v))
		return def
	}
	return b
}

func (p *parser) oneOf(key, def string, allowed ...string) string {
	v := strings.ToLower(p.getenv(key))
	if v == "" {
		return def
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	p.errs = append(p.errs, fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), v))
	return def
}

func (p *parser) level(key string, def slog.Level) slog.Level {
	v := p.getenv(key)
	if v == "" {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s must be debug, info, warn or error, got %q", key, v))
		return def
	}
	return l
}
