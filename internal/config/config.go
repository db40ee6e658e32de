// Package config loads the server configuration.
//
// Values are layered: Default() first, then an optional YAML file, then
// environment variables. A variable that is set always wins over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Store kinds accepted by StoreConfig.Kind.
const (
	StoreSurrealDB = "surrealdb"
	StorePostgres  = "postgres"
	StoreSQLite    = "sqlite"
	StoreMemory    = "memory"
)

// Config is the complete server configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
	Tracing TracingConfig `yaml:"tracing"`
	Breaker BreakerConfig `yaml:"breaker"`
}

// HTTPConfig configures the listener and request handling.
type HTTPConfig struct {
	Addr              string        `yaml:"addr" env:"MINIBLOG_ADDR"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" env:"MINIBLOG_MAX_BODY_BYTES"`
	RequestTimeout    time.Duration `yaml:"request_timeout" env:"MINIBLOG_REQUEST_TIMEOUT"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"MINIBLOG_READ_HEADER_TIMEOUT"`
	ReadTimeout       time.Duration `yaml:"read_timeout" env:"MINIBLOG_READ_TIMEOUT"`
	WriteTimeout      time.Duration `yaml:"write_timeout" env:"MINIBLOG_WRITE_TIMEOUT"`
	IdleTimeout       time.Duration `yaml:"idle_timeout" env:"MINIBLOG_IDLE_TIMEOUT"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"MINIBLOG_SHUTDOWN_TIMEOUT"`
	Swagger           bool          `yaml:"swagger" env:"MINIBLOG_SWAGGER"`
}

// StoreConfig selects and configures the document store.
type StoreConfig struct {
	Kind        string        `yaml:"kind" env:"MINIBLOG_STORE"`
	PingTimeout time.Duration `yaml:"ping_timeout" env:"MINIBLOG_STORE_PING_TIMEOUT"`

	SurrealDB SurrealDBConfig `yaml:"surrealdb"`
	Postgres  SQLConfig       `yaml:"postgres"`
	SQLite    SQLConfig       `yaml:"sqlite"`
}

// SurrealDBConfig holds the SurrealDB endpoint and credentials.
type SurrealDBConfig struct {
	URL       string `yaml:"url" env:"SURREALDB_URL"`
	Namespace string `yaml:"namespace" env:"SURREALDB_NAMESPACE"`
	Database  string `yaml:"database" env:"SURREALDB_DATABASE"`
	Username  string `yaml:"username" env:"SURREALDB_USER"`
	Password  string `yaml:"password" env:"SURREALDB_PASS"`
}

// SQLConfig configures a database/sql backed store. DSN is a connection URL
// for postgres and a file path for sqlite.
type SQLConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// TracingConfig configures the OpenTelemetry tracer provider.
type TracingConfig struct {
	ServiceName string  `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
	SampleRatio float64 `yaml:"sample_ratio" env:"OTEL_SAMPLE_RATIO"`
}

// BreakerConfig configures the circuit breaker in front of the store.
type BreakerConfig struct {
	Enabled bool          `yaml:"enabled" env:"MINIBLOG_BREAKER_ENABLED"`
	Timeout time.Duration `yaml:"timeout" env:"MINIBLOG_BREAKER_TIMEOUT"`
}

// envOnly carries settings that have no nested env tag of their own.
type envOnly struct {
	PostgresDSN string `env:"DATABASE_URL"`
	SQLitePath  string `env:"MINIBLOG_SQLITE_PATH"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:              ":8080",
			MaxBodyBytes:      1 << 20,
			RequestTimeout:    30 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			Swagger:           true,
		},
		Store: StoreConfig{
			Kind:        StoreSurrealDB,
			PingTimeout: 5 * time.Second,
			SurrealDB: SurrealDBConfig{
				URL:       "ws://localhost:8000",
				Namespace: "blog",
				Database:  "blog",
			},
			Postgres: SQLConfig{
				MaxOpenConns:    25,
				MaxIdleConns:    10,
				ConnMaxLifetime: time.Hour,
				ConnMaxIdleTime: 30 * time.Minute,
			},
			SQLite: SQLConfig{
				DSN: "mini-blog.db",
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			ServiceName: "mini-blog",
			SampleRatio: 1.0,
		},
		Breaker: BreakerConfig{
			Enabled: true,
			Timeout: 30 * time.Second,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	var extra envOnly
	if err := env.Parse(&extra); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if extra.PostgresDSN != "" {
		cfg.Store.Postgres.DSN = extra.PostgresDSN
	}
	if extra.SQLitePath != "" {
		cfg.Store.SQLite.DSN = extra.SQLitePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	recordLoad()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	// #nosec G304 -- path is provided by trusted source (CLI flag or env), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		recordValidationError(field)
		errs = append(errs, fmt.Errorf("%s: "+format, append([]any{field}, args...)...))
	}

	if c.HTTP.Addr == "" {
		fail("http.addr", "is required")
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		fail("http.max_body_bytes", "must be positive")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		fail("http.shutdown_timeout", "must be positive")
	}
	if c.Store.PingTimeout <= 0 {
		fail("store.ping_timeout", "must be positive")
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		fail("tracing.sample_ratio", "must be between 0 and 1")
	}

	switch c.Store.Kind {
	case StoreSurrealDB:
		s := c.Store.SurrealDB
		if s.URL == "" {
			fail("store.surrealdb.url", "is required")
		}
		if s.Namespace == "" {
			fail("store.surrealdb.namespace", "is required")
		}
		if s.Database == "" {
			fail("store.surrealdb.database", "is required")
		}
		if (s.Username == "") != (s.Password == "") {
			fail("store.surrealdb", "username and password must be set together")
		}
	case StorePostgres:
		if c.Store.Postgres.DSN == "" {
			fail("store.postgres.dsn", "is required (set DATABASE_URL)")
		}
	case StoreSQLite:
		if c.Store.SQLite.DSN == "" {
			fail("store.sqlite.dsn", "is required (set MINIBLOG_SQLITE_PATH)")
		}
	case StoreMemory:
	default:
		fail("store.kind", "must be one of %s, %s, %s, %s (got %q)",
			StoreSurrealDB, StorePostgres, StoreSQLite, StoreMemory, c.Store.Kind)
	}

	return errors.Join(errs...)
}
