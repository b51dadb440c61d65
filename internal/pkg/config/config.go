package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendSQLite = "sqlite"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// Timezone decides which calendar date "today" is for new records.
	Timezone string `env:"TIMEZONE, default=UTC"`
	// StoreLatency delays every medication mutator. Zero disables it.
	StoreLatency    time.Duration `env:"STORE_LATENCY, default=0s"`
	DispatchWorkers int           `env:"DISPATCH_WORKERS, default=4"`

	Storage StorageConfig
	Mongo   MongoConfig
	SQLite  SQLiteConfig
	Redis   RedisConfig
}

type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND, default=memory"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=medication_reminder"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=medications.db"`
}

type RedisConfig struct {
	Enabled bool   `env:"REDIS_ENABLED, default=false"`
	Addr    string `env:"REDIS_ADDR, default=localhost:6379"`
	DB      int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through l and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendMongo, BackendSQLite:
	default:
		return fmt.Errorf("STORAGE_BACKEND %q: want one of memory, mongo, sqlite", c.Storage.Backend)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.StoreLatency < 0 {
		return fmt.Errorf("STORE_LATENCY must not be negative")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured time zone. It assumes Validate passed.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsDevelopment reports whether human-friendly logs should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
