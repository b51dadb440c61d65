package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Storage.Backend != BackendMemory || cfg.Redis.Enabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token ttl, got %v", cfg.TokenTTL)
	}
	if cfg.Location() != time.UTC {
		t.Fatalf("expected UTC location")
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env by default")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORAGE_BACKEND":  "sqlite",
		"SQLITE_PATH":      "/tmp/x.db",
		"REDIS_ENABLED":    "true",
		"STORE_LATENCY":    "500ms",
		"DISPATCH_WORKERS": "8",
		"TIMEZONE":         "Europe/Madrid",
		"ENV":              "production",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Backend != BackendSQLite || cfg.SQLite.Path != "/tmp/x.db" {
		t.Fatalf("unexpected storage: %+v %+v", cfg.Storage, cfg.SQLite)
	}
	if !cfg.Redis.Enabled || cfg.StoreLatency != 500*time.Millisecond || cfg.DispatchWorkers != 8 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.Location().String() != "Europe/Madrid" {
		t.Fatalf("unexpected location %s", cfg.Location())
	}
	if cfg.IsDevelopment() {
		t.Fatalf("production should not be development")
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown backend":  {"STORAGE_BACKEND": "postgres"},
		"unknown timezone": {"TIMEZONE": "Mars/Olympus"},
		"negative latency": {"STORE_LATENCY": "-1s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadWith(context.Background(), envconfig.MapLookuper(env)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}
