package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points the config search path at an empty dir and clears TTL env vars.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("POOL_TTL_MINUTES", "")
	t.Setenv("TUNEPOOL_CACHE_TTL_MINUTES", "")
	return dir
}

func TestCacheConfig_TTL(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", 30 * time.Minute},
		{"abc", 30 * time.Minute},
		{"0", 30 * time.Minute},
		{"-5", 30 * time.Minute},
		{"15", 15 * time.Minute},
		{" 20 ", 20 * time.Minute},
		{"010", 10 * time.Minute},
		{"0x10", 30 * time.Minute},
		{"0o17", 30 * time.Minute},
		{"0b11", 30 * time.Minute},
		{"1_0", 30 * time.Minute},
		{"1e2", 100 * time.Minute},
		{"30.5", 30*time.Minute + 30*time.Second},
		{"0.5", 30 * time.Second},
		{"NaN", 30 * time.Minute},
		{"Inf", 30 * time.Minute},
		{"-Inf", 30 * time.Minute},
		{"1e300", 30 * time.Minute},
	}

	for _, tt := range tests {
		if got := (CacheConfig{TTLMinutes: tt.raw}).TTL(); got != tt.want {
			t.Errorf("TTL(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def := DefaultConfig()
	if cfg.Server.Addr != def.Server.Addr {
		t.Errorf("expected addr %q, got %q", def.Server.Addr, cfg.Server.Addr)
	}
	if cfg.Server.BuildTimeout != def.Server.BuildTimeout {
		t.Errorf("expected build timeout %v, got %v", def.Server.BuildTimeout, cfg.Server.BuildTimeout)
	}
	if cfg.Upstream.BaseURL != def.Upstream.BaseURL || cfg.Upstream.Timeout != def.Upstream.Timeout {
		t.Errorf("unexpected upstream config: %+v", cfg.Upstream)
	}
	if cfg.Cache.TTL() != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.Cache.TTL())
	}
}

func TestLoadConfig_PoolTTLEnv(t *testing.T) {
	isolate(t)

	t.Setenv("POOL_TTL_MINUTES", "15")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cache.TTL() != 15*time.Minute {
		t.Errorf("expected 15m TTL, got %v", cfg.Cache.TTL())
	}

	t.Setenv("POOL_TTL_MINUTES", "015")
	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cache.TTL() != 15*time.Minute {
		t.Errorf("expected leading zero read as decimal 15m, got %v", cfg.Cache.TTL())
	}

	t.Setenv("POOL_TTL_MINUTES", "abc")
	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatalf("non-numeric TTL must not fail loading: %v", err)
	}
	if cfg.Cache.TTL() != 30*time.Minute {
		t.Errorf("expected fallback to 30m, got %v", cfg.Cache.TTL())
	}
}

func TestLoadConfig_PrefixedEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TUNEPOOL_SERVER_ADDR", ":9999")
	t.Setenv("TUNEPOOL_CACHE_TTL_MINUTES", "5")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("expected addr :9999, got %q", cfg.Server.Addr)
	}
	if cfg.Cache.TTL() != 5*time.Minute {
		t.Errorf("expected 5m TTL, got %v", cfg.Cache.TTL())
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := isolate(t)

	confDir := filepath.Join(dir, "tunepool")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "upstream:\n  base_url: http://localhost:9000\n  requests_per_second: 2\ncache:\n  ttl_minutes: 20\nlogging:\n  level: DEBUG\n"
	if err := os.WriteFile(filepath.Join(confDir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Upstream.BaseURL != "http://localhost:9000" {
		t.Errorf("expected base url from file, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.RequestsPerSecond != 2 {
		t.Errorf("expected 2 rps, got %v", cfg.Upstream.RequestsPerSecond)
	}
	if cfg.Cache.TTL() != 20*time.Minute {
		t.Errorf("expected 20m TTL, got %v", cfg.Cache.TTL())
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected DEBUG level, got %q", cfg.Logging.Level)
	}
	// Untouched keys keep their defaults
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Server.Addr)
	}
}

func TestLoadConfig_ExplicitMissingPath(t *testing.T) {
	isolate(t)

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
