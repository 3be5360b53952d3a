package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{envPort, envProvider, envESPNTimeout, envTTL, envESPNBaseURL, envMetricsOn} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %q, got %q", defaultPort, cfg.Port)
	}
	if cfg.Provider != "espn" {
		t.Fatalf("expected espn provider default, got %q", cfg.Provider)
	}
	if cfg.Scoreboard.FetchTimeout != 8*time.Second {
		t.Fatalf("expected 8s fetch timeout, got %s", cfg.Scoreboard.FetchTimeout)
	}
	if cfg.Scoreboard.TTL != 15*time.Minute {
		t.Fatalf("expected 15m TTL, got %s", cfg.Scoreboard.TTL)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled by default")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envESPNTimeout, "3000")
	t.Setenv(envTTL, "60000")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected fixture provider, got %q", cfg.Provider)
	}
	if cfg.Scoreboard.FetchTimeout != 3*time.Second {
		t.Fatalf("expected 3s fetch timeout, got %s", cfg.Scoreboard.FetchTimeout)
	}
	if cfg.Scoreboard.TTL != time.Minute {
		t.Fatalf("expected 1m TTL, got %s", cfg.Scoreboard.TTL)
	}
}
