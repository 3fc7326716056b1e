package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_ADDRESS", ":9090")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Address != ":9090" {
		t.Fatalf("expected env override, got %q", cfg.Server.Address)
	}
	if cfg.JWT.Expiration != 24*time.Hour {
		t.Fatalf("expected 24h expiration, got %s", cfg.JWT.Expiration)
	}
	if cfg.Timing.ToastTTL != 3*time.Second || cfg.Timing.NotificationTTL != 5*time.Second {
		t.Fatalf("unexpected notice lifetimes: %+v", cfg.Timing)
	}
	if cfg.Timing.CoachReplyDelay != 1500*time.Millisecond {
		t.Fatalf("unexpected coach reply delay: %s", cfg.Timing.CoachReplyDelay)
	}
	if cfg.Seed.Source != SeedSourceStatic {
		t.Fatalf("expected static seed, got %q", cfg.Seed.Source)
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := "jwt:\n  secret: from-file\n  expiration: 2h\ntiming:\n  plan_delivery_delay: 250ms\nseed:\n  source: mongo\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWT.Secret != "from-file" || cfg.JWT.Expiration != 2*time.Hour {
		t.Fatalf("unexpected jwt config: %+v", cfg.JWT)
	}
	if cfg.Timing.PlanDeliveryDelay != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", cfg.Timing.PlanDeliveryDelay)
	}
	if cfg.Seed.Source != SeedSourceMongo {
		t.Fatalf("expected mongo seed, got %q", cfg.Seed.Source)
	}
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatalf("expected error without jwt.secret")
	}
}

func TestValidate_RejectsUnknownSeedSource(t *testing.T) {
	cfg := Config{JWT: JWTConfig{Secret: "x", Expiration: time.Hour}, Seed: SeedConfig{Source: "s3"}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown seed source")
	}
}
