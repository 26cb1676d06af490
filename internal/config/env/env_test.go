package env

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"roulette_backend/internal/wheel"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewRouletteConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
roulette:
  tweaked_weights: [3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
  use_tweaked: true
  simulation:
    max_runs: 5000
`)
	cfg, err := NewRouletteConfigFromYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w := cfg.TweakedWeights(); len(w) != 13 || w[0] != 3 {
		t.Errorf("unexpected weights %v", w)
	}
	if !cfg.UseTweaked() {
		t.Error("use_tweaked not read")
	}
	if cfg.StartBalance() != defaultStartBalance {
		t.Errorf("expected default start balance, got %v", cfg.StartBalance())
	}
	if cfg.DefaultSimulationRuns() != defaultRuns || cfg.MaxSimulationRuns() != 5000 {
		t.Errorf("runs: default=%d max=%d", cfg.DefaultSimulationRuns(), cfg.MaxSimulationRuns())
	}
}

func TestNewRouletteConfigFromYAML_Invalid(t *testing.T) {
	weights := map[string]string{
		"short":    "roulette:\n  tweaked_weights: [1, 1]\n",
		"negative": "roulette:\n  tweaked_weights: [-1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1]\n",
		"zero":     "roulette:\n  tweaked_weights: [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]\n",
	}
	for name, body := range weights {
		t.Run(name, func(t *testing.T) {
			_, err := NewRouletteConfigFromYAML(writeConfig(t, body))
			if !errors.Is(err, wheel.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}

	if _, err := NewRouletteConfigFromYAML(writeConfig(t, "roulette: [")); err == nil {
		t.Error("expected error for broken yaml")
	}

	if _, err := NewRouletteConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "8080")
	t.Setenv(httpTimeoutEnvName, "")
	t.Setenv(httpIdleTimeoutEnvName, "2m")

	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Address() != "127.0.0.1:8080" {
		t.Errorf("unexpected address %s", cfg.Address())
	}
	if cfg.Timeout() != defaultTimeout || cfg.IdleTimeout() != 2*time.Minute {
		t.Errorf("timeouts: %v %v", cfg.Timeout(), cfg.IdleTimeout())
	}

	t.Setenv(httpPortEnvName, "")
	if _, err := NewHTTPConfig(); err == nil {
		t.Error("expected error without port")
	}
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv(accessTokenKeyEnvName, "secret")
	t.Setenv(accessTokenDurationEnvName, "15m")
	t.Setenv(refreshTokenDurationEnvName, "720h")

	cfg, err := NewJWTConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(cfg.AccessTokenSecretKey()) != "secret" || cfg.AccessTokenDuration() != 15*time.Minute {
		t.Errorf("unexpected jwt config")
	}

	t.Setenv(accessTokenDurationEnvName, "")
	t.Setenv(refreshTokenDurationEnvName, "")
	cfg, err = NewJWTConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AccessTokenDuration() != defaultAccessTokenDuration || cfg.RefreshTokenDuration() != defaultRefreshTokenDuration {
		t.Errorf("defaults not applied")
	}

	t.Setenv(accessTokenDurationEnvName, "soon")
	if _, err := NewJWTConfig(); err == nil {
		t.Error("expected error for invalid duration")
	}

	t.Setenv(accessTokenDurationEnvName, "-1m")
	if _, err := NewJWTConfig(); err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestNewPGConfig(t *testing.T) {
	t.Setenv(pgDSNEnvName, "")
	if _, err := NewPGConfig(); err == nil {
		t.Error("expected error without dsn")
	}

	t.Setenv(pgDSNEnvName, "postgres://localhost/roulette")
	t.Setenv(pgMaxConnsEnvName, "")
	cfg, err := NewPGConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxConns() != 0 {
		t.Errorf("max conns %d, want 0", cfg.MaxConns())
	}

	t.Setenv(pgMaxConnsEnvName, "8")
	cfg, err = NewPGConfig()
	if err != nil || cfg.MaxConns() != 8 {
		t.Errorf("max conns not parsed: %v", err)
	}

	t.Setenv(pgMaxConnsEnvName, "many")
	if _, err := NewPGConfig(); err == nil {
		t.Error("expected error for invalid max conns")
	}
}

func TestNewLoggerConfig(t *testing.T) {
	t.Setenv(logEnvName, "")
	cfg, err := NewLoggerConfig()
	if err != nil || cfg.Env() != EnvLocal {
		t.Fatalf("expected local env, got %v %v", cfg, err)
	}

	t.Setenv(logEnvName, "staging")
	if _, err := NewLoggerConfig(); err == nil {
		t.Error("expected error for unknown env")
	}
}

func TestNewAdminConfig(t *testing.T) {
	t.Setenv(adminLoginEnvName, "")
	t.Setenv(adminPasswordEnvName, "pw")
	cfg, err := NewAdminConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Login() != defaultAdminLogin || cfg.Password() != "pw" {
		t.Errorf("unexpected admin config %s/%s", cfg.Login(), cfg.Password())
	}

	t.Setenv(adminPasswordEnvName, "")
	if _, err := NewAdminConfig(); err == nil {
		t.Error("expected error without password")
	}
}
