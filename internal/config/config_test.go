package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Backend != BackendFile {
		t.Errorf("expected file backend, got %q", cfg.Backend)
	}
	if cfg.CurrencySymbol != "R$" {
		t.Errorf("expected R$ symbol, got %q", cfg.CurrencySymbol)
	}
	if cfg.DefaultListSize != 5 || cfg.MaxListSize != 20 {
		t.Errorf("expected list sizes 5/20, got %d/%d", cfg.DefaultListSize, cfg.MaxListSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "bolt")
	t.Setenv("DATA_DIR", "/var/lib/finbot")
	t.Setenv("LIST_DEFAULT", "10")
	t.Setenv("LIST_MAX", "notanumber")
	t.Setenv("WEBHOOK_PORT", "9090")

	cfg := Load()

	if cfg.Backend != BackendBolt {
		t.Errorf("expected bolt backend, got %q", cfg.Backend)
	}
	if cfg.DefaultListSize != 10 {
		t.Errorf("expected default list size 10, got %d", cfg.DefaultListSize)
	}
	if cfg.MaxListSize != 20 {
		t.Errorf("expected unparseable LIST_MAX to keep the default, got %d", cfg.MaxListSize)
	}
	if cfg.WebhookPort != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.WebhookPort)
	}
	if got := cfg.TelegramDataPath(); got != filepath.Join("/var/lib/finbot", "telegram_groups.json") {
		t.Errorf("unexpected telegram data path %q", got)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := &Config{
		Backend:         "redis",
		DataDir:         "",
		DateFormat:      "",
		DefaultListSize: 30,
		MaxListSize:     20,
		WebhookPort:     "http",
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	for _, want := range []string{
		"invalid store backend",
		"data directory cannot be empty",
		"date format cannot be empty",
		"default list size 30 exceeds max list size 20",
		"invalid webhook port",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got:\n%v", want, err)
		}
	}
}

func TestValidateBoltBackendNeedsPath(t *testing.T) {
	cfg := Load()
	cfg.Backend = BackendBolt
	cfg.BoltPath = ""

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "bolt path") {
		t.Fatalf("expected bolt path problem, got %v", err)
	}
}
