package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=/cfg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DBPath != filepath.Join("/cfg", "gridmenu", "orders.db") {
		t.Fatalf("unexpected db path %q", cfg.App.DBPath)
	}
	if cfg.App.ViewsDir != filepath.Join("/cfg", "gridmenu", "views") {
		t.Fatalf("unexpected views dir %q", cfg.App.ViewsDir)
	}
	if cfg.App.Overscan != defaultOverscan || cfg.App.PageSize != defaultPageSize {
		t.Fatalf("unexpected overscan/page size %d/%d", cfg.App.Overscan, cfg.App.PageSize)
	}
	if cfg.App.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("unexpected refresh interval %s", cfg.App.RefreshInterval)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"GRIDMENU_DB=/env/orders.db",
		"GRIDMENU_SEED=500",
		"GRIDMENU_FOOTER=true",
		"GRIDMENU_REFRESH_INTERVAL=5s",
		"GRIDMENU_VIEW=by-status",
	}
	cfg, err := LoadArgs([]string{"-db", ":memory:", "-width", "100", "-refresh-interval", "0"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DBPath != ":memory:" {
		t.Fatalf("flag should win over env, got %q", cfg.App.DBPath)
	}
	if cfg.App.Seed != 500 || !cfg.App.ShowFooter || cfg.App.View != "by-status" {
		t.Fatalf("env values not applied: %+v", cfg.App)
	}
	if cfg.App.Width != 100 || cfg.App.RefreshInterval != 0 {
		t.Fatalf("unexpected width/interval %d/%s", cfg.App.Width, cfg.App.RefreshInterval)
	}
	if cfg.Flags["refreshInterval"] != "0s" {
		t.Fatalf("unexpected flag echo %q", cfg.Flags["refreshInterval"])
	}
}

func TestLoadArgsIgnoresMalformedEnv(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"GRIDMENU_WIDTH=wide", "GRIDMENU_REFRESH_INTERVAL=soon", "garbage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("malformed env should fall back, got %d/%s", cfg.App.Width, cfg.App.RefreshInterval)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-height", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg, err := LoadArgs([]string{"-db", " ", "-page-size", "0", "-overscan", "-2", "-refresh-interval", "-1s"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, want := range []string{"db path", "page-size", "overscan", "refresh-interval"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
	if cfg.App.RefreshInterval != -time.Second {
		t.Fatalf("unexpected interval %s", cfg.App.RefreshInterval)
	}
}
