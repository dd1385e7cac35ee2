package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REQUISITA_DB", "")
	t.Setenv("REQUISITA_ADDR", "")
	t.Setenv("REQUISITA_LOG", "")
	t.Setenv("REQUISITA_DEMO", "")

	cfg := Load()
	if cfg.DBPath != ":memory:" {
		t.Errorf("expected in-memory default, got %q", cfg.DBPath)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected :8080 default, got %q", cfg.Addr)
	}
	if cfg.LogPath != "" || cfg.Demo {
		t.Error("expected empty log path and demo off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REQUISITA_DB", "requisita.sqlite3")
	t.Setenv("REQUISITA_ADDR", ":9090")
	t.Setenv("REQUISITA_DEMO", "true")

	cfg := Load()
	if cfg.DBPath != "requisita.sqlite3" {
		t.Errorf("expected override, got %q", cfg.DBPath)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("expected override, got %q", cfg.Addr)
	}
	if !cfg.Demo {
		t.Error("expected demo enabled")
	}
}
