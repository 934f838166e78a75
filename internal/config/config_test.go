package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvStore, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Store.Path != ".todo.db" {
		t.Errorf("expected default store path .todo.db, got %q", cfg.Store.Path)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected default log level warn, got %q", cfg.Log.Level)
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[store]\npath = \"/var/tmp/tasks.db\"\n\n[log]\nlevel = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvStore, "")
	t.Setenv(EnvLogLevel, "")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Store.Path != "/var/tmp/tasks.db" {
		t.Errorf("expected store path from file, got %q", cfg.Store.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level from file, got %q", cfg.Log.Level)
	}

	t.Setenv(EnvStore, "/srv/other.db")
	t.Setenv(EnvLogLevel, "error")
	cfg, err = LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Store.Path != "/srv/other.db" {
		t.Errorf("expected env to override store path, got %q", cfg.Store.Path)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("expected env to override log level, got %q", cfg.Log.Level)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[store\npath = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error for malformed config")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/todo.db"); got != filepath.Join(home, "todo.db") {
		t.Errorf("expandPath(~/todo.db) = %q", got)
	}
	if got := expandPath("/abs/todo.db"); got != "/abs/todo.db" {
		t.Errorf("expandPath should leave absolute paths alone, got %q", got)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	t.Setenv(EnvStore, "")
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Store.Path = "/data/tasks.db"
	cfg.Log.Level = "info"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Store.Path != cfg.Store.Path || loaded.Log.Level != cfg.Log.Level {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}
