// ABOUTME: Tests for beastmode configuration management.
// ABOUTME: Covers load, save, defaults, backend selection, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "markdown"}
	if got := cfg.GetBackend(); got != "markdown" {
		t.Errorf("GetBackend() = %q, want %q", got, "markdown")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/beastmode-test"}
	if got := cfg.GetDataDir(); got != "/tmp/beastmode-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/beastmode-test")
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~")
	if got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/beastmode")
	want := filepath.Join(home, "data/beastmode")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/beastmode\") = %q, want %q", got, want)
	}
}

func TestExpandPathRelative(t *testing.T) {
	if got := ExpandPath("data/beastmode"); got != "data/beastmode" {
		t.Errorf("ExpandPath(\"data/beastmode\") = %q, want %q", got, "data/beastmode")
	}
}

func TestGetOpenAIAPIKeyEnvOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg := &Config{OpenAIAPIKey: "sk-from-file"}
	if got := cfg.GetOpenAIAPIKey(); got != "sk-from-env" {
		t.Errorf("GetOpenAIAPIKey() = %q, want env value", got)
	}
}

func TestGetOpenAIAPIKeyFromConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg := &Config{OpenAIAPIKey: "sk-from-file"}
	if got := cfg.GetOpenAIAPIKey(); got != "sk-from-file" {
		t.Errorf("GetOpenAIAPIKey() = %q, want config value", got)
	}
}

func TestGetOpenAIBaseURLDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetOpenAIBaseURL(); got != "https://api.openai.com/v1" {
		t.Errorf("GetOpenAIBaseURL() = %q", got)
	}
}

func TestGetOpenAIBaseURLTrimsSlash(t *testing.T) {
	cfg := &Config{OpenAIBaseURL: "http://localhost:8080/v1/"}
	if got := cfg.GetOpenAIBaseURL(); got != "http://localhost:8080/v1" {
		t.Errorf("GetOpenAIBaseURL() = %q, want trailing slash trimmed", got)
	}
}

func TestGetVisionModelDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetVisionModel(); got != "gpt-4o" {
		t.Errorf("GetVisionModel() = %q, want %q", got, "gpt-4o")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.Backend != "" {
		t.Errorf("Expected empty Backend, got %q", cfg.Backend)
	}
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{
		Backend:     "markdown",
		DataDir:     "~/beastmode-data",
		VisionModel: "gpt-4o-mini",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Backend != "markdown" {
		t.Errorf("Backend = %q, want %q", loaded.Backend, "markdown")
	}
	if loaded.DataDir != "~/beastmode-data" {
		t.Errorf("DataDir = %q, want %q", loaded.DataDir, "~/beastmode-data")
	}
	if loaded.VisionModel != "gpt-4o-mini" {
		t.Errorf("VisionModel = %q, want %q", loaded.VisionModel, "gpt-4o-mini")
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "redis"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestOpenStorageSqlite(t *testing.T) {
	cfg := &Config{Backend: "sqlite", DataDir: t.TempDir()}

	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() failed: %v", err)
	}
	defer repo.Close()

	if _, err := repo.ListCycles(); err != nil {
		t.Errorf("ListCycles() on fresh store failed: %v", err)
	}
}
