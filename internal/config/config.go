// ABOUTME: Beastmode configuration management with backend selection.
// ABOUTME: Handles settings, vision credentials, and the storage factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/beastmode/internal/charm"
	"github.com/harperreed/beastmode/internal/storage"
)

// Config stores beastmode tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default),
	// "markdown", or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// SQLite puts beastmode.db here. Markdown puts profile.md, cycles/,
	// and water/ here. Supports ~ expansion for home directory.
	// Defaults to ~/.local/share/beastmode.
	DataDir string `json:"data_dir,omitempty"`

	// OpenAIAPIKey is used by the meal-photo scanner. The
	// OPENAI_API_KEY environment variable takes precedence.
	OpenAIAPIKey string `json:"openai_api_key,omitempty"`

	// OpenAIBaseURL overrides the API endpoint, for proxies and
	// compatible servers.
	OpenAIBaseURL string `json:"openai_base_url,omitempty"`

	// VisionModel selects the model used for photo analysis.
	VisionModel string `json:"vision_model,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetOpenAIAPIKey returns the vision API key, with the environment
// variable taking precedence over the config file.
func (c *Config) GetOpenAIAPIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return c.OpenAIAPIKey
}

// GetOpenAIBaseURL returns the vision API base URL, defaulting to the
// OpenAI endpoint.
func (c *Config) GetOpenAIBaseURL() string {
	if c.OpenAIBaseURL == "" {
		return "https://api.openai.com/v1"
	}
	return strings.TrimSuffix(c.OpenAIBaseURL, "/")
}

// GetVisionModel returns the configured vision model, defaulting to
// gpt-4o.
func (c *Config) GetVisionModel() string {
	if c.VisionModel == "" {
		return "gpt-4o"
	}
	return c.VisionModel
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "sqlite":
		dbPath := filepath.Join(dataDir, "beastmode.db")
		return storage.Open(dbPath)
	case "markdown":
		return storage.NewMarkdownStore(dataDir)
	case "charm":
		return charm.NewStore()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "beastmode", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
