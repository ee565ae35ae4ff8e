package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables holding provider secrets. Secrets are never
// written to the config file.
const (
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvGroqAPIKey  = "GROQ_API_KEY"
)

// Config represents the persisted user preferences.
type Config struct {
	DefaultTheme string `json:"default_theme"`
	DefaultTone  string `json:"default_tone"`
	ServerAddr   string `json:"server_addr"`
}

// Manager handles configuration persistence.
type Manager struct {
	configPath string
}

// NewManager creates a new config manager.
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return &Manager{
		configPath: filepath.Join(homeDir, ".repopitch.json"),
	}, nil
}

// Load loads the configuration from disk, returning defaults when no
// config file exists yet.
func (m *Manager) Load() (*Config, error) {
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := defaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.DefaultTheme == "" {
		config.DefaultTheme = "modern"
	}
	if config.DefaultTone == "" {
		config.DefaultTone = "balanced"
	}
	if config.ServerAddr == "" {
		config.ServerAddr = ":8080"
	}

	return config, nil
}

// Save saves the configuration to disk.
func (m *Manager) Save(config *Config) error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(m.configPath, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ConfigPath returns the path to the config file.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// GitHubToken returns the repository-data provider token from the
// environment. An empty value degrades collection, it never crashes.
func (m *Manager) GitHubToken() string {
	return os.Getenv(EnvGitHubToken)
}

// GroqAPIKey returns the completion provider key from the environment.
func (m *Manager) GroqAPIKey() string {
	return os.Getenv(EnvGroqAPIKey)
}

func defaultConfig() *Config {
	return &Config{
		DefaultTheme: "modern",
		DefaultTone:  "balanced",
		ServerAddr:   ":8080",
	}
}
