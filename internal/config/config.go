// Package config handles loading focusstudio.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/focusstudio/internal/paths"
)

// APIKeyEnv overrides the configured chat API key when set.
const APIKeyEnv = "FOCUS_API_KEY"

// Default values applied when neither config file sets a field.
const (
	DefaultModel        = "gpt-4o-mini"
	DefaultBaseURL      = "https://api.openai.com/v1"
	DefaultTheme        = "comfort"
	DefaultFocusMinutes = 25
)

// Config represents the focusstudio.toml configuration file.
type Config struct {
	Chat  Chat  `toml:"chat"`
	Timer Timer `toml:"timer"`
	UI    UI    `toml:"ui"`
}

// Chat contains chat-completion endpoint configuration.
type Chat struct {
	// APIKey is the bearer token for the completions endpoint.
	APIKey string `toml:"api-key"`

	// Model selects the completion model.
	Model string `toml:"model"`

	// BaseURL points at an OpenAI-compatible API root.
	BaseURL string `toml:"base-url"`
}

// Timer contains focus timer configuration.
type Timer struct {
	// FocusMinutes is the default focus block length (25 or 50).
	FocusMinutes int `toml:"focus-minutes"`
}

// UI contains presentation configuration.
type UI struct {
	// Theme is the default theme (light, dark, comfort).
	Theme string `toml:"theme"`
}

// Load loads configuration from the working directory and the global
// config file. Returns a config with defaults if no config files exist.
func Load(projectDir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectDir, "focusstudio.toml"))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	applyDefaults(merged)
	return merged, nil
}

// ResolveAPIKey returns the chat API key, preferring the environment.
func (c *Config) ResolveAPIKey() string {
	if key := os.Getenv(APIKeyEnv); key != "" {
		return key
	}
	return c.Chat.APIKey
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Chat.APIKey = mergeString(projectMeta.IsDefined("chat", "api-key"), projectCfg.Chat.APIKey, globalCfg.Chat.APIKey)
	merged.Chat.Model = mergeString(projectMeta.IsDefined("chat", "model"), projectCfg.Chat.Model, globalCfg.Chat.Model)
	merged.Chat.BaseURL = mergeString(projectMeta.IsDefined("chat", "base-url"), projectCfg.Chat.BaseURL, globalCfg.Chat.BaseURL)
	merged.UI.Theme = mergeString(projectMeta.IsDefined("ui", "theme"), projectCfg.UI.Theme, globalCfg.UI.Theme)
	if projectMeta.IsDefined("timer", "focus-minutes") {
		merged.Timer.FocusMinutes = projectCfg.Timer.FocusMinutes
	} else if globalMeta.IsDefined("timer", "focus-minutes") {
		merged.Timer.FocusMinutes = globalCfg.Timer.FocusMinutes
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func applyDefaults(cfg *Config) {
	if cfg.Chat.Model == "" {
		cfg.Chat.Model = DefaultModel
	}
	if cfg.Chat.BaseURL == "" {
		cfg.Chat.BaseURL = DefaultBaseURL
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = DefaultTheme
	}
	if cfg.Timer.FocusMinutes == 0 {
		cfg.Timer.FocusMinutes = DefaultFocusMinutes
	}
}
