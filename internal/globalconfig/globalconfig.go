package globalconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the single configuration struct passed into the catalog
// fetcher and the merge engine. No ambient singletons.
type Settings struct {
	// CacheTTLSeconds guards the remote catalog cache. Default one day.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
	// Token is an optional GitHub access token for the contents API.
	Token string `yaml:"token,omitempty"`
	// Proxy is an optional outbound proxy URL.
	Proxy string `yaml:"proxy,omitempty"`
}

const (
	configDir  = ".config/gat"
	configFile = "config.yml"

	DefaultCacheTTLSeconds = 86400
)

func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

func DefaultSettings() *Settings {
	return &Settings{CacheTTLSeconds: DefaultCacheTTLSeconds}
}

// Load reads ~/.config/gat/config.yml and applies environment fallbacks.
// Settings values win over environment variables.
func Load() (*Settings, error) {
	fullConfigDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(fullConfigDir, configFile)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no configuration found. Please run 'gat init' first")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Settings
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	applyFallbacks(&cfg)
	return &cfg, nil
}

func applyFallbacks(cfg *Settings) {
	if cfg.CacheTTLSeconds <= 0 {
		cfg.CacheTTLSeconds = DefaultCacheTTLSeconds
	}
	if cfg.Token == "" {
		cfg.Token = firstEnv("GAT_TOKEN", "GITHUB_TOKEN")
	}
	if cfg.Proxy == "" {
		cfg.Proxy = firstEnv("HTTPS_PROXY", "HTTP_PROXY")
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func (c *Settings) Save() error {
	fullConfigDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(fullConfigDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(filepath.Join(fullConfigDir, configFile), data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
