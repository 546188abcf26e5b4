// Package config manages the CLI's local session: the API base URL, the
// cached current user, and the bearer credential.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDirName  = ".agri"
	configFileName = "config.json"
)

// CachedUser is the locally cached identity of the logged-in user.
type CachedUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// Config is what gets stored in ~/.agri/config.json. The bearer credential
// itself lives in the system keyring, not here.
type Config struct {
	APIBaseURL string      `json:"api_base_url,omitempty"`
	User       *CachedUser `json:"user,omitempty"`
}

// GetConfigPath returns the path to the config file (~/.agri/config.json)
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// LoadConfig reads the config file, returning an empty config when none exists.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

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

// SaveConfig writes the config file, creating ~/.agri if needed.
func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
