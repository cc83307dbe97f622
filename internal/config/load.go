package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "TEXGEN_CONFIG"

// Load loads configuration with priority: defaults < file.
// An explicit path must exist; otherwise the standard locations are
// searched and a missing file is not an error. Flags are applied on top by
// the caller. It returns the path that was read, if any.
func Load(explicitPath string) (*Config, string, error) {
	cfg := Default()

	configPath := explicitPath
	if configPath == "" {
		configPath = os.Getenv(EnvConfigPath)
	}
	if configPath == "" {
		configPath = findConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, "", fmt.Errorf("config file %s: %w", configPath, err)
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, "", fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	return cfg, configPath, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./texgen.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "texgen")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "texgen")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "texgen")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "texgen")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 - Config path chosen by the user
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
