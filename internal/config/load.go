package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < environment.
// The explicit path takes precedence over standard locations; pass "" to
// search them.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	return cfg, nil
}

// applyEnv overlays environment variables, loading a .env file first if one
// is present in the working directory.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if level := os.Getenv("MESHFORGE_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if logFile := os.Getenv("MESHFORGE_LOG_FILE"); logFile != "" {
		cfg.Logging.LogFile = logFile
	}
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./meshforge.yaml",
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
		return filepath.Join(home, "Library", "Application Support", "Meshforge")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Meshforge")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "meshforge")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "meshforge")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
