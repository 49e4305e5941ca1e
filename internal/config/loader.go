package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.dudu/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
func LoadShooter(customPath string) (ShooterConfig, error) {
	var cfg ShooterConfig
	if err := loadYAML(customPath, "shooter.yaml", defaultShooterYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadLevels loads the campaign level list.
// Search order: customPath -> ~/.dudu/configs/levels.yaml -> ./configs/levels.yaml -> embedded default
func LoadLevels(customPath string) (LevelsConfig, error) {
	var cfg LevelsConfig
	if err := loadYAML(customPath, "levels.yaml", defaultLevelsYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultLevelsConfig(), nil
	}
	return cfg, nil
}

// loadYAML decodes the first readable, parseable candidate into out.
// A custom path is authoritative: failing to read or parse it is an error.
func loadYAML(customPath, filename string, embedded []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("failed to parse embedded %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dudu", "configs", filename)
}
