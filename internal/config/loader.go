package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrossing loads crossing configuration.
// Search order: customPath -> ~/.crossing/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
// The result is validated before it is returned.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	cfg, err := loadCrossing(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadCrossing(customPath string) (CrossingConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCrossingConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := DefaultCrossingConfig()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultCrossingConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crossing.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg := DefaultCrossingConfig()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "crossing.yaml")); err == nil {
		cfg := DefaultCrossingConfig()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(defaultCrossingYAML, &cfg); err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.crossing, or empty if home is unavailable.
// Logs and screenshots are written under it as well.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossing")
}
