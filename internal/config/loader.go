package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSurvival loads the survival configuration.
// Search order: customPath -> ~/.survivor/configs/survival.yaml -> ./configs/survival.yaml -> embedded default
func LoadSurvival(customPath string) (SurvivalConfig, error) {
	// Missing keys in a partial file keep their defaults
	cfg := DefaultSurvivalConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("survival.yaml"), filepath.Join("configs", "survival.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultSurvivalConfig()
	if err := yaml.Unmarshal(defaultSurvivalYAML, &embedded); err != nil {
		return DefaultSurvivalConfig(), nil
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (SurvivalConfig, bool) {
	cfg := DefaultSurvivalConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survivor", "configs", filename)
}

// ApplySurvivalPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplySurvivalPreset(cfg *SurvivalConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Hitpoints = 8
		cfg.Spawner.Cooldown = 25
	case DifficultyHard:
		cfg.Player.Hitpoints = 3
		cfg.Spawner.Cooldown = 14
	}
}

// Marshal renders the config as YAML.
func Marshal(cfg SurvivalConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
