package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no explicit
// config path is given.
const EnvConfigPath = "SPACERUN_CONFIG"

const configFileName = "spacerun.yaml"

// LoadSpaceRun loads SpaceRun configuration.
// Search order: customPath -> $SPACERUN_CONFIG -> ~/.arcade/configs/spacerun.yaml
// -> ./configs/spacerun.yaml -> embedded default.
// Files on the search path that fail to parse or validate are skipped;
// an explicit path (argument or environment) must be valid.
func LoadSpaceRun(customPath string) (SpaceRunConfig, error) {
	if customPath == "" {
		customPath = GetEnv(EnvConfigPath, "")
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SpaceRunConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SpaceRunConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSpaceRunYAML)
	if err != nil {
		return DefaultSpaceRunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults and validates it.
// Keys missing from the document keep their default values.
func Parse(data []byte) (SpaceRunConfig, error) {
	cfg := DefaultSpaceRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SpaceRunConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SpaceRunConfig{}, err
	}
	return cfg, nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SpaceRunConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "time"
	}

	switch preset {
	case DifficultyEasy:
		cfg.Ship.StartHealth = cfg.Ship.MaxHealth
	case DifficultyHard:
		cfg.Ship.StartHealth = 1
		cfg.Weapons.FireRate *= 1.5
	}
}
