package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func readYAML(path string, cfg *EscapeConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// LoadEscape loads the game configuration. Search order: customPath,
// ~/.tilt-escape/configs/escape.yaml, ./configs/escape.yaml, then the
// embedded default.
func LoadEscape(customPath string) (EscapeConfig, error) {
	var cfg EscapeConfig

	// An explicit path must load; the later sources may fall through
	if customPath != "" {
		if err := readYAML(customPath, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{
		userConfigPath("escape.yaml"),
		filepath.Join("configs", "escape.yaml"),
	} {
		if path == "" {
			continue
		}
		if err := readYAML(path, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultEscapeYAML, &cfg); err != nil {
		// The embedded YAML should always parse; hardcoded values as
		// the last resort
		return DefaultEscapeConfig(), nil
	}
	return cfg, nil
}

// userConfigPath locates filename under the user's config directory,
// "" when no home is available.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilt-escape", "configs", filename)
}

// ApplyEscapePreset rewrites the difficulty section for a named preset
// and tunes guard alertness to match.
func ApplyEscapePreset(cfg *EscapeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Guards.MaxWaitSeconds = 3.0
		cfg.Guards.MaxLookSeconds = 3.0
	case DifficultyHard:
		cfg.Guards.MaxWaitSeconds = 1.2
		cfg.Guards.MaxLookSeconds = 1.2
	}
}
