package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid settings")

// Load loads settings.
// Search order: customPath -> ~/.merge2048/settings.yaml -> ./configs/settings.yaml -> embedded default
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func Load(customPath string) (Settings, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Settings{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Settings{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("settings.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "settings.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return embedded(), nil
}

// Parse decodes YAML on top of the default settings and validates the result.
func Parse(data []byte) (Settings, error) {
	cfg := embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// embedded decodes the embedded default YAML, falling back to the hardcoded
// defaults if that fails.
func embedded() Settings {
	var cfg Settings
	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return DefaultSettings()
	}
	if err := cfg.Validate(); err != nil {
		return DefaultSettings()
	}
	return cfg
}

// Marshal encodes settings as YAML.
func Marshal(cfg Settings) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode settings: %w", err)
	}
	return data, nil
}

// Validate reports the first setting that the engine cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.Grid.Width < 2 || s.Grid.Height < 2:
		return fmt.Errorf("%w: grid must be at least 2x2, got %dx%d", ErrInvalid, s.Grid.Width, s.Grid.Height)
	case s.Animation.MoveTime <= 0 || s.Animation.NewTime <= 0 || s.Animation.CombineTime <= 0:
		return fmt.Errorf("%w: animation times must be positive", ErrInvalid)
	case s.Animation.CombineScale <= 0:
		return fmt.Errorf("%w: combine_scale must be positive", ErrInvalid)
	case s.Spawn.FourProbability < 0 || s.Spawn.FourProbability > 1:
		return fmt.Errorf("%w: four_probability %v outside [0, 1]", ErrInvalid, s.Spawn.FourProbability)
	case s.Geometry.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive", ErrInvalid)
	case s.Geometry.TilePadding < 0 || s.Geometry.BoardPadding < 0 || s.Geometry.BoardOffsetY < 0:
		return fmt.Errorf("%w: paddings must not be negative", ErrInvalid)
	case s.Geometry.RowScale <= 0:
		return fmt.Errorf("%w: row_scale must be positive", ErrInvalid)
	case s.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalid)
	case s.Target < 0 || (s.Target > 0 && s.Target&(s.Target-1) != 0):
		return fmt.Errorf("%w: target %d is not a power of two", ErrInvalid, s.Target)
	}
	return nil
}

// UserConfigPath returns the path to a file in the user config directory,
// or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".merge2048", filename)
}
