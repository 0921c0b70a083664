package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserLevelsPath is where `levels set` writes a custom table.
func UserLevelsPath() string {
	return userConfigPath("levels.yaml")
}

// LoadLevels loads the level table.
// Search order: customPath -> ~/.kidsarcade/levels.yaml -> ./configs/levels.yaml -> embedded default.
// A custom path that cannot be read or parsed returns the defaults together
// with the error so callers can warn and keep going.
func LoadLevels(customPath string) (LevelsConfig, error) {
	if customPath != "" {
		cfg, err := readLevels(customPath)
		if err != nil {
			return DefaultLevelsConfig(), err
		}
		return cfg, nil
	}

	if userCfgPath := UserLevelsPath(); userCfgPath != "" {
		cfg, err := readLevels(userCfgPath)
		switch {
		case err == nil:
			return cfg, nil
		case !errors.Is(err, fs.ErrNotExist):
			return DefaultLevelsConfig(), err
		}
	}

	if cfg, err := readLevels(filepath.Join("configs", "levels.yaml")); err == nil {
		return cfg, nil
	}

	return embeddedLevels(), nil
}

// ParseLevels decodes a level table document. A document without any level
// rows is rejected.
func ParseLevels(data []byte) (LevelsConfig, error) {
	var cfg LevelsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Levels) == 0 {
		return cfg, errors.New("no levels defined")
	}
	for _, e := range cfg.Levels {
		if e.Level < 1 {
			return cfg, fmt.Errorf("level %d: levels start at 1", e.Level)
		}
		if e.MaxNumber < 1 {
			return cfg, fmt.Errorf("level %d: max_number must be positive", e.Level)
		}
	}
	return cfg, nil
}

// SaveLevels writes cfg to path, creating parent directories. An empty path
// writes the user config file.
func SaveLevels(path string, cfg LevelsConfig) (string, error) {
	if path == "" {
		path = UserLevelsPath()
	}
	if path == "" {
		return "", errors.New("config: cannot resolve home directory")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("config: cannot encode levels: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return path, nil
}

// ResetLevels removes the custom table at path (or the user file) so the
// embedded defaults apply again. A missing file is not an error.
func ResetLevels(path string) error {
	if path == "" {
		path = UserLevelsPath()
	}
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: cannot remove %s: %w", path, err)
	}
	return nil
}

func readLevels(path string) (LevelsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LevelsConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseLevels(data)
	if err != nil {
		return LevelsConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func embeddedLevels() LevelsConfig {
	cfg, err := ParseLevels(defaultLevelsYAML)
	if err != nil {
		return DefaultLevelsConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kidsarcade", filename)
}
