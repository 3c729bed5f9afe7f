package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "pong.yaml"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.neonpong/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are decoded over the defaults, so keys left out keep their default.
func Load(customPath string) (Pong, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		cfg, err := loadFile(path)
		if err == nil {
			return cfg, cfg.Validate()
		}
		if !os.IsNotExist(err) {
			return cfg, err
		}
	}

	cfg, err := Parse(defaultPongYAML)
	if err != nil {
		cfg = DefaultPong() // Fallback to hardcoded if embed is broken
	}
	return cfg, cfg.Validate()
}

// Parse decodes YAML over the defaults without validating.
func Parse(data []byte) (Pong, error) {
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	return cfg, nil
}

func decode(data []byte) (Pong, error) {
	cfg := DefaultPong()
	err := yaml.Unmarshal(data, &cfg)
	return cfg, err
}

func loadFile(path string) (Pong, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Keep the not-exist error unwrapped so the search can skip it
		if os.IsNotExist(err) {
			return DefaultPong(), err
		}
		return DefaultPong(), fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations, most specific first.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".neonpong", fileName))
	}
	return append(paths, filepath.Join("configs", fileName))
}
