package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds stored defaults consumed when the matching flags are
// omitted on the command line.
type Config struct {
	// DefaultCabins are the cabin classes compared by default.
	DefaultCabins []string `json:"default_cabins,omitempty"`
	// Output selects the default rendering: "table" or "json".
	Output string `json:"output,omitempty"`
}

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

func defaults() Config {
	return Config{
		DefaultCabins: []string{"economy", "business", "first"},
		Output:        OutputTable,
	}
}

func ConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "flywise"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "flywise"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func Load() (Config, error) {
	cfg := defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	applyEnv(&cfg)
	if len(cfg.DefaultCabins) == 0 {
		cfg.DefaultCabins = defaults().DefaultCabins
	}
	if cfg.Output == "" {
		cfg.Output = OutputTable
	}
	return cfg, nil
}

func Save(cfg Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(filepath.Join(dir, "config.json"), b, 0o600)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FLYWISE_CABINS"); v != "" {
		cabins := []string{}
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cabins = append(cabins, c)
			}
		}
		if len(cabins) > 0 {
			cfg.DefaultCabins = cabins
		}
	}
	if v := os.Getenv("FLYWISE_OUTPUT"); v != "" {
		cfg.Output = v
	}
}
