package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "~/.xpr.yaml"

// config holds the settings of the front end. Fields missing from the file
// keep their default values.
type config struct {
	Prompt      string `yaml:"prompt"`
	HistorySize int    `yaml:"history_size"`
	HistoryFile string `yaml:"history_file"`
	LogLevel    string `yaml:"log_level"`
	MaxDepth    int    `yaml:"max_depth"`
}

func defaultConfig() config {
	return config{
		Prompt:      ">> ",
		HistorySize: 100,
		HistoryFile: "~/.xpr_history",
		LogLevel:    "info",
		MaxDepth:    10000,
	}
}

// loadConfig reads the config at path. A missing file is only an error when
// required is set.
func loadConfig(path string, required bool) (config, error) {
	cfg := defaultConfig()

	file, err := os.Open(expandHome(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if cfg.HistorySize < 0 {
		return cfg, fmt.Errorf("%s: history_size must not be negative", path)
	}
	if cfg.MaxDepth < 0 {
		return cfg, fmt.Errorf("%s: max_depth must not be negative", path)
	}
	return cfg, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
