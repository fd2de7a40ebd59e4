package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the user defaults pint applies before command-line flags.
type Config struct {
	LogFile    string
	Repository string
	Colour     bool
	ShowDate   bool
	LogLevel   string
}

const (
	defaultConfigPath = "~/.config/pint/config.toml"
	defaultLogFile    = "/var/log/paludis.log"
	defaultLogLevel   = "warn"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{LogFile: defaultLogFile, Colour: true, LogLevel: defaultLogLevel}
}

// Load locates and parses the pint config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		File       string `toml:"file"`
		Repository string `toml:"repository"`
		Colour     *bool  `toml:"colour"`
		Date       *bool  `toml:"date"`
		LogLevel   string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logFile := strings.TrimSpace(raw.File); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	cfg.Repository = strings.TrimSpace(raw.Repository)
	if raw.Colour != nil {
		cfg.Colour = *raw.Colour
	}
	if raw.Date != nil {
		cfg.ShowDate = *raw.Date
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
