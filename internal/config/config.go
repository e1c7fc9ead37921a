package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultPrompt   = "> "
	DefaultLogLevel = "warn"
)

// Settings configures the rill command
type Settings struct {
	Prompt       string `toml:"prompt"`
	HistoryFile  string `toml:"history_file"`
	Color        bool   `toml:"color"`
	LogLevel     string `toml:"log_level"`
	MaxCallDepth int    `toml:"max_call_depth"`
}

func Default() Settings {
	return Settings{
		Prompt:      DefaultPrompt,
		HistoryFile: filepath.Join(Dir(), "history"),
		Color:       true,
		LogLevel:    DefaultLogLevel,
	}
}

// Dir is the directory holding settings and history
func Dir() string {
	if dir := os.Getenv("RILL_CONFIG_DIR"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "rill")
	}
	return ".rill"
}

// DefaultPath is where Load looks when no path is given
func DefaultPath() string {
	return filepath.Join(Dir(), "settings.toml")
}

// Load reads settings from path, falling back to DefaultPath when path is
// empty. A missing file yields the defaults, a malformed one is an error.
// Keys absent from the file keep their default values.
func Load(path string) (Settings, error) {
	if path == "" {
		path = DefaultPath()
	}

	settings := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings %q: %w", path, err)
	}
	if settings.Prompt == "" {
		settings.Prompt = DefaultPrompt
	}
	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}
	if settings.MaxCallDepth < 0 {
		return Settings{}, fmt.Errorf("parse settings %q: max_call_depth must not be negative", path)
	}
	return settings, nil
}
