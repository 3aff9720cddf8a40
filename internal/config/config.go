package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoggingConfig defines runtime logging behavior.
type LoggingConfig struct {
	Level     string `json:"level"`
	LogToFile bool   `json:"log_to_file"`
}

// WindowConfig stores the last main window geometry.
type WindowConfig struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// UIConfig stores persistent UI preferences. Graph parameters (region,
// coding rate, axis modes) are deliberately not persisted; the tool starts
// unconfigured each session.
type UIConfig struct {
	Window WindowConfig `json:"window"`
}

// AppConfig is the root persisted application configuration.
type AppConfig struct {
	Logging LoggingConfig `json:"logging"`
	UI      UIConfig      `json:"ui"`
}

const (
	DefaultWindowWidth  float32 = 1000
	DefaultWindowHeight float32 = 640
)

func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{
			Level:     "info",
			LogToFile: false,
		},
		UI: UIConfig{
			Window: WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight},
		},
	}
}

func Load(path string) (AppConfig, error) {
	cfg := Default()
	cleanPath := filepath.Clean(path)
	// #nosec G304 -- path is resolved by app runtime and points to user config dir.
	raw, err := os.ReadFile(cleanPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(raw, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("decode config json: %w", err)
	}

	cfg.FillMissingDefaults()

	return cfg, nil
}

func (c *AppConfig) FillMissingDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.UI.Window.Width <= 0 {
		c.UI.Window.Width = DefaultWindowWidth
	}
	if c.UI.Window.Height <= 0 {
		c.UI.Window.Height = DefaultWindowHeight
	}
}

func (c AppConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		return fmt.Errorf("unknown log level: %s", c.Logging.Level)
	}
	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return errors.New("window size must be positive")
	}

	return nil
}

func Save(path string, cfg AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0o600); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp config: %w", err)
	}

	return nil
}
