package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/ccndtag/internal/logging"
)

const (
	FormatText = "text"
	FormatTOML = "toml"
)

// ToolConfig configures the dtagctl tool.
type ToolConfig struct {
	// LogLevel is empty unless set explicitly; the logging profile and its
	// environment overrides apply then.
	LogLevel string `toml:"log_level"`
	Format   string `toml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() ToolConfig {
	return ToolConfig{Format: FormatText}
}

// LoadToolConfig reads path, fills defaults for unset keys and validates.
func LoadToolConfig(path string) (ToolConfig, error) {
	cfg := Default()
	if err := loadToml(path, &cfg); err != nil {
		return ToolConfig{}, err
	}
	cfg.LogLevel = strings.TrimSpace(cfg.LogLevel)
	if strings.TrimSpace(cfg.Format) == "" {
		cfg.Format = FormatText
	}
	if err := ValidateToolConfig(cfg); err != nil {
		return ToolConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	md, err := toml.Decode(string(data), out)
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}
	return nil
}

func ValidateToolConfig(cfg ToolConfig) error {
	if cfg.LogLevel != "" {
		if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("config log_level invalid: %q", cfg.LogLevel)
		}
	}
	return ValidateFormat(cfg.Format)
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatTOML:
		return nil
	default:
		return fmt.Errorf("config format invalid: %q (supported: text, toml)", format)
	}
}
