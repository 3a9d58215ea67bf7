package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/jeffpalmeri/abi/internal/options"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds the analyzer CLI settings.
type Config struct {
	Format   string
	MaskHex  string
	LogLevel logrus.Level
}

type fileConfig struct {
	Format   string `toml:"format"`
	Mask     string `toml:"mask"`
	LogLevel string `toml:"log_level"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Format:   FormatJSON,
		LogLevel: logrus.InfoLevel,
	}
}

// Load reads a TOML file on top of Default. Keys missing from the file keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}
	if meta.IsDefined("mask") {
		cfg.MaskHex = strings.TrimSpace(raw.Mask)
	}
	if meta.IsDefined("log_level") {
		lvl, err := logrus.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func Validate(cfg Config) error {
	switch cfg.Format {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatJSON, FormatText, cfg.Format)
	}
	if _, _, err := options.ParseMaskHex(cfg.MaskHex); err != nil {
		return fmt.Errorf("mask: %w", err)
	}
	return nil
}
