// Package config loads Parrot's CLI settings from parrot.yml, PARROT_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/simonhull/firebird-suite/parrot/logger"
)

// Keys understood in parrot.yml and as PARROT_<KEY> variables
const (
	KeyMask     = "mask"
	KeyFormat   = "format"
	KeyVerbose  = "verbose"
	KeyLogLevel = "log_level"
)

// Output formats for collected answers
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config holds resolved CLI settings
type Config struct {
	Mask     rune
	Format   string
	Verbose  bool
	LogLevel logger.Level

	// File is the config file that was read, empty when none was found
	File string
}

// New creates a viper instance with Parrot's defaults, config search path
// and environment binding. Flags are bound to it by the commands.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("parrot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PARROT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyMask, "*")
	v.SetDefault(KeyFormat, FormatYAML)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogLevel, "info")
	return v
}

// Load reads the config file (path, or parrot.yml in the working directory
// when path is empty) and resolves every setting. A missing parrot.yml is
// fine; a missing explicit path is not.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	mask := v.GetString(KeyMask)
	if utf8.RuneCountInString(mask) != 1 {
		return nil, fmt.Errorf("mask must be a single character, got %q", mask)
	}
	r, _ := utf8.DecodeRuneInString(mask)

	format := strings.ToLower(v.GetString(KeyFormat))
	if format != FormatYAML && format != FormatJSON {
		return nil, fmt.Errorf("invalid format %q (expected yaml|json)", format)
	}

	level, err := logger.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Mask:     r,
		Format:   format,
		Verbose:  v.GetBool(KeyVerbose),
		LogLevel: level,
		File:     v.ConfigFileUsed(),
	}
	if cfg.Verbose {
		cfg.LogLevel = logger.LevelDebug
	}
	return cfg, nil
}
