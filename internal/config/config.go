// Package config loads the uriparts command configuration.
package config

//go:generate go tool errtrace -w .

import (
	"slices"

	"braces.dev/errtrace"
	"github.com/BurntSushi/toml"

	"github.com/ghettovoice/uriparts/internal/errorutil"
	"github.com/ghettovoice/uriparts/internal/log"
	"github.com/ghettovoice/uriparts/internal/util"
)

// ErrInvalidConfig is returned when a configuration value is not supported.
const ErrInvalidConfig errorutil.Error = "invalid config"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the command settings.
type Config struct {
	Format   string
	Log      log.Kind
	LogLevel string
	HostKind bool
	FailFast bool
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format:   FormatText,
		Log:      log.KindConsole,
		LogLevel: "warn",
	}
}

// config.toml key mapping.
type fileConfig struct {
	Format   string `toml:"format"`
	Log      string `toml:"log"`
	LogLevel string `toml:"log_level"`
	HostKind bool   `toml:"host_kind"`
	FailFast bool   `toml:"fail_fast"`
}

// Load reads a TOML file at path and overlays the defined keys onto [Default].
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, err))
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Config{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, "unknown key %q", undec[0].String()))
	}

	if meta.IsDefined("format") {
		cfg.Format = util.LCase(util.TrimSP(raw.Format))
	}
	if meta.IsDefined("log") {
		cfg.Log = log.Kind(util.LCase(util.TrimSP(raw.Log)))
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = util.TrimSP(raw.LogLevel)
	}
	if meta.IsDefined("host_kind") {
		cfg.HostKind = raw.HostKind
	}
	if meta.IsDefined("fail_fast") {
		cfg.FailFast = raw.FailFast
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errtrace.Wrap(err)
	}
	return cfg, nil
}

// Validate checks that all values are supported.
func (c Config) Validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON}, c.Format) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, "unsupported format %q", c.Format))
	}
	if !slices.Contains([]log.Kind{log.KindConsole, log.KindDev, log.KindNone}, c.Log) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, "unsupported log %q", c.Log))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, err))
	}
	return nil
}
