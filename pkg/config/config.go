// Package config loads the tool's own settings file. The file is
// located with pkg/configdirs itself, so the tool searches for its
// settings exactly the way it searches for anything else.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"configfinder/pkg/configdirs"

	"github.com/BurntSushi/toml"
)

const (
	// App is the subdirectory the settings live under.
	App = "configfinder"
	// Base and Ext name the settings file, settings.toml.
	Base = "settings"
	Ext  = "toml"
)

// Config holds the defaults applied when command flags are absent.
type Config struct {
	// Roots are extra directories to search, with the usual
	// config-segment treatment.
	Roots []string `toml:"roots"`

	// Toggles for the implicit search locations.
	UseCWD      bool `toml:"use_cwd"`
	UsePlatform bool `toml:"use_platform"`
	UseEtc      bool `toml:"use_etc"`
}

// Default returns the settings used when no file is found.
func Default() *Config {
	return &Config{
		UseCWD:      true,
		UsePlatform: true,
		UseEtc:      true,
	}
}

// Load locates and decodes settings.toml from the standard locations
// (current directory, platform config home, system config dir). A
// missing file is not an error; defaults are returned.
func Load() (*Config, error) {
	d := configdirs.Empty()
	if err := d.AddCurrentDir(); err != nil {
		slog.Debug("skipping current directory", "err", err)
	}
	d.AddPlatformConfigDir()
	addSystemDirs(d)

	return LoadFrom(d)
}

// LoadFrom decodes the first settings file the accumulated directories
// yield, then layers the .local sibling on top when present, so a
// machine can override individual fields without touching the shared
// file.
func LoadFrom(d *configdirs.ConfigDirs) (*Config, error) {
	cfg := Default()

	candidates := d.Search(App, Base, Ext)
	for {
		wl, ok := candidates.Next()
		if !ok {
			break
		}
		if _, err := os.Stat(wl.Path()); err != nil {
			continue
		}

		if _, err := toml.DecodeFile(wl.Path(), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", wl.Path(), err)
		}
		slog.Debug("loaded settings", "path", wl.Path())

		if _, err := os.Stat(wl.LocalPath()); err == nil {
			if _, err := toml.DecodeFile(wl.LocalPath(), cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", wl.LocalPath(), err)
			}
			slog.Debug("applied local override", "path", wl.LocalPath())
		}
		break
	}

	return cfg, nil
}
