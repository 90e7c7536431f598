// Package config loads the chartblocks configuration file.
//
// The file is TOML and entirely optional:
//
//	[input]
//	default = "sample_data.csv"  # used when the requested input does not exist
//	sheet = "Charts"             # worksheet for .xlsx inputs
//
//	[output]
//	dir = "charts"
//
//	[serve]
//	addr = "127.0.0.1:8080"
//
// Keys the loader does not know are rejected so typos do not silently fall
// back to defaults.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/chartblocks/pkg/errors"
)

const (
	appName  = "chartblocks"
	fileName = "config.toml"

	// DefaultInput is the input used when none is given or the given one
	// does not exist.
	DefaultInput = "sample_data.csv"

	// DefaultOutputDir is where charts are written.
	DefaultOutputDir = "."

	// DefaultAddr is the listen address of the preview server.
	DefaultAddr = "127.0.0.1:8080"
)

// Config is the merged configuration.
type Config struct {
	Input  Input  `toml:"input"`
	Output Output `toml:"output"`
	Serve  Serve  `toml:"serve"`
}

type Input struct {
	Default string `toml:"default"`
	Sheet   string `toml:"sheet"`
}

type Output struct {
	Dir string `toml:"dir"`
}

type Serve struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:  Input{Default: DefaultInput},
		Output: Output{Dir: DefaultOutputDir},
		Serve:  Serve{Addr: DefaultAddr},
	}
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/chartblocks/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads path on top of the defaults. A missing file yields the defaults
// unless explicit is set, in which case it is a MISSING_RESOURCE error.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, errs.New(errs.ErrCodeMissingResource, "config file %q not found", path)
			}
			return cfg, nil
		}
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Default(), errs.New(errs.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores defaults for keys set to empty strings.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Input.Default == "" {
		c.Input.Default = d.Input.Default
	}
	if c.Output.Dir == "" {
		c.Output.Dir = d.Output.Dir
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = d.Serve.Addr
	}
}
