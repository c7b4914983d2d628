// Package config handles ember.toml runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/ember/vm"
)

// FileName is the configuration file looked up by Load and FindAndLoad.
const FileName = "ember.toml"

// Config represents an ember.toml file.
type Config struct {
	Runtime Runtime `toml:"runtime"`
	Log     Log     `toml:"log"`

	// Dir is the directory containing the ember.toml file (set at load time).
	Dir string `toml:"-"`
}

// Runtime configures vm.Runtime construction.
type Runtime struct {
	SymbolCapacity int  `toml:"symbol-capacity"`
	TraceDispatch  bool `toml:"trace-dispatch"`
}

// Log configures commonlog output.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	Path      string `toml:"path"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Runtime: Runtime{SymbolCapacity: vm.DefaultOptions().SymbolCapacity},
		Log:     Log{Verbosity: 1},
	}
}

// Load parses ember.toml from the given directory. Keys missing from the
// file keep their Default values.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	if c.Runtime.SymbolCapacity < 0 {
		return nil, fmt.Errorf("%s: runtime.symbol-capacity must not be negative", path)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find an ember.toml file, then
// loads it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// RuntimeOptions maps the [runtime] table onto vm.Options.
func (c *Config) RuntimeOptions() vm.Options {
	opts := vm.DefaultOptions()
	if c.Runtime.SymbolCapacity > 0 {
		opts.SymbolCapacity = c.Runtime.SymbolCapacity
	}
	opts.TraceDispatch = c.Runtime.TraceDispatch
	return opts
}

// LogPath returns the log file path, or "" for stderr. Relative paths
// are resolved against Dir.
func (c *Config) LogPath() string {
	if c.Log.Path == "" {
		return ""
	}
	if filepath.IsAbs(c.Log.Path) || c.Dir == "" {
		return c.Log.Path
	}
	return filepath.Join(c.Dir, c.Log.Path)
}
