package config

import (
	"github.com/tliron/commonlog"

	"github.com/chazu/ember/vm"

	_ "github.com/tliron/commonlog/simple"
)

// ConfigureLogging applies the [log] table to commonlog.
// Verbosity 0 silences output.
func (c *Config) ConfigureLogging() {
	var path *string
	if p := c.LogPath(); p != "" {
		path = &p
	}
	commonlog.Configure(c.Log.Verbosity, path)
}

// NewRuntime configures logging and returns a Runtime built from c.
func (c *Config) NewRuntime() *vm.Runtime {
	c.ConfigureLogging()
	return vm.NewRuntimeWithOptions(c.RuntimeOptions())
}
