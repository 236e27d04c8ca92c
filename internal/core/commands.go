package core

import (
	"github.com/spf13/cobra"
)

// Module is the interface that all CLI command modules implement.
// This allows for a clean, extensible architecture where new subcommands can
// be added by simply implementing this interface and registering themselves.
type Module interface {
	// Name returns the unique subcommand name (e.g. "list", "download-all").
	// This is used for registration bookkeeping and diagnostics.
	Name() string

	// Command builds the cobra command for this module. Called once while the
	// root command is being assembled.
	Command() *cobra.Command
}

// moduleRegistry holds all registered command modules.
type moduleRegistry struct {
	modules []Module
}

var registry = &moduleRegistry{
	modules: make([]Module, 0),
}

// RegisterModule adds a command module to the global registry.
// This should be called during package initialization, before the root
// command is assembled.
func RegisterModule(m Module) {
	registry.modules = append(registry.modules, m)
}

// RegisteredModules returns all currently registered command modules.
// This is used by the CLI root to attach a subcommand for each module.
func RegisteredModules() []Module {
	return registry.modules
}
