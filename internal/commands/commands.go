// Package commands registers the built-in CLI modules.
package commands

import "cumulus/internal/cli"

// Registry returns the default plugin registry with every built-in module
// in display order.
func Registry() *cli.Registry {
	registry := cli.NewRegistry()
	registerAccount(registry)
	registerConfig(registry)
	registerHardware(registry)
	return registry
}
