// Package cli implements the command dispatcher.
//
// An Environment carries the plugin registry, output sinks, and an optional
// transport override. Main resolves a module and action from argv in two
// passes (ParsePrimaryArgs, ParseModuleArgs), loads configuration, executes
// the selected command against a connected client, and writes the formatted
// result. Argument resolution reports usage halts as explicit Outcome values
// rather than panics or sentinel control-flow errors.
package cli
