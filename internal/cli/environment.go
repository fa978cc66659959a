package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"cumulus/internal/api"
	"cumulus/internal/format"
)

// Environment carries everything one CLI invocation needs: the plugin
// registry, output sinks, a logger, and an optional transport override.
// The dispatcher threads it through every call; nothing is ambient.
type Environment struct {
	Registry *Registry
	Out      io.Writer
	// Logger, when set, replaces the logger derived from the configured
	// log_level. Test harnesses point this at a no-op logger.
	Logger *slog.Logger
	// Transport, when set, replaces the default REST transport. Test
	// harnesses point this at a mockable fixture transport.
	Transport api.Transport
}

// NewEnvironment returns an environment writing to standard output.
func NewEnvironment(registry *Registry) *Environment {
	return &Environment{
		Registry: registry,
		Out:      os.Stdout,
	}
}

// write sends text to the output sink with exactly one trailing newline.
func (e *Environment) write(text string) {
	fmt.Fprintln(e.Out, strings.TrimRight(text, "\n"))
}

// formatDefault picks the --format default: tables for people, raw text
// for pipes.
func (e *Environment) formatDefault() string {
	if file, ok := e.Out.(*os.File); ok {
		fd := file.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return string(format.ModeTable)
		}
	}
	return string(format.ModeRaw)
}
