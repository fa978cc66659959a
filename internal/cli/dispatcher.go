package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cumulus/internal/format"
)

// Outcome reports how an argument-resolution step concluded. When Halted,
// the dispatcher prints Text and exits with Code instead of proceeding.
type Outcome struct {
	Halted bool
	Code   int
	Text   string
}

func proceed() Outcome { return Outcome{} }

func halt(code int, text string) Outcome {
	return Outcome{Halted: true, Code: code, Text: text}
}

// PrimaryArgs is the result of top-level argument resolution.
type PrimaryArgs struct {
	// Module is the resolved module name, lowercased.
	Module string
	// Args is everything after the module token, in original order.
	Args []string
}

// ParsePrimaryArgs resolves the module from argv. The first non-flag token
// selects the module, matched case-insensitively against known modules; a
// missing module or the literal "help" halts with usage and code 0. An
// unknown module is a usage error.
func ParsePrimaryArgs(modules []string, argv []string) (PrimaryArgs, Outcome, error) {
	module := ""
	args := make([]string, 0, len(argv))
	for _, arg := range argv {
		if module == "" && !strings.HasPrefix(arg, "-") {
			module = strings.ToLower(arg)
			continue
		}
		args = append(args, arg)
	}

	if module == "" || module == "help" {
		return PrimaryArgs{}, halt(0, primaryUsage(modules)), nil
	}
	for _, known := range modules {
		if strings.EqualFold(known, module) {
			return PrimaryArgs{Module: strings.ToLower(known), Args: args}, proceed(), nil
		}
	}
	return PrimaryArgs{}, Outcome{}, &UsageError{
		Message: fmt.Sprintf("unknown module %q\n\n%s", module, primaryUsage(modules)),
	}
}

func primaryUsage(modules []string) string {
	var b strings.Builder
	b.WriteString("Cumulus command-line client\n\n")
	b.WriteString("Usage:\n  cumulus <module> <action> [arguments]\n\n")
	b.WriteString("Modules:\n")
	for _, name := range modules {
		fmt.Fprintf(&b, "  %s\n", name)
	}
	b.WriteString("\nRun \"cumulus <module>\" to list its actions. Configure credentials\nwith \"cumulus config setup\".")
	return b.String()
}

// Invocation binds one resolved action to its parsed arguments.
type Invocation struct {
	Module     string
	Action     string
	Command    Command
	Format     string
	ConfigPath string
	Flags      *pflag.FlagSet
	Args       []string
}

// ParseModuleArgs builds one sub-parser per registered action and parses
// args against them. Every sub-parser gets the action's own flags plus the
// universal --format and --config flags. Supplying no action at all is a
// halt with the module usage text, not an error.
func ParseModuleArgs(env *Environment, moduleName string, args []string) (*Invocation, Outcome, error) {
	module, ok := env.Registry.Module(moduleName)
	if !ok {
		return nil, Outcome{}, fmt.Errorf("module %q is not registered", moduleName)
	}

	var inv *Invocation
	root := &cobra.Command{
		Use:           "cumulus " + module.Name,
		Short:         module.Doc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	for _, name := range module.ActionNames() {
		action, _ := module.Action(name)
		actionName := name
		sub := &cobra.Command{
			Use:   actionName,
			Short: action.Doc(),
			RunE: func(c *cobra.Command, positional []string) error {
				mode, _ := c.Flags().GetString("format")
				configPath, _ := c.Flags().GetString("config")
				inv = &Invocation{
					Module:     module.Name,
					Action:     actionName,
					Command:    action,
					Format:     mode,
					ConfigPath: configPath,
					Flags:      c.Flags(),
					Args:       positional,
				}
				return nil
			},
		}
		action.RegisterFlags(sub.Flags())
		sub.Flags().String("format", env.formatDefault(),
			fmt.Sprintf("output format (%s)", strings.Join(format.Modes(), " or ")))
		sub.Flags().StringP("config", "C", "", "additional config file")
		root.AddCommand(sub)
	}

	if !hasAction(args) {
		return nil, halt(0, usageText(root)), nil
	}

	output := new(bytes.Buffer)
	root.SetOut(output)
	root.SetErr(output)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return nil, Outcome{}, &UsageError{Message: err.Error()}
	}
	if inv == nil {
		// --help or the help subcommand ran; cobra already rendered it.
		return nil, halt(0, output.String()), nil
	}
	if !validMode(inv.Format) {
		return nil, Outcome{}, &UsageError{
			Message: fmt.Sprintf("invalid --format %q (choose from %s)", inv.Format, strings.Join(format.Modes(), ", ")),
		}
	}
	return inv, proceed(), nil
}

func hasAction(args []string) bool {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return true
		}
	}
	return false
}

func usageText(root *cobra.Command) string {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	_ = root.Usage()
	return buf.String()
}

func validMode(mode string) bool {
	for _, known := range format.Modes() {
		if mode == known {
			return true
		}
	}
	return false
}
