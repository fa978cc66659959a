package cli

import (
	"context"
	"strings"

	"github.com/spf13/pflag"

	"cumulus/internal/api"
	"cumulus/internal/format"
)

// Command is one pluggable CLI action.
type Command interface {
	// Doc returns the help text shown for the action.
	Doc() string
	// RegisterFlags adds action-specific flags to the parser.
	RegisterFlags(fs *pflag.FlagSet)
	// Execute performs the action and returns a displayable result, or
	// nil when there is nothing to print.
	Execute(ctx context.Context, client *api.Client, inv *Invocation) (format.Value, error)
}

// Registry maps module names to their actions. Both levels preserve
// registration order; lookups are case-insensitive.
type Registry struct {
	order   []string
	modules map[string]*Module
}

// Module is an ordered set of named actions plus module help text.
type Module struct {
	Name    string
	Doc     string
	order   []string
	actions map[string]Command
}

// NewRegistry returns an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// AddModule registers a module name (stored lowercase) and returns it for
// action registration. Re-adding a name returns the existing module.
func (r *Registry) AddModule(name, doc string) *Module {
	key := strings.ToLower(name)
	if existing, ok := r.modules[key]; ok {
		return existing
	}
	module := &Module{Name: key, Doc: doc, actions: make(map[string]Command)}
	r.order = append(r.order, key)
	r.modules[key] = module
	return module
}

// Module looks a module up by name, case-insensitively.
func (r *Registry) Module(name string) (*Module, bool) {
	module, ok := r.modules[strings.ToLower(name)]
	return module, ok
}

// ModuleNames returns every registered module name in registration order.
func (r *Registry) ModuleNames() []string {
	return append([]string(nil), r.order...)
}

// Add registers an action under the module. The last registration for a
// name wins.
func (m *Module) Add(name string, cmd Command) {
	key := strings.ToLower(name)
	if _, ok := m.actions[key]; !ok {
		m.order = append(m.order, key)
	}
	m.actions[key] = cmd
}

// Action looks an action up by name.
func (m *Module) Action(name string) (Command, bool) {
	cmd, ok := m.actions[strings.ToLower(name)]
	return cmd, ok
}

// ActionNames returns every action name in registration order.
func (m *Module) ActionNames() []string {
	return append([]string(nil), m.order...)
}
