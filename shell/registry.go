package shell

import (
	"slices"

	"github.com/brettbedarf/shellsim"
	"github.com/puzpuzpuz/xsync/v4"
)

// Invocation is one pipeline stage ready to run
type Invocation struct {
	Name string
	Args []string
	// Input is the previous stage's output; nil for the first stage
	Input *string
}

// Command runs one stage against the filesystem and returns its output.
// Returned errors should be *shellsim.Error values.
type Command func(fs shellsim.FileSystem, inv *Invocation) (string, error)

// Registry maps command names to implementations. Safe for concurrent use.
type Registry struct {
	commands *xsync.Map[string, Command]
}

func NewRegistry() *Registry {
	return &Registry{commands: xsync.NewMap[string, Command]()}
}

// DefaultRegistry returns a new registry holding every built-in command
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for name, cmd := range builtins {
		r.Register(name, cmd)
	}
	return r
}

// Register ties a command name to its implementation. The first registration
// for a name wins; it returns false if name was already taken.
func (r *Registry) Register(name string, cmd Command) bool {
	_, loaded := r.commands.LoadOrStore(name, cmd)
	return !loaded
}

// Lookup returns the command registered under name
func (r *Registry) Lookup(name string) (Command, bool) {
	return r.commands.Load(name)
}

// Names returns the registered command names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, r.commands.Size())
	r.commands.Range(func(name string, _ Command) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}
