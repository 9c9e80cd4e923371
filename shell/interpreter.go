package shell

import (
	"errors"
	"strings"

	"github.com/brettbedarf/shellsim"
	"github.com/brettbedarf/shellsim/filesystem"
	"github.com/brettbedarf/shellsim/internal/util"
)

// Interpreter parses input lines and dispatches each stage to a registered
// command. It holds no per-line state; all side effects land in the filesystem.
type Interpreter struct {
	fs       shellsim.FileSystem
	registry *Registry
}

// NewInterpreter binds an interpreter to fs. A nil registry uses the built-ins.
func NewInterpreter(fs shellsim.FileSystem, registry *Registry) *Interpreter {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Interpreter{fs: fs, registry: registry}
}

// Registry exposes the command table so callers can add commands
func (in *Interpreter) Registry() *Registry {
	return in.registry
}

// Execute runs one line and reports success plus the text a terminal would show
func (in *Interpreter) Execute(line string) (bool, string) {
	res := in.Run(line)
	return res.OK(), res.Message()
}

// Run parses and executes one line.
//
// Stage 1 runs without input; if it fails stage 2 never runs. Stage 2 receives
// stage 1's full output as its input. Redirection happens only after the whole
// pipeline succeeded, and redirected output is not returned to the caller.
func (in *Interpreter) Run(line string) Result {
	logger := util.GetLogger("Interpreter.Run")
	logger.Debug().Str("line", line).Msg("Run called")

	p, err := Parse(line)
	if err != nil {
		logger.Debug().Err(err).Msg("Parse failed")
		return Result{Err: err}
	}
	if len(p.Stages) == 0 {
		return Result{}
	}

	// The redirect target is relative to the directory the line was typed in
	var target string
	if r := p.Redirect; r != nil {
		target = r.Target
		if !strings.HasPrefix(target, filesystem.Root) {
			target = filesystem.Normalize(in.fs.Pwd(), target)
		}
	}

	var input *string
	var out string
	for i, argv := range p.Stages {
		inv := &Invocation{Name: argv[0], Args: argv[1:], Input: input}
		if out, err = in.runStage(inv); err != nil {
			logger.Debug().Err(err).Int("stage", i+1).Stringer("kind", shellsim.KindOf(err)).Msg("Stage failed")
			return Result{Err: err}
		}
		input = &out
	}

	if r := p.Redirect; r != nil {
		if err := in.fs.WriteFile(target, out, r.Append); err != nil {
			err = relabel(err, "redirect")
			var e *shellsim.Error
			if errors.As(err, &e) {
				e.Path = r.Target
			}
			logger.Debug().Err(err).Str("target", r.Target).Msg("Redirect failed")
			return Result{Err: err}
		}
		return Result{}
	}
	return Result{Output: out}
}

// runStage looks up and runs one command. Filesystem errors are relabeled with
// the command name and panics from registered commands are converted to errors.
func (in *Interpreter) runStage(inv *Invocation) (out string, err error) {
	cmd, ok := in.registry.Lookup(inv.Name)
	if !ok {
		return "", shellsim.Errorf(shellsim.CommandNotFound, inv.Name, "command not found")
	}

	defer func() {
		if r := recover(); r != nil {
			logger := util.GetLogger("Interpreter.runStage")
			logger.Error().Interface("panic", r).Str("cmd", inv.Name).Msg("Command panicked")
			out, err = "", shellsim.Errorf(shellsim.UnknownError, inv.Name, "%v", r)
		}
	}()

	out, err = cmd(in.fs, inv)
	if err != nil {
		return "", relabel(err, inv.Name)
	}
	return out, nil
}

// relabel returns a copy of a *shellsim.Error reporting op as its origin.
// Foreign errors are wrapped as UnknownError so callers always see the taxonomy.
func relabel(err error, op string) error {
	var e *shellsim.Error
	if !errors.As(err, &e) {
		return shellsim.Errorf(shellsim.UnknownError, op, "%v", err)
	}
	c := *e
	c.Op = op
	return &c
}
