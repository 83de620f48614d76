package exec

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Command describes a program to launch and how to launch it.
//
// A Command is configured through its fluent methods and launched with Run.
// Launching does not consume or modify the Command, so the same value can be
// run again and will start from scratch.
type Command struct {
	program     string
	args        []string
	env         map[string]string
	dir         string
	policy      ErrorPolicy
	verbose     bool
	dryRun      bool
	diagnostics io.Writer
	logger      *log.Logger
}

// New creates a Command for program with the given initial arguments.
// An empty program is accepted here and reported when the Command is run.
func New(program string, args ...string) *Command {
	return &Command{
		program: program,
		args:    append([]string(nil), args...),
		env:     make(map[string]string),
	}
}

// Arg appends a single argument.
func (c *Command) Arg(arg string) *Command {
	c.args = append(c.args, arg)
	return c
}

// Args appends arguments in order.
func (c *Command) Args(args ...string) *Command {
	c.args = append(c.args, args...)
	return c
}

// SetEnv overrides a single environment variable in the child.
func (c *Command) SetEnv(key, value string) *Command {
	c.env[key] = value
	return c
}

// WithEnv merges env into the child's environment overrides. Later values win.
func (c *Command) WithEnv(env map[string]string) *Command {
	for k, v := range env {
		c.env[k] = v
	}
	return c
}

// WithDir sets the working directory of the child. An empty dir means the
// child inherits the caller's working directory.
func (c *Command) WithDir(dir string) *Command {
	c.dir = dir
	return c
}

// OnError sets what happens when the child exits with a non-zero code.
func (c *Command) OnError(policy ErrorPolicy) *Command {
	c.policy = policy
	return c
}

// WithVerbose enables the LOG: description of the command before it runs.
func (c *Command) WithVerbose(verbose bool) *Command {
	c.verbose = verbose
	return c
}

// WithDryRun makes Run describe the command and return 0 without starting it.
func (c *Command) WithDryRun(dryRun bool) *Command {
	c.dryRun = dryRun
	return c
}

// WithDiagnostics sets where DRY:/LOG: lines and fatal diagnostics are written.
// Defaults to os.Stderr.
func (c *Command) WithDiagnostics(w io.Writer) *Command {
	c.diagnostics = w
	return c
}

// WithLogger sets the logger used for engine events and fatal diagnostics.
// Without one, a logger writing to the diagnostics stream is used.
func (c *Command) WithLogger(logger *log.Logger) *Command {
	c.logger = logger
	return c
}

// Program returns the program name or path.
func (c *Command) Program() string {
	return c.program
}

// Arguments returns a copy of the argument list.
func (c *Command) Arguments() []string {
	return append([]string(nil), c.args...)
}

// String renders the program and its arguments as a single line.
func (c *Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.program)
	for _, a := range c.args {
		sb.WriteByte(' ')
		sb.WriteString(a)
	}
	return sb.String()
}

// Clone returns an independent copy of the Command.
func (c *Command) Clone() *Command {
	clone := *c
	clone.args = append([]string(nil), c.args...)
	clone.env = make(map[string]string, len(c.env))
	for k, v := range c.env {
		clone.env[k] = v
	}
	return &clone
}

func (c *Command) diagnosticWriter() io.Writer {
	if c.diagnostics != nil {
		return c.diagnostics
	}
	return os.Stderr
}

func (c *Command) log() *log.Logger {
	if c.logger != nil {
		return c.logger
	}
	return newLogger(c.diagnosticWriter())
}
