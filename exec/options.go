package exec

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a Command. Options are used by Wrapper to apply a shared
// configuration to every Command it creates.
type Option func(*Command)

// WithEnv returns an Option that merges environment overrides.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		c.WithEnv(env)
	}
}

// WithDir returns an Option that sets the working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.WithDir(dir)
	}
}

// WithErrorPolicy returns an Option that sets the non-zero exit policy.
func WithErrorPolicy(policy ErrorPolicy) Option {
	return func(c *Command) {
		c.OnError(policy)
	}
}

// WithVerbose returns an Option that enables verbose descriptions.
func WithVerbose(verbose bool) Option {
	return func(c *Command) {
		c.WithVerbose(verbose)
	}
}

// WithDryRun returns an Option that enables dry-run mode.
func WithDryRun(dryRun bool) Option {
	return func(c *Command) {
		c.WithDryRun(dryRun)
	}
}

// WithDiagnostics returns an Option that sets the diagnostics stream.
func WithDiagnostics(w io.Writer) Option {
	return func(c *Command) {
		c.WithDiagnostics(w)
	}
}

// WithLogger returns an Option that sets the engine logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Command) {
		c.WithLogger(logger)
	}
}
