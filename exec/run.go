package exec

import (
	"sort"

	"github.com/afiolmahon/glue-shell/errors"
)

// Runner launches something and reports its exit code. *Command implements it.
type Runner interface {
	Run(s Strategy) (int, error)
}

// Run launches the command with strategy s and returns its exit code.
//
// The returned error is non-nil only for commands that cannot be launched at
// all, such as an empty program name. Unrecoverable conditions (pipe or pty
// allocation failures, read errors, a child killed by a signal, a non-zero
// exit under PolicyFatal) terminate the calling process with a diagnostic on
// the diagnostics stream. With Foreground, Run does not return on success.
func (c *Command) Run(s Strategy) (int, error) {
	code, err := c.launch(s)
	if err != nil {
		if errors.IsFatal(err) {
			c.abort(err)
		}
		return code, err
	}
	return code, nil
}

// Try runs the command under PolicyReturn and turns a non-zero exit code into
// an *ExitError.
func (c *Command) Try(s Strategy) error {
	code, err := c.Clone().OnError(PolicyReturn).Run(s)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Command: c.String(), ExitCode: code}
	}
	return nil
}

// launch runs the command and returns errors instead of aborting.
func (c *Command) launch(s Strategy) (int, error) {
	if c.program == "" {
		return 0, errors.New(errors.CodeInvalidCommand, "program name is empty")
	}
	if s == nil {
		return 0, errors.New(errors.CodeInvalidCommand, "no execution strategy given")
	}

	if c.verbose || c.dryRun {
		c.describe(c.diagnosticWriter())
	}
	if c.dryRun {
		return 0, nil
	}

	c.log().Debug("launching", "command", c.String(), "strategy", s.name())
	code, err := s.start(c)
	if err != nil {
		return 0, errors.WithContext(err, "command", c.String())
	}
	c.log().Debug("child finished", "command", c.String(), "exit_code", code)

	if err := c.escalate(code); err != nil {
		return code, err
	}
	return code, nil
}

// abort logs err at fatal level and terminates the process with status 1.
func (c *Command) abort(err error) {
	logger := c.log()

	var e errors.Error
	if !errors.As(err, &e) {
		logger.Fatal(err.Error())
		return
	}

	keyvals := []interface{}{"code", string(e.Code())}
	ctx := e.Context()
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		keyvals = append(keyvals, k, ctx[k])
	}
	if cause := e.Unwrap(); cause != nil {
		keyvals = append(keyvals, "err", cause)
	}
	logger.Fatal(e.Message(), keyvals...)
}
