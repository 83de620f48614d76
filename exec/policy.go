package exec

import (
	"fmt"

	"github.com/afiolmahon/glue-shell/errors"
)

// ErrorPolicy decides what happens when a child exits with a non-zero code.
type ErrorPolicy int

const (
	// PolicyFatal aborts the calling process with a diagnostic. It is the default.
	PolicyFatal ErrorPolicy = iota
	// PolicyReturn hands the exit code back to the caller.
	PolicyReturn
)

// String returns the policy name as used in configuration files.
func (p ErrorPolicy) String() string {
	switch p {
	case PolicyFatal:
		return "fatal"
	case PolicyReturn:
		return "return"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}

// ParseErrorPolicy converts "fatal" or "return" to an ErrorPolicy.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "fatal":
		return PolicyFatal, nil
	case "return":
		return PolicyReturn, nil
	default:
		return PolicyFatal, errors.Newf(errors.CodeInvalidConfig, "unknown error policy %q (want \"fatal\" or \"return\")", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p ErrorPolicy) MarshalText() ([]byte, error) {
	switch p {
	case PolicyFatal, PolicyReturn:
		return []byte(p.String()), nil
	default:
		return nil, errors.Newf(errors.CodeInvalidConfig, "unknown error policy %d", int(p))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseErrorPolicy.
func (p *ErrorPolicy) UnmarshalText(text []byte) error {
	policy, err := ParseErrorPolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

// escalate applies the policy to an exit code. It returns a fatal error only
// when the code is non-zero and the policy is PolicyFatal.
func (c *Command) escalate(code int) error {
	if code == 0 || c.policy == PolicyReturn {
		return nil
	}
	err := errors.Newf(errors.CodeNonZeroExit, "command %q failed with non-zero exit status: %d", c.String(), code)
	return errors.WithSeverity(errors.WithContext(err, "exit_code", code), errors.SeverityFatal)
}
