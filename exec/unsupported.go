//go:build !unix

package exec

import "github.com/afiolmahon/glue-shell/errors"

func unsupported(s Strategy) (int, error) {
	return 0, errors.Newf(errors.CodeUnsupported, "%s strategy requires a unix system", s.name())
}

func (s Captured) start(c *Command) (int, error)   { return unsupported(s) }
func (s Terminal) start(c *Command) (int, error)   { return unsupported(s) }
func (s Foreground) start(c *Command) (int, error) { return unsupported(s) }
