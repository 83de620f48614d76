//go:build unix

package exec

import (
	"os"
	"sort"

	"golang.org/x/sys/unix"

	"github.com/afiolmahon/glue-shell/errors"
)

// controllingTerminal is the device of the caller's controlling terminal.
const controllingTerminal = "/dev/tty"

// start only returns if the process image could not be replaced.
func (s Foreground) start(c *Command) (int, error) {
	if err := validateEnv(c.env); err != nil {
		return 0, errors.WithSeverity(err, errors.SeverityFatal)
	}
	c.attachTerminal()

	if c.dir != "" {
		if err := os.Chdir(c.dir); err != nil {
			return 0, errors.Wrapf(err, errors.CodeExecFailed, "chdir %q failed", c.dir)
		}
	}

	keys := make([]string, 0, len(c.env))
	for k := range c.env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := os.Setenv(k, c.env[k]); err != nil {
			return 0, errors.Wrapf(err, errors.CodeExecFailed, "failed to update environment variable %s", k)
		}
	}

	path, err := lookPath(c.program, os.Getenv("PATH"), "")
	if err != nil {
		return 0, errors.WithSeverity(err, errors.SeverityFatal)
	}

	argv := append([]string{c.program}, c.args...)
	c.log().Debug("replacing process image", "path", path, "pid", os.Getpid())
	err = unix.Exec(path, argv, os.Environ())
	return 0, errors.Wrapf(err, errors.CodeExecFailed, "execvp %q failed", c.program)
}

// attachTerminal makes /dev/tty the controlling terminal and the standard
// streams of the current process, like login_tty(3). Every step is best
// effort: without a controlling terminal the inherited streams are kept.
func (c *Command) attachTerminal() {
	tty, err := os.OpenFile(controllingTerminal, os.O_RDWR, 0)
	if err != nil {
		c.log().Debug("no controlling terminal, keeping inherited streams", "err", err)
		return
	}
	fd := int(tty.Fd())

	if _, err := unix.Setsid(); err != nil {
		c.log().Debug("setsid failed", "err", err)
	}
	if err := unix.IoctlSetInt(fd, unix.TIOCSCTTY, 0); err != nil {
		c.log().Debug("TIOCSCTTY failed", "err", err)
	}

	for target := 0; target <= 2; target++ {
		for {
			err := dup2(fd, target)
			if err == unix.EINTR {
				continue
			}
			if err != nil {
				c.log().Debug("dup2 failed", "fd", target, "err", err)
			}
			break
		}
	}

	if fd > 2 {
		tty.Close()
	}
}
