//go:build unix

package exec

import (
	"os"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/afiolmahon/glue-shell/errors"
)

func (s Terminal) start(c *Command) (int, error) {
	out := s.Output
	if out == nil {
		out = os.Stdout
	}

	p, err := c.plan()
	if err != nil {
		return c.setupFailed(err), nil
	}

	master, slave, err := pty.Open()
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeResourceAcquisition, "failed to open pseudo-terminal")
	}
	if size := callerSize(); size != nil {
		if err := pty.Setsize(master, size); err != nil {
			c.log().Debug("could not copy terminal size", "err", err)
		}
	}

	cmd := p.command()
	cmd.Stdin = slave
	cmd.Stdout = slave
	cmd.Stderr = slave
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}
	startErr := cmd.Start()

	// Only the child may hold the slave, otherwise the master never sees EIO.
	slave.Close()

	if startErr != nil {
		master.Close()
		return c.setupFailed(startErr), nil
	}
	c.log().Debug("child started", "pid", cmd.Process.Pid, "strategy", s.name(), "tty", slave.Name())

	err = pump(master, out)
	master.Close()
	if err != nil {
		return 0, err
	}

	return wait(cmd)
}

// callerSize returns the window size of the caller's terminal, or nil when
// standard input is not a terminal.
func callerSize() *pty.Winsize {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	size, err := pty.GetsizeFull(os.Stdin)
	if err != nil {
		return nil
	}
	return size
}
