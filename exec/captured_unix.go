//go:build unix

package exec

import (
	"os"

	"github.com/afiolmahon/glue-shell/errors"
)

func (s Captured) start(c *Command) (int, error) {
	stdout, stderr := s.Stdout, s.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	p, err := c.plan()
	if err != nil {
		return c.setupFailed(err), nil
	}

	outExit, outEntrance, err := os.Pipe()
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeResourceAcquisition, "failed to create stdout pipe")
	}
	errExit, errEntrance, err := os.Pipe()
	if err != nil {
		outExit.Close()
		outEntrance.Close()
		return 0, errors.Wrap(err, errors.CodeResourceAcquisition, "failed to create stderr pipe")
	}

	cmd := p.command()
	cmd.Stdout = outEntrance
	cmd.Stderr = errEntrance
	startErr := cmd.Start()

	// The child owns the entrances now; closing ours makes EOF observable.
	outEntrance.Close()
	errEntrance.Close()

	if startErr != nil {
		outExit.Close()
		errExit.Close()
		return c.setupFailed(startErr), nil
	}
	c.log().Debug("child started", "pid", cmd.Process.Pid, "strategy", s.name())

	err = pump(outExit, stdout)
	outExit.Close()
	if err != nil {
		return 0, errors.WithContext(err, "stream", "stdout")
	}

	err = pump(errExit, stderr)
	errExit.Close()
	if err != nil {
		return 0, errors.WithContext(err, "stream", "stderr")
	}

	return wait(cmd)
}
