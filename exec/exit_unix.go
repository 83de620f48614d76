//go:build unix

package exec

import (
	"os"
	osexec "os/exec"
	"syscall"

	"github.com/afiolmahon/glue-shell/errors"
)

// wait reaps the child and decodes its status.
func wait(cmd *osexec.Cmd) (int, error) {
	err := cmd.Wait()
	var exitErr *osexec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return 0, errors.WrapWithContext(err, errors.CodeWaitFailed, "waitpid failed", map[string]interface{}{"pid": cmd.Process.Pid})
	}
	return decodeExit(cmd.ProcessState)
}

// decodeExit converts the child's wait status to an exit code. A child that
// did not exit normally has no exit code and yields a fatal error.
func decodeExit(state *os.ProcessState) (int, error) {
	if state == nil {
		return 0, errors.New(errors.CodeInternal, "child has no process state")
	}
	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return state.ExitCode(), nil
	}
	return decodeWaitStatus(state.Pid(), status)
}

func decodeWaitStatus(pid int, status syscall.WaitStatus) (int, error) {
	if status.Exited() {
		return status.ExitStatus(), nil
	}

	ctx := map[string]interface{}{"pid": pid}
	if status.Signaled() {
		ctx["signal"] = status.Signal().String()
		ctx["core_dumped"] = status.CoreDump()
	}
	return 0, errors.WithContextMap(errors.New(errors.CodeAbnormalExit, "child failed to exit normally"), ctx)
}
