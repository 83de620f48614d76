//go:build unix

package exec

import (
	"bytes"
	"fmt"
	"os"
	osexec "os/exec"
	"strings"
	"syscall"
	"testing"

	"github.com/afiolmahon/glue-shell/errors"
)

// helperEnv selects a helper scenario when the test binary re-executes itself.
const helperEnv = "GLUE_EXEC_TEST_HELPER"

// helperReturned is the exit status of a helper whose Run call came back
// when it was expected to abort or replace the process.
const helperReturned = 99

var helpers = map[string]func(){
	"fatal": func() {
		New("sh", "-c", "exit 7").Run(Captured{})
	},
	"return": func() {
		code, _ := New("sh", "-c", "exit 7").OnError(PolicyReturn).Run(Captured{})
		fmt.Printf("code=%d", code)
		os.Exit(0)
	},
	"signal": func() {
		New("sh", "-c", "kill -KILL $$").OnError(PolicyReturn).Run(Captured{})
	},
	"foreground": func() {
		New("sh", "-c", "echo hello 1>&2; exit 3").Run(Foreground{})
	},
	"foreground-env-dir": func() {
		New("sh", "-c", `printf '%s %s' "$GLUE_FG" "$(pwd)"`).
			SetEnv("GLUE_FG", "replaced").
			WithDir("/").
			Run(Foreground{})
	},
	"foreground-bad-env": func() {
		New("sh", "-c", "exit 0").SetEnv("GLUE_FG=B", "x").Run(Foreground{})
	},
	"foreground-missing": func() {
		New("glue-no-such-program").Run(Foreground{})
	},
}

func TestMain(m *testing.M) {
	if name := os.Getenv(helperEnv); name != "" {
		os.Unsetenv(helperEnv)
		helper, ok := helpers[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown helper %q\n", name)
			os.Exit(2)
		}
		helper()
		os.Exit(helperReturned)
	}
	os.Exit(m.Run())
}

type helperResult struct {
	code   int
	stdout string
	stderr string
}

// runHelper runs a helper scenario in a new session so it has no
// controlling terminal.
func runHelper(t *testing.T, name string) helperResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := osexec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(), helperEnv+"="+name)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	err := cmd.Run()
	var exitErr *osexec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		t.Fatalf("failed to run helper %s: %v", name, err)
	}
	return helperResult{
		code:   cmd.ProcessState.ExitCode(),
		stdout: stdout.String(),
		stderr: stderr.String(),
	}
}

func TestFatalPolicyAborts(t *testing.T) {
	res := runHelper(t, "fatal")

	if res.code != 1 {
		t.Fatalf("expected abort with status 1, got: %d (stderr %q)", res.code, res.stderr)
	}
	if !strings.Contains(res.stderr, "FATA") {
		t.Errorf("expected fatal log record, got: %q", res.stderr)
	}
	if !strings.Contains(res.stderr, "failed with non-zero exit status: 7") {
		t.Errorf("expected exit status in diagnostic, got: %q", res.stderr)
	}
	if !strings.Contains(res.stderr, LogPrefix) {
		t.Errorf("expected %q prefix, got: %q", LogPrefix, res.stderr)
	}
}

func TestReturnPolicyDoesNotAbort(t *testing.T) {
	res := runHelper(t, "return")

	if res.code != 0 {
		t.Fatalf("expected helper to finish normally, got: %d (stderr %q)", res.code, res.stderr)
	}
	if res.stdout != "code=7" {
		t.Errorf("expected child exit code to be returned, got: %q", res.stdout)
	}
}

func TestSignalDeathAbortsUnderEveryPolicy(t *testing.T) {
	res := runHelper(t, "signal")

	if res.code != 1 {
		t.Fatalf("expected abort with status 1, got: %d (stderr %q)", res.code, res.stderr)
	}
	if !strings.Contains(res.stderr, "ABNORMAL_EXIT") {
		t.Errorf("expected ABNORMAL_EXIT in diagnostic, got: %q", res.stderr)
	}
}

func TestForegroundReplacesProcess(t *testing.T) {
	res := runHelper(t, "foreground")

	if res.code != 3 {
		t.Fatalf("expected exit status of the replacement program, got: %d (stderr %q)", res.code, res.stderr)
	}
	if res.stderr != "hello\n" {
		t.Errorf("expected inherited stderr, got: %q", res.stderr)
	}
}

func TestForegroundAppliesEnvAndDir(t *testing.T) {
	res := runHelper(t, "foreground-env-dir")

	if res.code != 0 {
		t.Fatalf("unexpected exit status: %d (stderr %q)", res.code, res.stderr)
	}
	if res.stdout != "replaced /" {
		t.Errorf("unexpected output: %q", res.stdout)
	}
}

func TestForegroundMissingProgramAborts(t *testing.T) {
	res := runHelper(t, "foreground-missing")

	if res.code == helperReturned || res.code == 0 {
		t.Fatalf("expected abort, got: %d", res.code)
	}
	if !strings.Contains(res.stderr, "glue-no-such-program") {
		t.Errorf("expected program name in diagnostic, got: %q", res.stderr)
	}
}

func TestForegroundInvalidEnvNameAborts(t *testing.T) {
	res := runHelper(t, "foreground-bad-env")

	if res.code != 1 {
		t.Fatalf("expected abort with status 1, got: %d (stderr %q)", res.code, res.stderr)
	}
	if !strings.Contains(res.stderr, "CHILD_SETUP_FAILED") {
		t.Errorf("expected CHILD_SETUP_FAILED in diagnostic, got: %q", res.stderr)
	}
}
