package exec

import (
	"io/fs"
	"os"
	osexec "os/exec"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/afiolmahon/glue-shell/errors"
)

// Exit codes reported for children that could not be started, following the
// shell convention.
const (
	ExitSetupFailed   = 1
	ExitNotExecutable = 126
	ExitNotFound      = 127
)

// childPlan is everything the child needs between fork and exec.
type childPlan struct {
	path string
	argv []string
	env  []string
	dir  string
}

// plan resolves the program and assembles argv and the environment. The
// returned error is a CodeChildSetup error.
func (c *Command) plan() (childPlan, error) {
	env := mergeEnv(os.Environ(), c.env)

	if c.dir != "" {
		info, err := os.Stat(c.dir)
		if err != nil {
			return childPlan{}, errors.Wrapf(err, errors.CodeChildSetup, "chdir %q failed", c.dir)
		}
		if !info.IsDir() {
			return childPlan{}, errors.Newf(errors.CodeChildSetup, "chdir %q failed: not a directory", c.dir)
		}
	}

	if err := validateEnv(c.env); err != nil {
		return childPlan{}, err
	}

	path, err := lookPath(c.program, envValue(env, "PATH"), c.dir)
	if err != nil {
		return childPlan{}, err
	}

	argv := make([]string, 0, len(c.args)+1)
	argv = append(argv, c.program)
	argv = append(argv, c.args...)

	return childPlan{path: path, argv: argv, env: env, dir: c.dir}, nil
}

// command builds the os/exec command for the plan. Stdin is the caller's.
func (p childPlan) command() *osexec.Cmd {
	return &osexec.Cmd{
		Path:  p.path,
		Args:  p.argv,
		Env:   p.env,
		Dir:   p.dir,
		Stdin: os.Stdin,
	}
}

// setupFailed logs a child setup failure and converts it to an exit code.
func (c *Command) setupFailed(err error) int {
	code := setupExitCode(err)
	c.log().Error("child setup failed", "command", c.String(), "exit_code", code, "err", err)
	return code
}

func setupExitCode(err error) int {
	switch {
	case errors.Is(err, osexec.ErrNotFound), errors.Is(err, fs.ErrNotExist) && !isChdirError(err):
		return ExitNotFound
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.ENOEXEC), errors.Is(err, syscall.EISDIR):
		return ExitNotExecutable
	default:
		return ExitSetupFailed
	}
}

func isChdirError(err error) bool {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Op == "chdir" {
		return true
	}
	var e errors.Error
	return errors.As(err, &e) && strings.HasPrefix(e.Message(), "chdir ")
}

// lookPath resolves program like execvp run from dir: names containing a
// slash are used as is, anything else is searched in pathEnv. Relative PATH
// entries are taken relative to dir, the child's working directory, and the
// returned path stays relative so it resolves the same way after chdir. A
// match that exists but cannot be executed is remembered; if nothing better
// is found the result is EACCES rather than not found.
func lookPath(program, pathEnv, dir string) (string, error) {
	if strings.Contains(program, "/") {
		return program, nil
	}

	var denied string
	for _, entry := range filepath.SplitList(pathEnv) {
		if entry == "" {
			entry = "."
		}
		candidate := filepath.Join(entry, program)
		target := candidate
		if dir != "" && !filepath.IsAbs(candidate) {
			target = filepath.Join(dir, candidate)
		}

		info, err := os.Stat(target)
		if err != nil {
			continue
		}
		if info.IsDir() || info.Mode()&0o111 == 0 {
			if denied == "" {
				denied = candidate
			}
			continue
		}
		if !strings.Contains(candidate, "/") {
			candidate = "./" + candidate
		}
		return candidate, nil
	}

	if denied != "" {
		return "", errors.Wrapf(&fs.PathError{Op: "exec", Path: denied, Err: syscall.EACCES},
			errors.CodeChildSetup, "exec %q failed", program)
	}
	return "", errors.Wrapf(osexec.ErrNotFound, errors.CodeChildSetup, "exec %q failed", program)
}

// validateEnv rejects override names no environment can hold: empty names
// and names containing '=' or NUL. Values may not contain NUL either.
func validateEnv(overrides map[string]string) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if k == "" || strings.ContainsAny(k, "=\x00") || strings.ContainsRune(overrides[k], 0) {
			return errors.WithContext(
				errors.Newf(errors.CodeChildSetup, "setenv %q failed: invalid environment variable", k),
				"key", k,
			)
		}
	}
	return nil
}

// mergeEnv returns base with overrides applied in sorted key order. Existing
// entries for an overridden key are dropped.
func mergeEnv(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return append([]string(nil), base...)
	}

	merged := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := overrides[key]; ok {
			continue
		}
		merged = append(merged, kv)
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+overrides[k])
	}
	return merged
}

// envValue returns the last value of key in env.
func envValue(env []string, key string) string {
	value := ""
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			value = v
		}
	}
	return value
}
