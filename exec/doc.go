// Package exec launches external programs with a controlled environment and
// captures or forwards their output while managing the process lifecycle:
// every child is reaped, every descriptor is closed, and exit codes are
// reported deterministically.
//
// # Building a command
//
// A Command is described with fluent methods and launched with Run:
//
//	var out bytes.Buffer
//	code, err := exec.New("git", "rev-parse", "--show-toplevel").
//		OnError(exec.PolicyReturn).
//		Run(exec.Captured{Stdout: &out, Stderr: io.Discard})
//
// Arguments are passed to the program verbatim; there is no shell or glob
// expansion. Environment overrides replace or add variables, everything else
// is inherited from the caller:
//
//	exec.New("make", "all").
//		WithDir(buildDir).
//		SetEnv("CC", "clang").
//		Run(exec.Terminal{})
//
// # Strategies
//
// Three strategies are available:
//
//   - Captured connects standard output and standard error to two pipes and
//     copies each into its own sink. Standard output is drained completely
//     before standard error.
//   - Terminal runs the child on a new pseudo-terminal so it behaves as if it
//     were interactive (colours, line buffering) and copies the combined
//     output into one sink with "\r\n" line endings.
//   - Foreground replaces the current process with the child, attached to the
//     caller's controlling terminal. It never returns on success.
//
// # Errors and aborts
//
// Run returns an error only when the command cannot be launched at all, for
// example when the program name is empty. A non-zero exit is data: under
// PolicyReturn the code is returned, under PolicyFatal (the default) the
// calling process is terminated with a diagnostic naming the command and the
// code. Conditions the engine cannot recover from, such as a failed pipe or
// pty allocation, a read error, or a child killed by a signal, always
// terminate the calling process with a single-line diagnostic.
//
// A child that cannot be started (missing directory, program not found, not
// executable) is reported as exit code 1, 127 or 126 respectively, after an
// error-level log record.
//
// # Verbose and dry-run
//
// WithVerbose and WithDryRun write a description of the command to the
// diagnostics stream before anything is started:
//
//	DRY: make all
//		- executing from directory: "/src/build"
//		- overriding 1 environment variables
//
// With dry-run the command is not started and Run returns 0.
//
// # Testing
//
// Consumers should accept the Runner interface, which *Command implements, so
// that tests can substitute a fake:
//
//	func Fetch(newGit func(args ...string) exec.Runner) error {
//		code, err := newGit("fetch").Run(exec.Captured{})
//		// ...
//	}
package exec
