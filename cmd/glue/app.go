package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kballard/go-shellquote"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/afiolmahon/glue-shell/errors"
	"github.com/afiolmahon/glue-shell/exec"
	"github.com/afiolmahon/glue-shell/internal/config"
)

// app holds the state shared by the glue subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
	cfg    *config.Config

	configFile string
	dir        string
	env        []string
	jsonErrors bool
}

func newApp(stdout, stderr io.Writer) *app {
	logger := exec.NewLogger(stderr, log.InfoLevel)
	if !isTerminal(stderr) {
		logger.SetColorProfile(termenv.Ascii)
	}
	return &app{
		stdout: stdout,
		stderr: stderr,
		logger: logger,
		cfg:    config.Default(),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// execute runs the glue command line and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			a.report(exitErr.Err)
		}
		return exitErr.Code
	}
	a.report(err)
	return 1
}

// report writes err to stderr, as a JSON object with --json-errors and as a
// single error record with its context otherwise.
func (a *app) report(err error) {
	if a.jsonErrors {
		data, jerr := json.Marshal(errors.ToJSON(err))
		if jerr == nil {
			fmt.Fprintln(a.stderr, string(data))
			return
		}
		a.logger.Debug("failed to encode error as JSON", "err", jerr)
	}

	var e errors.Error
	if !errors.As(err, &e) {
		a.logger.Error(err.Error())
		return
	}

	keyvals := []interface{}{"code", string(errors.GetCode(err))}
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
	a.logger.Error(e.Message(), keyvals...)
}

// words returns the program and arguments given either as a --line string or
// as positional arguments.
func words(line string, args []string) ([]string, error) {
	if line == "" {
		if len(args) == 0 {
			return nil, errors.New(errors.CodeInvalidCommand, "no program given")
		}
		return args, nil
	}
	if len(args) > 0 {
		return nil, errors.New(errors.CodeInvalidCommand, "--line cannot be combined with positional arguments")
	}

	split, err := shellquote.Split(line)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidCommand, "failed to split command line",
			map[string]interface{}{"line": line})
	}
	if len(split) == 0 {
		return nil, errors.New(errors.CodeInvalidCommand, "command line is empty")
	}
	return split, nil
}

// parseEnv converts KEY=VALUE flags to an override map. Later flags win.
func parseEnv(pairs []string) (map[string]string, error) {
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Newf(errors.CodeInvalidCommand, "invalid environment override %q (want KEY=VALUE)", pair)
		}
		env[key] = value
	}
	return env, nil
}

// command builds an engine command from words using the loaded configuration
// and the global flags.
func (a *app) command(words []string) (*exec.Command, error) {
	env, err := parseEnv(a.env)
	if err != nil {
		return nil, err
	}

	opts := append(a.cfg.Options(),
		exec.WithEnv(env),
		exec.WithDir(a.dir),
		exec.WithDiagnostics(a.stderr),
		exec.WithLogger(a.logger),
	)
	return exec.NewWrapper(words[0], opts...).Command(words[1:]...), nil
}

// launch runs c with s and converts a non-zero exit into an ExitError.
func (a *app) launch(c *exec.Command, s exec.Strategy) error {
	code, err := c.Run(s)
	if err != nil {
		return err
	}
	if code != 0 {
		a.logger.Debug("child exited", "command", c.String(), "exit_code", code)
		return &ExitError{Code: code}
	}
	return nil
}

// git returns the runner used for repository discovery. It follows --dir
// and ignores dry-run so discovery always asks git.
func (a *app) git(args ...string) exec.Runner {
	return exec.NewWrapper("git",
		exec.WithErrorPolicy(exec.PolicyReturn),
		exec.WithVerbose(a.cfg.Verbose),
		exec.WithDir(a.dir),
		exec.WithDiagnostics(a.stderr),
		exec.WithLogger(a.logger),
	).Command(args...)
}

func (a *app) println(v ...interface{}) {
	fmt.Fprintln(a.stdout, v...)
}
