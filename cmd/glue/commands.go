package main

import (
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/afiolmahon/glue-shell/errors"
	"github.com/afiolmahon/glue-shell/exec"
	"github.com/afiolmahon/glue-shell/repo"
)

// programCommand creates a subcommand that takes a program either after
// "--" or through --line.
func (a *app) programCommand(use, short string, run func(words []string) error) *cobra.Command {
	var line string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(_ *cobra.Command, args []string) error {
			w, err := words(line, args)
			if err != nil {
				return err
			}
			return run(w)
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&line, "line", "", "command line to split into words instead of positional arguments")
	return cmd
}

func (a *app) runCommand() *cobra.Command {
	return a.programCommand("run [--line CMD | -- PROGRAM ARGS...]",
		"Run a program with stdout and stderr on separate pipes",
		func(words []string) error {
			c, err := a.command(words)
			if err != nil {
				return err
			}
			return a.launch(c, exec.Captured{Stdout: a.stdout, Stderr: a.stderr})
		})
}

func (a *app) ptyCommand() *cobra.Command {
	return a.programCommand("pty [--line CMD | -- PROGRAM ARGS...]",
		"Run a program attached to a pseudo-terminal",
		func(words []string) error {
			c, err := a.command(words)
			if err != nil {
				return err
			}
			return a.launch(c, exec.Terminal{Output: a.stdout})
		})
}

func (a *app) execCommand() *cobra.Command {
	return a.programCommand("exec [--line CMD | -- PROGRAM ARGS...]",
		"Replace glue with a program on the controlling terminal",
		func(words []string) error {
			c, err := a.command(words)
			if err != nil {
				return err
			}
			return a.launch(c, exec.Foreground{})
		})
}

func (a *app) describeCommand() *cobra.Command {
	return a.programCommand("describe [--line CMD | -- PROGRAM ARGS...]",
		"Print the shell-quoted command line without running it",
		func(words []string) error {
			if _, err := parseEnv(a.env); err != nil {
				return err
			}
			a.println(shellquote.Join(words...))
			return nil
		})
}

func (a *app) repoRootCommand() *cobra.Command {
	var cmake bool
	cmd := &cobra.Command{
		Use:   "root",
		Short: "Print the root of the enclosing git repository",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := repo.Find(a.git)
			if err != nil {
				return err
			}
			if cmake && !r.IsCMakeProject() {
				return errors.WithContext(
					errors.New(errors.CodeNotFound, "repository is not a CMake project"),
					"root", r.Root,
				)
			}
			a.println(r.Root)
			return nil
		},
	}
	cmd.Flags().BoolVar(&cmake, "cmake", false, "fail unless the root contains CMakeLists.txt")
	return cmd
}
