package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/afiolmahon/glue-shell/internal/config"
)

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "glue",
		Short: "Run programs with captured, terminal or foreground I/O",
		Long: `glue launches programs through a small execution engine.

Output can be captured on separate pipes (run), merged through a
pseudo-terminal (pty), or the glue process can be replaced by the
program (exec). Non-zero exits abort glue unless --on-error=return.

Settings are read from glue.yaml in $XDG_CONFIG_HOME/glue or the working
directory, then from GLUE_VERBOSE, GLUE_DRY_RUN and GLUE_ON_ERROR, then
from flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolP("verbose", "v", false, "describe each command before running it and log engine events")
	flags.Bool("dry-run", false, "describe commands without running them")
	flags.String("on-error", "fatal", "what a non-zero exit does: fatal or return")
	flags.StringVar(&a.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/glue/glue.yaml)")
	flags.StringVarP(&a.dir, "dir", "C", "", "working directory of the launched program")
	flags.StringArrayVarP(&a.env, "env", "e", nil, "environment override KEY=VALUE (repeatable)")
	flags.BoolVar(&a.jsonErrors, "json-errors", false, "report errors as JSON objects on stderr")

	root.AddCommand(a.runCommand())
	root.AddCommand(a.ptyCommand())
	root.AddCommand(a.execCommand())
	root.AddCommand(a.repoRootCommand())
	root.AddCommand(a.describeCommand())
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, path, err := config.Load(config.LoadOptions{
		ConfigFilePath: a.configFile,
		Flags:          cmd.Flags(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	a.logger.Debug("configuration loaded",
		"path", path,
		"verbose", cfg.Verbose,
		"dry_run", cfg.DryRun,
		"on_error", cfg.OnError.String(),
	)
	return nil
}
