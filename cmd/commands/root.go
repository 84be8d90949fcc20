package commands

import (
	"github.com/urfave/cli/v3"
)

// NewRootCommand returns the top-level CLI command. Running it without a
// subcommand starts the server.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "task-manager",
		Usage: "Task management HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   "task-manager.yaml",
				Sources: cli.EnvVars("TASKS_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewServeCommand(),
			NewMigrateCommand(),
			NewExportCommand(),
		},
		DefaultCommand: "serve",
	}
}
