package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"task-manager/internal/export"
	"task-manager/internal/model"
	"task-manager/internal/task"
)

// NewExportCommand returns the export subcommand.
func NewExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the task list as json, csv or pdf",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: " + strings.Join(export.Formats, ", "),
				Value:   "json",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output file (default stdout)",
			},
			&cli.BoolFlag{
				Name:  "completed",
				Usage: "Only completed tasks (--completed=false for open ones)",
			},
			&cli.StringFlag{
				Name:  "priority",
				Usage: "Only tasks with this priority",
			},
		},
		Action: runExport,
	}
}

func runExport(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	filter := model.TaskFilter{Priority: cmd.String("priority")}
	if cmd.IsSet("completed") {
		completed := cmd.Bool("completed")
		filter.Completed = &completed
	}

	data, err := export.NewExporter(task.NewService(st)).Export(ctx, cmd.String("format"), filter)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	out := cmd.String("out")
	if err := writeOutput(out, cmd.Root().Writer, data); err != nil {
		return err
	}
	if out != "" {
		logger.Info("export written", "path", out, "bytes", len(data))
	}
	return nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		if stdout == nil {
			stdout = os.Stdout
		}
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
