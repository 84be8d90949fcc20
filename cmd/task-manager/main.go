package main

import (
	"context"
	"log/slog"
	"os"

	"task-manager/cmd/commands"
)

func main() {
	cmd := commands.NewRootCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
