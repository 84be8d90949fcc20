package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"task-manager/internal/config"
	"task-manager/internal/observability/logging"
	"task-manager/internal/store/memstore"
	"task-manager/internal/store/sqlstore"
	"task-manager/internal/task"
)

// taskStore is what every store driver offers to the commands.
type taskStore interface {
	task.Repository
	Ping(ctx context.Context) error
	Close() error
}

// loadConfig reads the config named by --config and installs the process
// logger. --debug forces the debug level.
func loadConfig(cmd *cli.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Bool("debug") {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(os.Stderr, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// openStore connects the configured driver and brings its schema up to
// date. The caller owns the returned store and must Close it.
func openStore(ctx context.Context, sc config.StoreConfig) (taskStore, error) {
	if sc.Driver == "memory" {
		return memstore.New(), nil
	}

	st, err := sqlstore.Open(ctx, sqlstore.Config{Driver: sc.Driver, DSN: sc.DSN})
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}
