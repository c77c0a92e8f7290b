package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cfgpkg "github.com/alexisbeaulieu97/colorfield/internal/config"
	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	infracfg "github.com/alexisbeaulieu97/colorfield/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/colorfield/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/colorfield/internal/infrastructure/store"
	"github.com/alexisbeaulieu97/colorfield/internal/ports"
	"github.com/alexisbeaulieu97/colorfield/internal/swatch"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config    *cfgpkg.Config
	Logger    ports.Logger
	Registry  *swatch.Registry
	Validator *color.Validator

	// logToFile is set when the configured log sink is not the terminal.
	logToFile bool
	closers   []io.Closer
}

// Init loads configuration and wires the services. Entries logged before
// the configured logger exists are buffered and replayed into it.
func (a *AppContext) Init(ctx context.Context, flags *rootFlags, stderr io.Writer) error {
	bootstrap := logging.NewBootstrap(0)
	boot := bootstrap.Logger().With("component", "bootstrap")

	cfg, err := infracfg.NewYAMLLoader(boot).Load(ctx, flags.configPath)
	if err != nil {
		return err
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := a.newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	bootstrap.Replay(logger)

	st, err := openStore(cfg.Storage)
	if err != nil {
		logger.Error(ctx, "failed to open swatch store", "driver", cfg.Storage.Driver, "error", err)
		return err
	}
	if closer, ok := st.(io.Closer); ok {
		a.closers = append(a.closers, closer)
	}

	registry, err := swatch.NewRegistry(ctx, swatch.Options{
		Presets:     cfg.SwatchPresets(),
		CustomLimit: cfg.CustomLimit,
		Store:       st,
		Logger:      logger,
	})
	if err != nil {
		logger.Error(ctx, "failed to load custom colors", "error", err)
		return err
	}

	a.Config = cfg
	a.Logger = logger
	a.Registry = registry
	a.Validator = color.NewValidator(nil)
	return nil
}

// CommandContext returns a context carrying a fresh correlation id and a
// logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	if a.Logger == nil {
		return ctx, logging.NewNoOpLogger()
	}
	return ctx, a.Logger.With("component", component)
}

// InteractiveLogger is the logger handed to the terminal UI. Terminal
// output would corrupt the screen, so it is silent unless logs go to a file.
func (a *AppContext) InteractiveLogger(component string) ports.Logger {
	if !a.logToFile || a.Logger == nil {
		return logging.NewNoOpLogger()
	}
	return a.Logger.With("component", component)
}

// Close releases the store and the log file.
func (a *AppContext) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func (a *AppContext) newLogger(opts cfgpkg.Log, stderr io.Writer) (ports.Logger, error) {
	writer := stderr
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, file)
		a.logToFile = true
		writer = file
	}

	return logging.New(logging.Options{
		Writer: writer,
		Level:  opts.Level,
		Format: opts.Format,
		Layer:  "cli",
	})
}

func openStore(opts cfgpkg.Storage) (swatch.Store, error) {
	switch opts.Driver {
	case cfgpkg.DriverJSON:
		return store.NewJSONStore(opts.Path)
	case cfgpkg.DriverSQLite:
		return store.NewSQLiteStore(opts.Path)
	default:
		return nil, nil
	}
}
