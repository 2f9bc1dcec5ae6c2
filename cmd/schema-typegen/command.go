package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/scott-cotton/cli"

	"schema-typegen/internal/build"
	"schema-typegen/internal/config"
	"schema-typegen/internal/discover"
	"schema-typegen/internal/logging"
	"schema-typegen/internal/watch"
)

// Options are the command-line flags. Empty values leave the configuration untouched.
type Options struct {
	Config        string `cli:"name=config desc='config file (default: typegen.yaml when present)'"`
	Src           string `cli:"name=src desc='project source root holding api/ and components/ (default: ./src)'"`
	Out           string `cli:"name=out desc='output directory (default: types)'"`
	ComponentsDir string `cli:"name=components-dir desc='components sub-directory of the output (default: components)'"`
	Prefix        string `cli:"name=prefix desc='type name prefix (default: T)'"`
	Repair        bool   `cli:"name=repair desc='repair malformed schema JSON before giving up'"`
	Check         bool   `cli:"name=check desc='fail when declarations on disk are out of date instead of writing'"`
	Watch         bool   `cli:"name=watch desc='regenerate when schemas change'"`
	LogLevel      string `cli:"name=log-level desc='DEBUG, INFO, WARN or ERROR'"`
	Color         bool   `cli:"name=color desc='force colored output'"`
}

func MainCommand() *cli.Command {
	opts := &Options{}

	sOpts, err := cli.StructOpts(opts)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("schema-typegen").
		WithSynopsis("schema-typegen [opts]").
		WithDescription("Generate TypeScript declarations from content-type and component schemas.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(opts, cc, args)
		})
}

func run(opts *Options, cc *cli.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}

	cfg, err := resolveConfig(opts, os.LookupEnv)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(os.Stderr, level)
	out := newPrinter(cc.Out, opts.Color)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ok, err := generate(ctx, cfg, logger, out)
	if err != nil {
		return err
	}

	if !cfg.Watch {
		if !ok {
			return cli.ExitCodeErr(1)
		}

		return nil
	}

	roots, err := watchRoots(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("watching for schema changes", "dirs", roots)

	return watch.Watch(ctx, roots, cfg.Debounce, logger, func(ctx context.Context) {
		if _, err := generate(ctx, cfg, logger, out); err != nil {
			logger.Error("generation failed", "error", err)
		}
	})
}

// watchRoots returns the schema directories below cfg.Src to watch.
func watchRoots(cfg config.Config, logger *slog.Logger) ([]string, error) {
	layout, err := discover.Discover(cfg.Src)
	if err != nil {
		return nil, fmt.Errorf("discovering schemas: %w", err)
	}

	roots := layout.Dirs()
	if len(roots) == 0 {
		return nil, fmt.Errorf("%w: neither api nor components exists below %s", watch.ErrNoRoots, cfg.Src)
	}

	for _, dir := range layout.Missing {
		logger.Warn("not watching missing directory, restart once it exists", "dir", dir)
	}

	return roots, nil
}

// resolveConfig layers the config file, environment and flags.
func resolveConfig(opts *Options, lookup func(string) (string, bool)) (config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return cfg, err
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}

	if opts.Src != "" {
		cfg.Src = opts.Src
	}

	if opts.Out != "" {
		cfg.Out = opts.Out
	}

	if opts.ComponentsDir != "" {
		cfg.ComponentsDir = opts.ComponentsDir
	}

	if opts.Prefix != "" {
		cfg.Prefix = &opts.Prefix
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	cfg.Repair = cfg.Repair || opts.Repair
	cfg.Check = cfg.Check || opts.Check
	cfg.Watch = cfg.Watch || opts.Watch

	return cfg, cfg.Validate()
}

func generate(ctx context.Context, cfg config.Config, logger *slog.Logger, out *printer) (bool, error) {
	report, err := build.Run(ctx, cfg, logger)
	if err != nil {
		return false, err
	}

	out.summary(report, cfg)

	return report.OK(), nil
}
