// Package main is the entry point for the ledit editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dshills/ledit/internal/app"
	"github.com/dshills/ledit/internal/config"
	"github.com/dshills/ledit/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliOptions struct {
	configPath  string
	logLevel    string
	showVersion bool
	path        string
}

// errUsage marks argument errors; the usage text has already been printed.
var errUsage = errors.New("usage error")

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("ledit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (TOML or YAML)")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "ledit - a line-oriented terminal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: ledit [options] <file>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys: Ctrl+S saves, Ctrl+Q quits (asks to save).\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, err
		}
		return opts, errUsage
	}
	if opts.showVersion {
		return opts, nil
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Error: expected exactly one file, got %d\n\n", fs.NArg())
		fs.Usage()
		return opts, errUsage
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "ledit %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	var cfgOpts []config.Option
	if opts.configPath != "" {
		cfgOpts = append(cfgOpts, config.WithPath(opts.configPath))
	}
	cfg, err := config.Load(cfgOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: loading configuration: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	logger, logFile, err := app.OpenLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer logFile.Close()
	if cfg.Source != "" {
		logger.Info("configuration from %s", cfg.Source)
	}

	term, err := newBackend(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, terminationSignals...)
	defer signal.Stop(signals)

	application, err := app.New(app.Options{
		Path:    opts.path,
		Config:  cfg,
		Backend: term,
		Logger:  logger,
		Signals: signals,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Restore the terminal before anything is printed.
	err = func() error {
		defer application.Shutdown()
		return application.Run(context.Background())
	}()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newBackend(cfg *config.Config) (backend.Backend, error) {
	switch cfg.Terminal.Backend {
	case config.BackendANSI:
		return backend.NewANSI(os.Stdin, os.Stdout, cfg.Input.EscapeTimeout()), nil
	default:
		return backend.NewTerminal()
	}
}
