package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/internal/config"
	"github.com/katalvlaran/campusnav/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	mapPath    string
	strategy   string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "campusnav",
		Short: "Shortest routes across a campus map",
		Long: "campusnav computes shortest walking routes between named campus locations\n" +
			"with Dijkstra's algorithm, from the command line or over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	pf.StringVar(&opts.mapPath, "map", "", "Campus map file (YAML or JSON); default is the built-in campus")
	pf.StringVar(&opts.strategy, "strategy", "", "Vertex selection strategy: linear or heap")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")

	cmd.AddCommand(
		newRouteCmd(opts),
		newLocationsCmd(opts),
		newTableCmd(opts),
		newValidateCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	m      *campus.Map
}

// setup layers flags over the config file and environment, then builds the
// logger and loads the map.
func (o *rootOptions) setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Read(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("map") {
		cfg.Map.Path = o.mapPath
	}
	if flags.Changed("strategy") {
		cfg.Engine.Strategy = o.strategy
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Logging, cmd.ErrOrStderr())

	m := campus.Reference()
	if cfg.Map.Path != "" {
		m, err = campus.LoadFile(cfg.Map.Path)
		if err != nil {
			return nil, fmt.Errorf("load map: %w", err)
		}
	}
	logger.Debug("map loaded", "map", m.Name, "locations", len(m.Locations), "roads", len(m.Roads))

	return &app{cfg: cfg, logger: logger, m: m}, nil
}

// router builds a campus router for a, forwarding extra options.
func (a *app) router(extra ...campus.RouterOption) (*campus.Router, error) {
	opts := []campus.RouterOption{
		campus.WithLogger(logging.Component(a.logger, "router")),
		campus.WithStrategy(a.cfg.Strategy()),
		campus.WithParallel(a.cfg.Engine.Parallel),
	}
	return campus.NewRouter(a.m, append(opts, extra...)...)
}
