package main

import (
	"net"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/internal/logging"
	"github.com/katalvlaran/campusnav/internal/metrics"
	"github.com/katalvlaran/campusnav/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		host string
		port int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve routes over HTTP",
		Long: `Starts an HTTP server exposing /healthz, /locations, /route?from=&to=,
/table and, unless disabled in the config, /metrics. SIGINT or SIGTERM
triggers a graceful shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				a.cfg.HTTP.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.HTTP.Port = port
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			deps := server.RouterDependencies{}
			var routerOpts []campus.RouterOption
			if a.cfg.HTTP.MetricsEnabled {
				reg := prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
				m, err := metrics.New(reg)
				if err != nil {
					return err
				}
				m.SetMap(len(a.m.Locations), len(a.m.Roads))
				routerOpts = append(routerOpts, campus.WithObserver(m))
				deps.Metrics = reg
			}

			r, err := a.router(routerOpts...)
			if err != nil {
				return err
			}
			httpLogger := logging.Component(a.logger, "http")
			deps.Health = server.RouterHealthService{Router: r}
			deps.API = server.NewAPIHandlers(httpLogger, r)

			ln, err := net.Listen("tcp", a.cfg.HTTP.Addr())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(httpLogger, a.cfg.HTTP, server.NewRouter(httpLogger, deps))
			return srv.Run(ctx, ln)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "Listen host (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")

	return cmd
}
