package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/fleetdash/internal/server"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Host  string
	Port  int
	Data  string
	Watch bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the fleet dashboard backend API",
		Long: `Run the backend HTTP API the dashboard fetches from.

Endpoints:
  GET /                    Health check
  GET /api/fleet-data      All per-fleet, per-month records
  GET /api/fleet-summary   Per-fleet rollup statistics
  GET /api/fleet/{id}      Records for a single fleet

Without --data the server serves a built-in sample dataset. With --data
it serves records from a CSV seed file; add --watch to reload the file
whenever it changes.`,
		Example: `  # Serve the sample dataset on the default port
  fleetdash serve

  # Serve a CSV seed file and reload it on change
  fleetdash serve --data fleet.csv --watch

  # Serve on a custom port
  fleetdash serve --port 8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Host, "host", "", "Host to bind (default: all interfaces)")
	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 5000)")
	cmd.Flags().StringVar(&opts.Data, "data", "", "CSV seed file to serve instead of the sample dataset")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload the seed file on change")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx := NewCommandContext(cmd)
	serveCfg := cmdCtx.Cfg.GetServe()

	// CLI flags override config file
	host := serveCfg.Host
	if cmd.Flags().Changed("host") {
		host = opts.Host
	}
	port := serveCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}
	dataFile := serveCfg.Data
	if cmd.Flags().Changed("data") {
		dataFile = opts.Data
	}
	watch := serveCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	srv, err := server.New(server.Config{
		Host:     host,
		Port:     port,
		DataFile: dataFile,
		Watch:    watch,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}
