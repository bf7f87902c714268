package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atikulmunna/logtally/internal/server"
	"github.com/atikulmunna/logtally/internal/source"
)

func newServeCmd(a *app) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve <log-file>",
		Short: "Serve level statistics for a log file over HTTP",
		Long: `Serve the analysis of one log file as JSON. The file is re-read on every
request, so the answers follow the file as it changes.

Endpoints:
  GET /healthz
  GET /api/stats
  GET /api/records?level=error&message=*timeout*`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := source.Resolve(args[0])
			if err != nil {
				return err
			}
			pl, err := a.newPipeline()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(path, pl, a.logger).Start(ctx, a.cfg.Addr)
		},
	}

	serveCmd.Flags().String("addr", defaultAddr, "listen address")
	cobra.CheckErr(a.v.BindPFlag("addr", serveCmd.Flags().Lookup("addr")))

	return serveCmd
}
