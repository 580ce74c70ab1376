package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/guimove/pewfit/internal/metrics"
	"github.com/guimove/pewfit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the seating upload form over HTTP",
	Long: `Starts an HTTP server accepting multipart uploads on POST /upload with
the pew file, the household file and the venue parameters, and answering
with the seating arrangement CSV.

Also serves GET /healthz and Prometheus metrics on GET /metrics.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", f.Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := server.New(cfg,
		server.WithLogger(logger),
		server.WithRecorder(metrics.NewPrometheus(reg, metrics.DefaultNamespace)),
		server.WithGatherer(reg),
	)
	return srv.ListenAndServe(ctx)
}
