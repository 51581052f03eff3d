/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ssargent/disgo/pkg/api"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP inspection API",
		Long: `Start the HTTP inspection API: decode uploaded PDU streams, archive PDUs and
expose Prometheus metrics at /metrics.

Examples:
  disctl serve
  disctl serve --port 9200 --bind 0.0.0.0 --api-key mysecretkey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			cfg := e.cfg
			if cmd.Flags().Changed("port") {
				cfg.Port, _ = cmd.Flags().GetInt("port")
			}
			if cmd.Flags().Changed("bind") {
				cfg.Bind, _ = cmd.Flags().GetString("bind")
			}
			apiKey, _ := cmd.Flags().GetString("api-key")
			if err := cfg.Validate(); err != nil {
				return err
			}

			a, err := openArchive(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			server := api.NewServer(a, api.ServerConfig{
				Bind:        cfg.Bind,
				Port:        cfg.Port,
				Order:       cfg.ByteOrder,
				SkipCorrupt: cfg.SkipCorrupt,
				APIKey:      apiKey,
			}, api.NewMetrics(), e.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cmd.Printf("Metrics available at: http://%s:%d/metrics\n", cfg.Bind, cfg.Port)
			return server.ListenAndServe(ctx)
		},
	}

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (overrides config)")
	serveCmd.Flags().String("bind", "", "Address to bind (overrides config)")
	serveCmd.Flags().String("dir", "", "Archive directory (defaults to archive_dir from config)")
	serveCmd.Flags().String("api-key", "", "Require this X-API-Key on /api/v1 routes")
	return serveCmd
}
