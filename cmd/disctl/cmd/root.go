/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/disgo/pkg/codec"
	"github.com/ssargent/disgo/pkg/config"
	"github.com/ssargent/disgo/pkg/logging"
)

type envKey struct{}

// env is the per-invocation state every subcommand reads.
type env struct {
	cfg       *config.Config
	logger    zerolog.Logger
	logCloser io.Closer
}

func envFrom(cmd *cobra.Command) *env {
	if e, ok := cmd.Context().Value(envKey{}).(*env); ok {
		return e
	}
	return &env{cfg: config.DefaultConfig(), logger: zerolog.Nop()}
}

// NewRootCmd builds the disctl command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "disctl",
		Short: "disctl - DIS PDU toolkit",
		Long: `disctl decodes, captures, archives and serves IEEE 1278.1 Distributed
Interactive Simulation PDUs.

Configuration is read from --config (YAML, or TOML when the file ends in .toml).
A missing config file means defaults.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			cfg := config.DefaultConfig()
			if config.ConfigExists(configPath) {
				loaded, err := config.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			if cmd.Flags().Changed("order") {
				value, _ := cmd.Flags().GetString("order")
				order, err := codec.ParseByteOrder(value)
				if err != nil {
					return err
				}
				cfg.ByteOrder = order
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, closer, err := logging.New("disctl", cfg.Logging)
			if err != nil {
				return errors.Wrap(err, "failed to set up logging")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, envKey{}, &env{cfg: cfg, logger: logger, logCloser: closer}))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if e := envFrom(cmd); e.logCloser != nil {
				return e.logCloser.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.GetDefaultConfigPath(), "Path to the config file")
	rootCmd.PersistentFlags().String("order", "", "Byte order of PDU data: big or little (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(
		newInitCmd(),
		newDecodeCmd(),
		newSampleCmd(),
		newCaptureCmd(),
		newReplayCmd(),
		newArchiveCmd(),
		newServeCmd(),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
