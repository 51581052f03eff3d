/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/disgo/pkg/config"
)

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a default configuration file to the --config path.

Examples:
  disctl init
  disctl init --config ./disgo.toml --archive-dir ./data/archive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			if config.ConfigExists(configPath) && !force {
				cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", configPath)
				return nil
			}

			cfg := config.DefaultConfig()
			if cmd.Flags().Changed("order") {
				cfg.ByteOrder = envFrom(cmd).cfg.ByteOrder
			}
			if v, _ := cmd.Flags().GetString("capture-path"); v != "" {
				cfg.CapturePath = v
			}
			if v, _ := cmd.Flags().GetString("archive-dir"); v != "" {
				cfg.ArchiveDir = v
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.SaveConfig(cfg, configPath); err != nil {
				return errors.Wrap(err, "failed to write config")
			}

			cmd.Printf("Wrote config to %s\n", configPath)
			cmd.Printf("Capture log: %s\n", cfg.CapturePath)
			cmd.Printf("Archive: %s\n", cfg.ArchiveDir)
			return nil
		},
	}

	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	initCmd.Flags().String("capture-path", "", "Capture log path to record in the config")
	initCmd.Flags().String("archive-dir", "", "Archive directory to record in the config")
	return initCmd
}
