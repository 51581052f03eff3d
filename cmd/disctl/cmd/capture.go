/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/disgo/pkg/capture"
	"github.com/ssargent/disgo/pkg/pdu"
)

func newCaptureCmd() *cobra.Command {
	captureCmd := &cobra.Command{
		Use:   "capture <raw-file>",
		Short: "Append the PDUs of a raw file to the capture log",
		Long: `Split a file of back-to-back PDUs into records and append each one as a
CRC-checked frame to the capture log. A torn tail left by an earlier crash is
truncated before appending.

Examples:
  disctl capture session.raw
  disctl capture --out ./capture.dis session.raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = e.cfg.CapturePath
			}
			fsyncInterval, _ := cmd.Flags().GetDuration("fsync-interval")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to read input")
			}
			records, splitErr := pdu.SplitRaw(data, e.cfg.ByteOrder)
			if splitErr != nil {
				e.logger.Warn().Err(splitErr).Int("records", len(records)).Msg("input ends with an unframed tail")
			}

			recovery, err := capture.Recover(out)
			if err != nil {
				return errors.Wrap(err, "failed to recover capture log")
			}
			if recovery.BytesTruncated > 0 {
				cmd.Printf("Recovered capture log: %d bytes truncated after %d valid frames\n",
					recovery.BytesTruncated, recovery.FramesValidated)
			}

			writer, err := capture.NewWriter(capture.WriterConfig{
				FilePath:      out,
				FsyncInterval: fsyncInterval,
			})
			if err != nil {
				return err
			}

			for _, raw := range records {
				if _, _, err := writer.Append(raw, e.cfg.ByteOrder); err != nil {
					_ = writer.Close()
					return errors.Wrap(err, "failed to append frame")
				}
			}
			size := writer.Size()
			if err := writer.Close(); err != nil {
				return err
			}

			e.logger.Info().Str("capture", out).Int("frames", len(records)).Int64("size", size).Msg("capture finished")
			cmd.Printf("Captured %d PDUs to %s (%d bytes)\n", len(records), out, size)
			return nil
		},
	}

	captureCmd.Flags().String("out", "", "Capture log path (defaults to capture_path from config)")
	captureCmd.Flags().Duration("fsync-interval", 0, "Fsync interval (0 syncs every frame)")
	return captureCmd
}
