/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/disgo/pkg/capture"
	"github.com/ssargent/disgo/pkg/pdu"
)

func newReplayCmd() *cobra.Command {
	replayCmd := &cobra.Command{
		Use:   "replay [capture-file]",
		Short: "Decode every frame of a capture log",
		Long: `Read a capture log frame by frame and decode each PDU with the byte order it
was captured in. Prints one line per frame, or a full dump with --dump.
--raw writes the PDUs back out as a plain concatenated stream.

Examples:
  disctl replay
  disctl replay --dump ./capture.dis
  disctl replay --raw extracted.raw ./capture.dis`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			path := e.cfg.CapturePath
			if len(args) == 1 {
				path = args[0]
			}
			dump, _ := cmd.Flags().GetBool("dump")
			rawOut, _ := cmd.Flags().GetString("raw")

			reader, err := capture.NewReader(capture.ReaderConfig{FilePath: path})
			if err != nil {
				return err
			}
			defer reader.Close()

			var raw []byte
			out := cmd.OutOrStdout()
			frames, failed := 0, 0
			it := reader.Iterator()
			for it.Next() {
				f := it.Frame()
				frames++
				if rawOut != "" {
					raw = append(raw, f.PDU...)
				}

				p, err := pdu.Unmarshal(f.PDU, f.Order)
				if err != nil {
					failed++
					e.logger.Debug().Err(err).Str("id", f.ID.String()).Msg("frame did not decode")
					fmt.Fprintf(out, "%s %s error: %v\n", f.Time().UTC().Format(time.RFC3339Nano), f.ID, err)
					continue
				}

				if dump {
					if err := printPDU(out, p, int(reader.Offset())-f.Size(), len(f.PDU), false); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(out, "%s %s %-22s %5d bytes  %s\n",
					f.Time().UTC().Format(time.RFC3339Nano), f.ID, p.Type(), len(f.PDU), f.Order)
			}
			if err := it.Err(); err != nil {
				return errors.Wrapf(err, "replay stopped after %d frames", frames)
			}

			if rawOut != "" {
				if err := os.WriteFile(rawOut, raw, 0644); err != nil {
					return errors.Wrap(err, "failed to write raw output")
				}
			}

			e.logger.Info().Str("capture", path).Int("frames", frames).Int("failed", failed).Msg("replay finished")
			return nil
		},
	}

	replayCmd.Flags().Bool("dump", false, "Print the full field dump of every PDU")
	replayCmd.Flags().String("raw", "", "Also write the captured PDUs to this file")
	return replayCmd
}
