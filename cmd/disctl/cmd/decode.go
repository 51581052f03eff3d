/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/disgo/pkg/codec"
	"github.com/ssargent/disgo/pkg/pdu"
)

func newDecodeCmd() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a file of concatenated PDUs",
		Long: `Decode a file of back-to-back DIS PDUs and print each one.

Records of unknown types are skipped. Decoding stops at the first corrupt record
unless --skip-corrupt is set.

Examples:
  disctl decode session.raw
  disctl decode --order little --json session.raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			asJSON, _ := cmd.Flags().GetBool("json")
			summary, _ := cmd.Flags().GetBool("summary")
			skipCorrupt := e.cfg.SkipCorrupt
			if cmd.Flags().Changed("skip-corrupt") {
				skipCorrupt, _ = cmd.Flags().GetBool("skip-corrupt")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to read input")
			}

			scanner := pdu.NewScanner(data, pdu.Options{
				Order:       e.cfg.ByteOrder,
				SkipCorrupt: skipCorrupt,
				Logger:      &e.logger,
			})

			out := cmd.OutOrStdout()
			counts := make(map[pdu.Type]int)
			total := 0
			for scanner.Next() {
				p := scanner.PDU()
				counts[p.Type()]++
				total++
				if summary {
					continue
				}
				if err := printPDU(out, p, scanner.Offset(), len(scanner.Raw()), asJSON); err != nil {
					return err
				}
			}

			e.logger.Info().
				Str("file", args[0]).
				Int("decoded", total).
				Int("skipped", scanner.Skipped()).
				Int("failures", scanner.Failures()).
				Msg("decode finished")

			if summary {
				for _, t := range pdu.DefaultRegistry().Types(pdu.DefaultVersion) {
					if n := counts[t]; n > 0 {
						fmt.Fprintf(out, "%-24s %d\n", t, n)
					}
				}
				fmt.Fprintf(out, "%-24s %d\n", "total", total)
				fmt.Fprintf(out, "%-24s %d\n", "skipped", scanner.Skipped())
			}

			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "decode stopped")
			}
			return nil
		},
	}

	decodeCmd.Flags().Bool("json", false, "Print each PDU as a JSON field tree")
	decodeCmd.Flags().Bool("summary", false, "Print only per-type counts")
	decodeCmd.Flags().Bool("skip-corrupt", false, "Continue past records that fail to decode")
	return decodeCmd
}

// printPDU writes one PDU as an indented dump or a single JSON line.
func printPDU(w io.Writer, p pdu.PDU, offset, size int, asJSON bool) error {
	name := p.Type().String()
	if asJSON {
		line := struct {
			Offset int        `json:"offset"`
			Size   int        `json:"size"`
			Fields codec.Node `json:"fields"`
		}{offset, size, codec.Tree(name, p)}
		return json.NewEncoder(w).Encode(line)
	}

	if _, err := fmt.Fprintf(w, "# offset %d, %d bytes\n", offset, size); err != nil {
		return err
	}
	return codec.Dump(w, name, p)
}
