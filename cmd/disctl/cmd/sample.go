/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/disgo/pkg/pdu"
)

func newSampleCmd() *cobra.Command {
	sampleCmd := &cobra.Command{
		Use:   "sample <file>",
		Short: "Write one populated PDU of every type to a file",
		Long: `Write a stream containing one populated PDU of every supported type.
The output is useful as decode, capture and archive input.

Examples:
  disctl sample all.raw
  disctl sample --type Fire --type Detonation --repeat 10 warfare.raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			names, _ := cmd.Flags().GetStringSlice("type")
			repeat, _ := cmd.Flags().GetInt("repeat")
			if repeat < 1 {
				return errors.New("--repeat must be at least 1")
			}

			wanted := make(map[pdu.Type]bool)
			for _, name := range names {
				t, ok := pdu.ParseType(name)
				if !ok {
					return errors.Newf("unknown PDU type %q", name)
				}
				wanted[t] = true
			}

			var buf []byte
			count := 0
			for range repeat {
				for _, p := range pdu.Samples() {
					if len(wanted) > 0 && !wanted[p.Type()] {
						continue
					}
					raw, err := pdu.MarshalWithLength(p, e.cfg.ByteOrder)
					if err != nil {
						return errors.Wrapf(err, "marshal %s", p.Type())
					}
					buf = append(buf, raw...)
					count++
				}
			}

			if err := os.WriteFile(args[0], buf, 0644); err != nil {
				return errors.Wrap(err, "failed to write output")
			}
			cmd.Printf("Wrote %d PDUs (%d bytes, %s endian) to %s\n", count, len(buf), e.cfg.ByteOrder, args[0])
			return nil
		},
	}

	sampleCmd.Flags().StringSlice("type", nil, "Only write these PDU types (name or number)")
	sampleCmd.Flags().Int("repeat", 1, "Number of times to repeat the sample set")
	return sampleCmd
}
