/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/disgo/pkg/archive"
	"github.com/ssargent/disgo/pkg/capture"
	"github.com/ssargent/disgo/pkg/pdu"
)

func newArchiveCmd() *cobra.Command {
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Store and query PDUs in the pebble archive",
		Long: `Store and query PDUs in the archive directory (archive_dir in the config,
or --dir).

Examples:
  disctl archive import session.raw
  disctl archive import --capture ./capture.dis
  disctl archive ls --type Fire --limit 20
  disctl archive get 2JgnpTOqVKSeJ3LlPcz0CL0fKle
  disctl archive stats`,
	}
	archiveCmd.PersistentFlags().String("dir", "", "Archive directory (defaults to archive_dir from config)")

	archiveCmd.AddCommand(
		newArchiveImportCmd(),
		newArchiveListCmd(),
		newArchiveGetCmd(),
		newArchiveRemoveCmd(),
		newArchiveStatsCmd(),
	)
	return archiveCmd
}

func openArchive(cmd *cobra.Command) (*archive.Archive, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = envFrom(cmd).cfg.ArchiveDir
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, errors.Wrap(err, "failed to create archive dir")
	}
	return archive.Open(dir, archive.Options{})
}

func newArchiveImportCmd() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Archive every PDU in a raw file or capture log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			fromCapture, _ := cmd.Flags().GetBool("capture")

			a, err := openArchive(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			var imported int
			if fromCapture {
				imported, err = importCapture(a, args[0])
			} else {
				imported, err = importRaw(cmd, a, args[0])
			}
			if err != nil {
				return err
			}

			e.logger.Info().Str("file", args[0]).Int("imported", imported).Msg("archive import finished")
			cmd.Printf("Archived %d PDUs\n", imported)
			return nil
		},
	}
	importCmd.Flags().Bool("capture", false, "Input is a capture log rather than a raw PDU stream")
	return importCmd
}

func importRaw(cmd *cobra.Command, a *archive.Archive, path string) (int, error) {
	e := envFrom(cmd)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read input")
	}
	records, splitErr := pdu.SplitRaw(data, e.cfg.ByteOrder)
	if splitErr != nil {
		e.logger.Warn().Err(splitErr).Msg("input ends with an unframed tail")
	}
	for i, raw := range records {
		if _, err := a.Put(raw, e.cfg.ByteOrder); err != nil {
			return i, err
		}
	}
	return len(records), nil
}

func importCapture(a *archive.Archive, path string) (int, error) {
	reader, err := capture.NewReader(capture.ReaderConfig{FilePath: path})
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	n := 0
	it := reader.Iterator()
	for it.Next() {
		f := it.Frame()
		if _, err := a.Put(f.PDU, f.Order); err != nil {
			return n, err
		}
		n++
	}
	return n, it.Err()
}

func newArchiveListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List archived PDUs of one type",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, _ := cmd.Flags().GetString("type")
			limit, _ := cmd.Flags().GetInt("limit")
			t, ok := pdu.ParseType(typeName)
			if !ok {
				return errors.Newf("unknown PDU type %q", typeName)
			}

			a, err := openArchive(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			entries, err := a.List(t, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, entry := range entries {
				fmt.Fprintf(out, "%s  %s  %-22s %5d bytes  %s\n",
					entry.ID, entry.ID.Time().UTC().Format(time.RFC3339), entry.Type, len(entry.Raw), entry.Order)
			}
			return nil
		},
	}
	listCmd.Flags().StringP("type", "t", "", "PDU type name or number (required)")
	listCmd.Flags().IntP("limit", "n", 50, "Maximum records to list (0 for all)")
	if err := listCmd.MarkFlagRequired("type"); err != nil {
		panic(err)
	}
	return listCmd
}

func newArchiveGetCmd() *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print an archived PDU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			id, err := ksuid.Parse(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid id %q", args[0])
			}

			a, err := openArchive(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			entry, err := a.Get(id)
			if err != nil {
				return err
			}
			p, err := entry.Decode()
			if err != nil {
				return errors.Wrapf(err, "decode %s", id)
			}
			return printPDU(cmd.OutOrStdout(), p, 0, len(entry.Raw), asJSON)
		},
	}
	getCmd.Flags().Bool("json", false, "Print the PDU as a JSON field tree")
	return getCmd
}

func newArchiveRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an archived PDU",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ksuid.Parse(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid id %q", args[0])
			}

			a, err := openArchive(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Delete(id); err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", id)
			return nil
		},
	}
}

func newArchiveStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print archived record counts per PDU type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openArchive(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			counts, err := a.Count()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			total := 0
			for _, t := range pdu.DefaultRegistry().Types(pdu.DefaultVersion) {
				if n := counts[t]; n > 0 {
					fmt.Fprintf(out, "%-24s %d\n", t, n)
					total += n
				}
			}
			fmt.Fprintf(out, "%-24s %d\n", "total", total)
			return nil
		},
	}
}
