package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"glyphgen/internal/manifest"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent render history from the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Manifest.Enabled {
				return fmt.Errorf("render manifest is disabled in the configuration")
			}

			store, err := manifest.Open(cfg.ManifestPath())
			if err != nil {
				return fmt.Errorf("open manifest: %w", err)
			}
			defer store.Close()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("read manifest: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No renders recorded yet")
				return nil
			}

			headers := []string{"When", "Run", "Engine", "Status", "Output"}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.CreatedAt.Local().Format(time.DateTime),
					shortRunID(rec.RunID),
					rec.Engine,
					rec.Status,
					rec.OutputPath,
				})
			}
			fmt.Fprintln(out, renderTable(out, headers, rows, nil))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of rows to show")
	return cmd
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
