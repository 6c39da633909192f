package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"glyphgen/internal/glyphspec"
	"glyphgen/internal/resolve"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var engineFlag string

	cmd := &cobra.Command{
		Use:   "plan <spec.json>",
		Short: "Show the jobs a generate run would execute, without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			mode, err := resolve.ParseMode(engineFlag)
			if err != nil {
				return err
			}
			doc, err := glyphspec.Load(args[0])
			if err != nil {
				return err
			}
			jobs, skips, err := resolve.Resolve(doc, mode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(jobs) == 0 {
				fmt.Fprintln(out, "No renderable jobs")
			} else {
				headers := []string{"#", "Subset", "Entry", "Output", "Flip", "Flop"}
				rows := make([][]string, 0, len(jobs))
				for i, job := range jobs {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						job.Subset,
						job.Entry,
						job.OutputPath,
						yesNo(job.Flip),
						yesNo(job.Flop),
					})
				}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft}
				fmt.Fprintln(out, renderTable(out, headers, rows, aligns))
			}

			for _, skip := range skips {
				fmt.Fprintf(out, "Skip: subset %q entry %q rendition %d: %s\n", skip.Subset, skip.Entry, skip.Rendition, skip.Reason)
			}
			fmt.Fprintf(out, "%d jobs, %d skipped renditions, %d entries in spec\n", len(jobs), len(skips), doc.EntryCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&engineFlag, "engine", "e", "", "Rendering engine (pango or xelatex)")
	_ = cmd.MarkFlagRequired("engine")
	return cmd
}
