package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glyphgen/internal/deps"
	"glyphgen/internal/resolve"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	var engineFlag string

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Check the external tools glyphgen depends on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mode, err := resolve.ParseMode(engineFlag)
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg, mode))

			out := cmd.OutOrStdout()
			colorize := isTerminal(out)
			for _, status := range statuses {
				kind := statusOK
				message := status.Command
				if !status.Available {
					message = status.Detail
					if status.Optional {
						kind = statusWarn
						message += " (only needed for the xelatex engine)"
					} else {
						kind = statusError
					}
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("%d required tools are missing", len(missing))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&engineFlag, "engine", "e", string(resolve.ModePango), "Engine whose requirements to check")
	return cmd
}
