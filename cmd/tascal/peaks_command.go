package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/peaks"
)

func newPeaksCommand(ctx *commandContext) *cobra.Command {
	var prominence float64
	var distance int
	var topK int

	cmd := &cobra.Command{
		Use:   "peaks FILE",
		Short: "List the most prominent peaks of a calibration spectrum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts := cfg.PeakOptions()
			flags := cmd.Flags()
			if flags.Changed("prominence") {
				opts = append(opts, peaks.WithProminence(prominence))
			}
			if flags.Changed("distance") {
				opts = append(opts, peaks.WithDistance(distance))
			}
			if flags.Changed("top-k") {
				opts = append(opts, peaks.WithTopK(topK))
			}

			spec, err := readSpectrumFile(args[0])
			if err != nil {
				return err
			}
			found := peaks.Detect(spec, opts...)
			ctx.logger(cmd.ErrOrStderr(), "peaks").Info("peak search complete",
				"file", args[0], "channels", len(spec), "peaks", len(found))

			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintln(out, "No peaks found")
				return nil
			}
			rows := make([][]string, 0, len(found))
			for i, p := range found {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					strconv.Itoa(p.Index),
					formatFloat(p.Height, 2),
					formatFloat(p.Prominence, 2),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Channel", "Height", "Prominence"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().Float64Var(&prominence, "prominence", peaks.DefaultProminence, "Minimum peak prominence")
	cmd.Flags().IntVar(&distance, "distance", peaks.DefaultDistance, "Minimum channel distance between peaks")
	cmd.Flags().IntVar(&topK, "top-k", peaks.DefaultTopK, "Maximum number of peaks (0 = all)")
	return cmd
}
