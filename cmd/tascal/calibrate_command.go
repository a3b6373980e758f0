package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/calib"
)

func newCalibrateCommand(ctx *commandContext) *cobra.Command {
	var pointFlags []string
	var outPath string

	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Fit a linear channel-to-wavelength calibration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			points, err := parsePoints(pointFlags)
			if err != nil {
				return err
			}

			model := calib.NewModel(calib.WithDetectorChannels(cfg.Calibration.DetectorChannels))
			if err := model.Fit(points); err != nil {
				return err
			}
			logger := ctx.logger(cmd.ErrOrStderr(), "calibrate")
			logger.Info("calibration fitted", "points", len(points), "rss", model.RSS(points))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, model.Equation())
			printRange(out, model)

			residuals := model.Residuals(points)
			rows := make([][]string, 0, len(points))
			for i, p := range points {
				rows = append(rows, []string{
					formatFloat(p.Channel, 1),
					formatFloat(p.Wavelength, 2),
					formatFloat(model.Apply(p.Channel), 2),
					formatFloat(residuals[i], 3),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Channel", "Wavelength", "Fitted", "Residual"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
			))

			if outPath != "" {
				if err := model.Save(outPath); err != nil {
					return err
				}
				logger.Info("calibration saved", "path", outPath)
				fmt.Fprintf(out, "Saved calibration to %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&pointFlags, "point", "p", nil, "Reference point as CHANNEL=WAVELENGTH (repeatable)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the calibration record to this file (.json or .toml)")
	return cmd
}

func newRangeCommand(ctx *commandContext) *cobra.Command {
	var calibPath string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the wavelength range covered by a saved calibration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := ctx.calibration(calibPath)
			if err != nil {
				return err
			}
			if model == nil {
				return calib.ErrUncalibrated
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, model.Equation())
			printRange(out, model)
			return nil
		},
	}

	cmd.Flags().StringVar(&calibPath, "calib", "", "Calibration record file")
	return cmd
}

func printRange(w io.Writer, model *calib.Model) {
	lo, hi, ok := model.Range()
	if !ok {
		fmt.Fprintln(w, "Range: uncalibrated")
		return
	}
	fmt.Fprintf(w, "Range: %.2f - %.2f nm\n", lo, hi)
}

// parsePoints reads CHANNEL=WAVELENGTH pairs.
func parsePoints(values []string) ([]calib.Point, error) {
	points := make([]calib.Point, 0, len(values))
	for _, v := range values {
		chText, nmText, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("point %q: expected CHANNEL=WAVELENGTH", v)
		}
		ch, err := strconv.ParseFloat(strings.TrimSpace(chText), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: channel: %w", v, err)
		}
		nm, err := strconv.ParseFloat(strings.TrimSpace(nmText), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: wavelength: %w", v, err)
		}
		points = append(points, calib.Point{Channel: ch, Wavelength: nm})
	}
	return points, nil
}
