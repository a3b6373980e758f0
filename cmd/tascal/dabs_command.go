package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/spectrum"
	"github.com/cwbudde/algo-spectro/tas"
)

func newDabsCommand(ctx *commandContext) *cobra.Command {
	files := make(map[spectrum.Label]*string, len(spectrum.Labels()))
	var width int
	var calibPath string

	cmd := &cobra.Command{
		Use:   "dabs",
		Short: "Compute the smoothed ΔAbs trace of one measurement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.TAS.SmoothingWidth
			}

			var set spectrum.Set
			for _, label := range spectrum.Labels() {
				path := strings.TrimSpace(*files[label])
				if path == "" {
					return fmt.Errorf("missing --%s", flagName(label))
				}
				spec, err := readSpectrumFile(path)
				if err != nil {
					return err
				}
				if err := set.Put(label, spec); err != nil {
					return err
				}
			}

			model, err := ctx.calibration(calibPath)
			if err != nil {
				return err
			}
			logger := ctx.logger(cmd.ErrOrStderr(), "dabs")
			trace, err := tas.Compute(set, width, asCalibration(model))
			if err != nil {
				logger.Error("ΔAbs computation failed", "error", err)
				return err
			}
			logger.Info("ΔAbs computed", "channels", trace.Len(), "width", width, "calibrated", model != nil)

			rows := make([][]string, 0, trace.Len())
			for i := range trace.Len() {
				x, y := trace.At(i)
				rows = append(rows, []string{formatFloat(x, 2), formatFloat(y, 4)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{axisHeader(model != nil), "ΔAbs"},
				rows,
				[]columnAlignment{alignRight, alignRight},
			))
			return nil
		},
	}

	for _, label := range spectrum.Labels() {
		files[label] = cmd.Flags().String(flagName(label), "", label.String()+" spectrum file")
	}
	cmd.Flags().IntVarP(&width, "width", "w", tas.DefaultSmoothingWidth, "Moving-average width (odd)")
	cmd.Flags().StringVar(&calibPath, "calib", "", "Calibration record file")
	return cmd
}

// flagName turns a label such as DARK_ref into dark-ref.
func flagName(label spectrum.Label) string {
	return strings.ReplaceAll(strings.ToLower(label.String()), "_", "-")
}

// asCalibration keeps a nil model from becoming a non-nil interface.
func asCalibration(model *calib.Model) tas.Calibration {
	if model == nil {
		return nil
	}
	return model
}
