package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/registry"
	"github.com/cwbudde/algo-spectro/tas"
)

func newOverlayCommand(ctx *commandContext) *cobra.Command {
	var width int
	var calibPath string

	cmd := &cobra.Command{
		Use:   "overlay DIR...",
		Short: "Compute and tabulate ΔAbs traces of several measurement directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.TAS.SmoothingWidth
			}
			logger := ctx.logger(cmd.ErrOrStderr(), "overlay")

			names, err := datasetNames(args)
			if err != nil {
				return err
			}
			reg := registry.New()
			for i, dir := range args {
				set, err := readSetDir(dir)
				if err != nil {
					return err
				}
				name := names[i]
				if err := reg.Save(name, set); err != nil {
					return err
				}
				logger.Debug("dataset loaded", "name", name, "dir", dir)
			}

			model, err := ctx.calibration(calibPath)
			if err != nil {
				return err
			}
			traces, err := tas.Overlay(reg, reg.List(), width, asCalibration(model))
			if err != nil {
				return err
			}
			logger.Info("overlay computed", "datasets", len(traces), "width", width)

			fmt.Fprintln(cmd.OutOrStdout(), renderOverlay(traces, model != nil))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", tas.DefaultSmoothingWidth, "Moving-average width (odd)")
	cmd.Flags().StringVar(&calibPath, "calib", "", "Calibration record file")
	return cmd
}

// datasetNames names each directory by its base name, qualified with the
// parent directory where base names collide. Names that still collide are
// an error, since saving them would overwrite an earlier dataset.
func datasetNames(dirs []string) ([]string, error) {
	bases := make([]string, len(dirs))
	count := make(map[string]int, len(dirs))
	for i, dir := range dirs {
		bases[i] = filepath.Base(filepath.Clean(dir))
		count[bases[i]]++
	}

	names := make([]string, len(dirs))
	seen := make(map[string]string, len(dirs))
	for i, dir := range dirs {
		name := bases[i]
		if count[name] > 1 {
			parent := filepath.Base(filepath.Dir(filepath.Clean(dir)))
			name = parent + "/" + name
		}
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("dataset name %q used by both %s and %s", name, prev, dir)
		}
		seen[name] = dir
		names[i] = name
	}
	return names, nil
}

// renderOverlay lays traces out side by side on the axis of the longest one.
func renderOverlay(traces []tas.NamedTrace, calibrated bool) string {
	headers := []string{axisHeader(calibrated)}
	aligns := []columnAlignment{alignRight}
	var axis []float64
	for _, nt := range traces {
		headers = append(headers, nt.Name)
		aligns = append(aligns, alignRight)
		if len(nt.Trace.X) > len(axis) {
			axis = nt.Trace.X
		}
	}

	rows := make([][]string, 0, len(axis))
	for i, x := range axis {
		row := []string{formatFloat(x, 2)}
		for _, nt := range traces {
			if i < nt.Trace.Len() {
				row = append(row, formatFloat(nt.Trace.Y[i], 4))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, aligns)
}
