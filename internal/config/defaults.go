package config

import (
	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/peaks"
	"github.com/cwbudde/algo-spectro/tas"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Peaks: Peaks{
			Prominence: peaks.DefaultProminence,
			Distance:   peaks.DefaultDistance,
			TopK:       peaks.DefaultTopK,
		},
		Calibration: Calibration{
			DetectorChannels: calib.DefaultDetectorChannels,
		},
		TAS: TAS{
			SmoothingWidth: tas.DefaultSmoothingWidth,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
