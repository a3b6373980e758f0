package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePeaks(); err != nil {
		return err
	}
	if c.Calibration.DetectorChannels < 2 {
		return fmt.Errorf("%w: calibration.detector_channels must be at least 2, got %d",
			ErrInvalid, c.Calibration.DetectorChannels)
	}
	if w := c.TAS.SmoothingWidth; w < 1 || w%2 == 0 {
		return fmt.Errorf("%w: tas.smoothing_width must be odd and positive, got %d", ErrInvalid, w)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

func (c *Config) validatePeaks() error {
	if c.Peaks.Prominence < 0 {
		return fmt.Errorf("%w: peaks.prominence must be non-negative, got %g", ErrInvalid, c.Peaks.Prominence)
	}
	if c.Peaks.Distance < 1 {
		return fmt.Errorf("%w: peaks.distance must be at least 1, got %d", ErrInvalid, c.Peaks.Distance)
	}
	if c.Peaks.TopK < 0 {
		return fmt.Errorf("%w: peaks.top_k must be non-negative, got %d", ErrInvalid, c.Peaks.TopK)
	}
	return nil
}
