package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/cwbudde/algo-spectro/peaks"
)

// Peaks configures the calibration peak finder.
type Peaks struct {
	Prominence float64 `toml:"prominence"`
	Distance   int     `toml:"distance"`
	TopK       int     `toml:"top_k"`
}

// Calibration configures the channel-to-wavelength model.
type Calibration struct {
	DetectorChannels int `toml:"detector_channels"`
	// File is a saved calibration record applied when no other is given.
	File string `toml:"file"`
}

// TAS configures the ΔAbs computation.
type TAS struct {
	SmoothingWidth int `toml:"smoothing_width"`
}

// Logging configures the command-line logger.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full tascal configuration.
type Config struct {
	Peaks       Peaks       `toml:"peaks"`
	Calibration Calibration `toml:"calibration"`
	TAS         TAS         `toml:"tas"`
	Logging     Logging     `toml:"logging"`
}

// Load parses and validates the configuration at path. An empty path returns
// the defaults. Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return nil, err
		}
		file, err := os.Open(expanded)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PeakOptions converts the [peaks] section into peak finder options.
func (c *Config) PeakOptions() []peaks.Option {
	return []peaks.Option{
		peaks.WithProminence(c.Peaks.Prominence),
		peaks.WithDistance(c.Peaks.Distance),
		peaks.WithTopK(c.Peaks.TopK),
	}
}

// Encode writes c as TOML. The output is accepted by Load.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
