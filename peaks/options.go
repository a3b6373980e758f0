package peaks

// Defaults used when no option overrides them.
const (
	DefaultProminence = 50.0
	DefaultDistance   = 100
	DefaultTopK       = 5
)

// Config holds peak detection settings.
type Config struct {
	// MinProminence discards candidates whose prominence is below it.
	MinProminence float64
	// MinDistance is the smallest allowed channel spacing between two results.
	MinDistance int
	// TopK limits the number of results. Zero returns every survivor.
	TopK int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used by the calibration workflow.
func DefaultConfig() Config {
	return Config{
		MinProminence: DefaultProminence,
		MinDistance:   DefaultDistance,
		TopK:          DefaultTopK,
	}
}

// WithProminence sets the minimum prominence. Negative values are ignored.
func WithProminence(p float64) Option {
	return func(cfg *Config) {
		if p >= 0 {
			cfg.MinProminence = p
		}
	}
}

// WithDistance sets the minimum channel distance. Values below 1 are ignored.
func WithDistance(d int) Option {
	return func(cfg *Config) {
		if d >= 1 {
			cfg.MinDistance = d
		}
	}
}

// WithTopK sets the maximum number of peaks returned. Zero means unlimited;
// negative values are ignored.
func WithTopK(k int) Option {
	return func(cfg *Config) {
		if k >= 0 {
			cfg.TopK = k
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
