package config

import "strings"

func (c *Config) normalize() error {
	file := strings.TrimSpace(c.Calibration.File)
	if file != "" {
		expanded, err := ExpandPath(file)
		if err != nil {
			return err
		}
		file = expanded
	}
	c.Calibration.File = file
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console", "text":
		c.Logging.Format = defaultLogFormat
	case "json":
	default:
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = NormalizeLevel(c.Logging.Level)
}

// NormalizeLevel lower-cases a log level name and maps aliases such as
// "warning" onto the names Validate accepts. Empty means the default level.
func NormalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "":
		return defaultLogLevel
	case "warning":
		return "warn"
	}
	return level
}
