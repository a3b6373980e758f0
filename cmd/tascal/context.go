package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/internal/config"
	"github.com/cwbudde/algo-spectro/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = config.NormalizeLevel(*c.logLevelFlag)
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger writes to w using the configured level and format. Construction
// failures fall back to a silent logger; they never fail a command.
func (c *commandContext) logger(w io.Writer, component string) *slog.Logger {
	cfg, err := c.ensureConfig()
	if err != nil {
		return logging.NewNop()
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: w,
	})
	if err != nil {
		return logging.NewNop()
	}
	return logging.WithComponent(logger, component)
}

// calibration loads the record at path, or the configured file when path is
// empty. It returns nil when neither is set.
func (c *commandContext) calibration(path string) (*calib.Model, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = cfg.Calibration.File
	}
	if path == "" {
		return nil, nil
	}
	model := calib.NewModel(calib.WithDetectorChannels(cfg.Calibration.DetectorChannels))
	if err := model.Load(path); err != nil {
		return nil, err
	}
	return model, nil
}
