package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level maps a verbosity to a log level.
func Level(verbosity int) zapcore.Level {
	switch {
	case verbosity <= Quiet:
		return zapcore.WarnLevel
	case verbosity == Normal:
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// NewLogger builds a console logger writing to c.LogFile at the level
// selected by c.Verbosity. A nil LogFile yields a no-op logger.
func (c *Config) NewLogger() *zap.Logger {
	if c.LogFile == nil {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(c.LogFile),
		Level(c.Verbosity),
	)
	return zap.New(core)
}
