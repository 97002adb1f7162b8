package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	Environment string
	ServiceName string
}

// New builds a zap logger: JSON output for production-like environments,
// coloured console output otherwise. The result also becomes the global logger.
func New(cfg Config) (*zap.Logger, error) {
	level := parseLevel(cfg.Level)

	var zcfg zap.Config
	if isProduction(cfg.Environment) {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.TimeKey = "timestamp"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	log, err := zcfg.Build(zap.Fields(
		zap.String("service", cfg.ServiceName),
		zap.String("environment", cfg.Environment),
	))
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(log)
	return log, nil
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func isProduction(env string) bool {
	switch strings.ToLower(env) {
	case "prod", "production", "release":
		return true
	}
	return false
}
