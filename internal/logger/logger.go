// Package logger builds the process-wide zap logger from LOG_* settings.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "car-rental"

// Config describes where and how the API writes its logs.
type Config struct {
	Level       string // debug, info, warn, error
	Encoding    string // json | console; пусто = по режиму
	OutputPaths string // через запятую: "stdout,/var/log/car-rental.log"
	Development bool
}

// New returns a logger tagged with the service name. Development mode switches
// to colored console output with callers and error stack traces. An unknown
// level falls back to info and is reported through the returned logger.
func New(cfg Config) (*zap.Logger, error) {
	level, levelErr := parseLevel(cfg.Level)

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		DisableCaller:     !cfg.Development,
		DisableStacktrace: !cfg.Development,
		Encoding:          encodingFor(cfg),
		EncoderConfig:     encoderConfigFor(cfg.Development),
		OutputPaths:       splitPaths(cfg.OutputPaths),
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields:     map[string]interface{}{"service": serviceName},
	}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	if levelErr != nil {
		log.Warn("Unknown log level, using info", zap.String("level", cfg.Level), zap.Error(levelErr))
	}
	return log, nil
}

func parseLevel(raw string) (zapcore.Level, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zapcore.InfoLevel, err
	}
	return level, nil
}

func encodingFor(cfg Config) string {
	switch strings.ToLower(strings.TrimSpace(cfg.Encoding)) {
	case "json":
		return "json"
	case "console":
		return "console"
	}
	if cfg.Development {
		return "console"
	}
	return "json"
}

func encoderConfigFor(development bool) zapcore.EncoderConfig {
	if development {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		return encCfg
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeDuration = zapcore.MillisDurationEncoder
	return encCfg
}

func splitPaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return []string{"stdout"}
	}
	return paths
}
