package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger: JSON production encoding for "json",
// colored development console output otherwise.
func NewLogger(c LoggingConfig) (*zap.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}

	var zc zap.Config
	if c.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = level

	return zc.Build()
}

func parseLevel(s string) (zap.AtomicLevel, error) {
	if s == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}

	return zap.ParseAtomicLevel(s)
}
