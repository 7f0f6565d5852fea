// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger for lc. Production uses JSON output with
// sampling; development uses the coloured console encoder. Logs go to
// stderr so results written to stdout stay clean.
func NewLogger(lc LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}

	var zc zap.Config
	if lc.Environment == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build(zap.AddStacktrace(zap.ErrorLevel))
}
