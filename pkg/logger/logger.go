package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the global logger. It discards everything until InitLogger runs.
var L = zap.NewNop()

// InitLogger builds the global logger.
// `level` is one of "debug", "info", "warn", "error", "fatal", "panic".
// `isProduction` selects the JSON encoder (production) or the colored console encoder (development).
func InitLogger(level string, isProduction bool) error {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
		fmt.Fprintf(os.Stderr, "Warning: Invalid log level '%s', using default 'info'. Error: %v\n", level, err)
	}

	var (
		l   *zap.Logger
		err error
	)
	if isProduction {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
		l, err = config.Build()
	} else {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.Level = zap.NewAtomicLevelAt(zapLevel)
		l, err = config.Build()
	}

	if err != nil {
		return fmt.Errorf("failed to initialize zap logger: %w", err)
	}
	L = l

	L.Info("Zap logger initialized", zap.String("level", zapLevel.String()), zap.Bool("productionMode", isProduction))
	return nil
}

// Sync flushes buffered entries. Call it before the process exits.
func Sync() {
	if L != nil {
		_ = L.Sync()
	}
}
