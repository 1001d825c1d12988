// Package logger provides the zap loggers used by the commands.
package logger

import "go.uber.org/zap"

// New returns a production JSON logger, or a human-readable console logger
// when development is set.
func New(development bool) (*zap.Logger, error) {
	if development {
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		return cfg.Build()
	}
	return zap.NewProduction()
}

// Must is New that panics on error.
func Must(development bool) *zap.Logger {
	log, err := New(development)
	if err != nil {
		panic(err)
	}
	return log
}
