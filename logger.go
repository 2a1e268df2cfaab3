package jsonpath

import (
	"log/slog"
)

// logger is the package-level logger instance used throughout the jsonpath
// package. It discards everything until SetLogger installs another one.
var logger = slog.New(slog.DiscardHandler)

// GetLogger returns the current package-level logger instance.
func GetLogger() *slog.Logger {
	return logger
}

// SetLogger sets the package-level logger and returns the new logger instance.
func SetLogger(l *slog.Logger) *slog.Logger {
	logger = l
	return logger
}
