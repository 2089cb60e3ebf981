// Package logger provides a slog.Logger factory and the domain attribute
// helpers used across the kit for consistent structured log keys.
package logger
