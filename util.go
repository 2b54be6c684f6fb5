package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"wordlesolver/internal/logger"
)

var appLogger = logger.New("wordlesolver")

// formatUptime returns a human-readable string for a duration.
func formatUptime(d time.Duration) string {
	seconds := int(d.Seconds()) % 60
	minutes := int(d.Minutes()) % 60
	hours := int(d.Hours())
	switch {
	case hours > 0:
		return fmt.Sprintf("%d hour%s, %d minute%s, %d second%s",
			hours, plural(hours),
			minutes, plural(minutes),
			seconds, plural(seconds))
	case minutes > 0:
		return fmt.Sprintf("%d minute%s, %d second%s",
			minutes, plural(minutes),
			seconds, plural(seconds))
	default:
		return fmt.Sprintf("%d second%s", seconds, plural(seconds))
	}
}

// plural returns "s" if n != 1, otherwise "".
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// getEnvString reads a string from the environment or returns a fallback.
func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvDuration reads a time.Duration from the environment or returns a fallback.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		logWarn("Invalid duration for %s: %q, using default %v", key, val, fallback)
		return fallback
	}
	return d
}

// getEnvInt reads an int from the environment or returns a fallback.
func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := parseInt(val)
	if err != nil {
		logWarn("Invalid int for %s: %v, using default %d", key, err, fallback)
		return fallback
	}
	return i
}

// parseInt parses a decimal string as an int.
func parseInt(val string) (int, error) {
	return strconv.Atoi(val)
}

// requestLogger returns appLogger tagged with the request ID in ctx, if any.
func requestLogger(ctx context.Context) *log.Logger {
	if reqID, ok := ctx.Value(requestIDKey).(string); ok && reqID != "" {
		return appLogger.With("request_id", reqID)
	}
	return appLogger
}

func logDebug(format string, v ...any) {
	appLogger.Debugf(format, v...)
}

// logInfo logs an info-level message.
func logInfo(format string, v ...any) {
	appLogger.Infof(format, v...)
}

// logWarn logs a warning-level message.
func logWarn(format string, v ...any) {
	appLogger.Warnf(format, v...)
}

// logFatal logs a fatal error and exits.
func logFatal(format string, v ...any) {
	appLogger.Fatalf(format, v...)
}
