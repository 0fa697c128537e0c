// Package logger is the process-wide structured logger. Records are slog text
// lines on stderr so they never interleave with the report on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"log/slog"
)

var (
	levelVar   slog.LevelVar
	loggerMu   sync.RWMutex
	baseLogger *slog.Logger
	// baseAttrs survive SetOutput so a run id set at startup stays attached.
	baseAttrs []any
)

func init() {
	levelVar.Set(slog.LevelInfo)
	baseLogger = newLogger(os.Stderr)
}

func newLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &levelVar}))
	if len(baseAttrs) > 0 {
		l = l.With(baseAttrs...)
	}
	return l
}

// SetOutput redirects every subsequent record to w. A nil w restores stderr.
func SetOutput(w io.Writer) {
	loggerMu.Lock()
	baseLogger = newLogger(w)
	loggerMu.Unlock()
}

// With attaches key/value pairs to every subsequent record.
func With(args ...any) {
	loggerMu.Lock()
	baseAttrs = append(baseAttrs, args...)
	baseLogger = baseLogger.With(args...)
	loggerMu.Unlock()
}

// SetLevel accepts debug, info, warn (or warning) and error, case-insensitively.
// Anything else falls back to info.
func SetLevel(level string) {
	levelVar.Set(parseLevel(level))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func activeLogger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return baseLogger
}

func Debugf(format string, v ...any) {
	activeLogger().Debug(fmt.Sprintf(format, v...))
}

func Infof(format string, v ...any) {
	activeLogger().Info(fmt.Sprintf(format, v...))
}

func Warnf(format string, v ...any) {
	activeLogger().Warn(fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...any) {
	activeLogger().Error(fmt.Sprintf(format, v...))
}
