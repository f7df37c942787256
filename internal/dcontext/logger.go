// Package dcontext carries a request-scoped Logger and request ID
// through context.Context.
package dcontext

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	defaultLogger   *logrus.Entry = logrus.StandardLogger().WithField("go.version", runtime.Version())
	defaultLoggerMu sync.RWMutex
)

// Logger is the leveled-logging interface the core logs through.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	WithError(err error) *logrus.Entry
}

type loggerKey struct{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the logger from ctx, or the process default if none
// was attached. Any keys given are resolved on ctx and attached as
// fields, e.g. GetLogger(ctx, RequestIDKey).
func GetLogger(ctx context.Context, keys ...any) Logger {
	var logger *logrus.Entry

	if v := ctx.Value(loggerKey{}); v != nil {
		if lgr, ok := v.(*logrus.Entry); ok {
			logger = lgr
		}
	}

	if logger == nil {
		defaultLoggerMu.RLock()
		logger = defaultLogger
		defaultLoggerMu.RUnlock()
	}

	fields := logrus.Fields{}
	for _, key := range keys {
		if v := ctx.Value(key); v != nil {
			fields[fmt.Sprint(key)] = v
		}
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.WithFields(fields)
}

// SetDefaultLogger replaces the process-wide fallback logger, used once
// at startup after configuration.Loglevel is parsed.
func SetDefaultLogger(logger *logrus.Entry) {
	defaultLoggerMu.Lock()
	defaultLogger = logger
	defaultLoggerMu.Unlock()
}
