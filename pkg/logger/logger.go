// pkg/logger/logger.go

package logger

import (
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var (
	mu      sync.RWMutex
	log     *zap.Logger
	logPath string
)

// L returns the process logger, installing the console fallback on first use.
func L() *zap.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l != nil {
		return l
	}
	InitFallback()
	return L()
}

// SetLogger installs l as the process logger and as the zap and otelzap globals.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	log = l
	mu.Unlock()
	zap.ReplaceGlobals(l)
	otelzap.ReplaceGlobals(otelzap.New(l))
}

// LogPath is the JSON log file in use, or "" when logging to the console only.
func LogPath() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func setLogPath(p string) {
	mu.Lock()
	logPath = p
	mu.Unlock()
}

// Sync flushes any buffered log entries. Call it before the process exits.
func Sync() error {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l == nil {
		return nil
	}
	return l.Sync()
}
