// pkg/logger/writer.go

package logger

import (
	"fmt"
	"os"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/xdg"
	"go.uber.org/zap/zapcore"
)

// GetLogFileWriter opens path for appending, creating it owner-only if needed.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	if err := xdg.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create log directory for %s: %w", path, err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, xdg.FilePermOwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	return zapcore.AddSync(file), nil
}

// FindWritableLogPath returns the first usable path from PlatformLogPaths
// together with an open writer for it.
func FindWritableLogPath() (string, zapcore.WriteSyncer, error) {
	for _, path := range PlatformLogPaths() {
		if w, err := GetLogFileWriter(path); err == nil {
			return path, w, nil
		}
	}
	return "", nil, fmt.Errorf("no writable log path found")
}
