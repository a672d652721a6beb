/* pkg/logger/fallback.go */

package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFallbackLogger logs to stderr only, at LOG_LEVEL or WARN.
func NewFallbackLogger() *zap.Logger {
	level := zapcore.WarnLevel
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = ParseLogLevel(env)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// InitFallback installs the console-only logger.
func InitFallback() {
	SetLogger(NewFallbackLogger())
	setLogPath("")
}

// Initialize tees a console core on stderr with a JSON file core. When no log
// file can be opened it falls back to the console alone and says so once.
func Initialize(opts Options) *zap.Logger {
	consoleLevel := zapcore.WarnLevel
	if opts.ConsoleLevel != "" {
		consoleLevel = ParseLogLevel(opts.ConsoleLevel)
	}
	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.Lock(os.Stderr),
		consoleLevel,
	)

	if opts.DisableFile {
		l := zap.New(console, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
		SetLogger(l)
		setLogPath("")
		return l
	}

	path, writer, err := openLogFile(opts.FilePath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v; logging to console only\n", err)
		l := zap.New(console, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
		SetLogger(l)
		setLogPath("")
		return l
	}

	core := zapcore.NewTee(
		console,
		zapcore.NewCore(zapcore.NewJSONEncoder(DefaultJSONEncoderConfig()), writer, ParseLogLevel(opts.Level)),
	)

	l := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	SetLogger(l)
	setLogPath(path)
	l.Debug("Logger initialized",
		zap.String("log_level", ParseLogLevel(opts.Level).String()),
		zap.String("log_path", path),
	)
	return l
}

func openLogFile(explicit string) (string, zapcore.WriteSyncer, error) {
	if explicit != "" {
		w, err := GetLogFileWriter(explicit)
		if err != nil {
			return "", nil, err
		}
		return explicit, w, nil
	}
	return FindWritableLogPath()
}
