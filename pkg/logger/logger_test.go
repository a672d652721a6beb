package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]zapcore.Level{
		"TRACE":   zapcore.DebugLevel,
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"ERROR":   zapcore.ErrorLevel,
		"FATAL":   zapcore.FatalLevel,
		"DPANIC":  zapcore.DPanicLevel,
		"":        zapcore.InfoLevel,
		"INFO":    zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), "input %q", in)
	}
}

// Initialize swaps process globals, so these tests do not run in parallel.
func TestInitializeWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "pwmeter.log")

	l := Initialize(Options{Level: "DEBUG", FilePath: path})
	t.Cleanup(InitFallback)

	l.Info("evaluation finished", zap.Int("score", 5))
	require.NoError(t, Sync())

	assert.Equal(t, path, LogPath())
	assert.Same(t, l, zap.L())

	lines, err := TailLogFile(path, 10)
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	last := lines[len(lines)-1]
	assert.Contains(t, last, `"M":"evaluation finished"`)
	assert.Contains(t, last, `"score":5`)
	assert.Contains(t, last, `"L":"INFO"`)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestInitializeConsoleOnly(t *testing.T) {
	l := Initialize(Options{DisableFile: true})
	t.Cleanup(InitFallback)

	assert.NotNil(t, l)
	assert.Empty(t, LogPath())
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel), "console defaults to WARN")
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestInitializeUnwritablePathFallsBack(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// A path below a regular file can never be created.
	l := Initialize(Options{FilePath: filepath.Join(blocker, "sub", "pwmeter.log")})
	t.Cleanup(InitFallback)

	assert.NotNil(t, l)
	assert.Empty(t, LogPath())
}

func TestTailLogFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "pwmeter.log")
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString("line")
		sb.WriteByte(byte('a' + i))
		sb.WriteByte('\n')
	}
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))

	lines, err := TailLogFile(path, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"liner", "lines", "linet"}, lines)

	lines, err = TailLogFile(path, 0)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = TailLogFile(filepath.Join(t.TempDir(), "missing.log"), 3)
	assert.Error(t, err)

	_, err = TailLogFile(t.TempDir(), 3)
	assert.Error(t, err)
}

func TestColorizeLogLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "not json", ColorizeLogLine("not json"))
	assert.Equal(t, `{"M":"x"}`, ColorizeLogLine(`{"M":"x"}`))

	warn := ColorizeLogLine(`{"L":"WARN","M":"x"}`)
	assert.True(t, strings.HasPrefix(warn, "\033[33m"))
	assert.True(t, strings.HasSuffix(warn, "\033[0m"))

	errLine := ColorizeLogLine(`{"L":"ERROR","M":"x"}`)
	assert.True(t, strings.HasPrefix(errLine, "\033[31m"))
}
