package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func appendLine(t *testing.T, path, line string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString(line + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestFollowLogFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pwmeter.log")
	appendLine(t, path, `{"L":"INFO","M":"before"}`)

	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- FollowLogFile(ctx, path, &out, strings.ToUpper)
	}()

	// The watcher may not be registered yet, so keep appending until a line shows up.
	assert.Eventually(t, func() bool {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
			_, _ = f.WriteString(`{"L":"WARN","M":"after"}` + "\n")
			_ = f.Close()
		}
		return strings.Contains(out.String(), `"M":"AFTER"`)
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("follow did not stop after cancel")
	}

	assert.NotContains(t, out.String(), "BEFORE", "existing lines are not replayed")
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		assert.Equal(t, `{"L":"WARN","M":"AFTER"}`, line)
	}
}

func TestFollowLogFile_MissingDirectory(t *testing.T) {
	t.Parallel()
	err := FollowLogFile(context.Background(), filepath.Join(t.TempDir(), "nope", "pwmeter.log"), &bytes.Buffer{}, nil)
	assert.Error(t, err)
}

func TestCopyNewLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pwmeter.log")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\npart"), 0o600))

	var out bytes.Buffer
	var pos int64
	require.NoError(t, copyNewLines(path, &pos, &out, nil))
	assert.Equal(t, "one\ntwo\n", out.String())
	assert.Equal(t, int64(len("one\ntwo\n")), pos, "partial line is not consumed")

	out.Reset()
	require.NoError(t, os.WriteFile(path, []byte("new\n"), 0o600))
	require.NoError(t, copyNewLines(path, &pos, &out, nil))
	assert.Equal(t, "new\n", out.String(), "truncation restarts from the beginning")

	out.Reset()
	pos = 0
	require.NoError(t, copyNewLines(filepath.Join(t.TempDir(), "missing.log"), &pos, &out, nil))
	assert.Empty(t, out.String())
}
