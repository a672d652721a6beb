// cmd/logs/logs_test.go
package logs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewLogsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pwmeter.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func TestLogs_Tail(t *testing.T) {
	t.Parallel()
	path := writeLog(t,
		`{"L":"INFO","M":"one"}`,
		`{"L":"WARN","M":"two"}`,
		`{"L":"ERROR","M":"three"}`,
	)

	out, err := execute(t, "--file", path, "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, `{"L":"WARN","M":"two"}`+"\n"+`{"L":"ERROR","M":"three"}`+"\n", out,
		"no colour codes when not writing to a terminal")
}

func TestLogs_Path(t *testing.T) {
	t.Parallel()
	path := writeLog(t, "x")
	out, err := execute(t, "--file", path, "--path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestLogs_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := execute(t, "--file", filepath.Join(t.TempDir(), "nope.log"))
	require.Error(t, err)
	assert.Equal(t, 1, pwm_err.GetExitCode(err))
}

func TestLogs_InvalidLineCount(t *testing.T) {
	t.Parallel()
	_, err := execute(t, "--file", writeLog(t, "x"), "-n", "0")
	require.Error(t, err)
	assert.Equal(t, 2, pwm_err.GetExitCode(err))
}

func TestLogs_FollowStopsOnCancel(t *testing.T) {
	t.Parallel()
	path := writeLog(t, `{"L":"INFO","M":"one"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewLogsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"--file", path, "--follow"})

	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Equal(t, `{"L":"INFO","M":"one"}`+"\n", out.String())
}
