// cmd/menu/menu_test.go
package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/config"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuCommand_Session(t *testing.T) {
	cmd := NewMenuCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("1\nStr0ng!Pass\n2\n7\n3\n"))
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())

	s := out.String()
	assert.Contains(t, s, output.Title)
	assert.Contains(t, s, "Strength: Strong 💪")
	assert.Contains(t, s, "🎲 Generated Strong Password: ")
	assert.Contains(t, s, output.InvalidInput)
	assert.True(t, strings.HasSuffix(s, output.Farewell+"\n"))
}

func TestMenuCommand_UsesConfiguredLength(t *testing.T) {
	cfg := config.Defaults()
	cfg.DefaultLength = 30
	cfg.Color = false
	config.SetActive(&cfg)
	t.Cleanup(func() { config.SetActive(nil) })

	cmd := NewMenuCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("2\n"))
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	_, rest, ok := strings.Cut(out.String(), "Generated Strong Password: ")
	require.True(t, ok)
	pw, _, _ := strings.Cut(rest, "\n")
	assert.Len(t, pw, 30)
}
