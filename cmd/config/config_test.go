// cmd/config/config_test.go
package config

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	pwmconfig "github.com/CodeMonkeyCybersecurity/pwmeter/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, cfg *pwmconfig.Config, args ...string) string {
	t.Helper()
	pwmconfig.SetActive(cfg)
	t.Cleanup(func() { pwmconfig.SetActive(nil) })

	cmd := NewConfigCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

// SetActive is process-wide, so these tests run sequentially.
func TestConfig_YAML(t *testing.T) {
	cfg := pwmconfig.Defaults()
	cfg.DefaultLength = 24
	out := execute(t, &cfg)

	assert.True(t, strings.HasPrefix(out, "# config file: none"), out)

	var decoded pwmconfig.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 24, decoded.DefaultLength)
	assert.Equal(t, pwmconfig.OutputText, decoded.Output)
	assert.Equal(t, "INFO", decoded.LogLevel)
	assert.True(t, decoded.Color)
	assert.NoError(t, decoded.Validate(), "printed config must load back cleanly")
}

func TestConfig_JSON(t *testing.T) {
	cfg := pwmconfig.Defaults()
	cfg.ConfigFile = "/etc/pwmeter.yaml"
	out := execute(t, &cfg, "--json")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "/etc/pwmeter.yaml", decoded["config_file"])
	assert.EqualValues(t, 12, decoded["default_length"])
	assert.Equal(t, false, decoded["telemetry"])
}

func TestConfig_OutputSettingSelectsJSON(t *testing.T) {
	cfg := pwmconfig.Defaults()
	cfg.Output = pwmconfig.OutputJSON
	out := execute(t, &cfg)
	assert.True(t, strings.HasPrefix(out, "{"), out)
}
