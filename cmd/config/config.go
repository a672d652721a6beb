// cmd/config/config.go

package config

import (
	"fmt"

	pwmconfig "github.com/CodeMonkeyCybersecurity/pwmeter/pkg/config"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_cli"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_io"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/xdg"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ConfigCmd represents the 'pwmeter config' command
var ConfigCmd = NewConfigCmd()

// NewConfigCmd builds a fresh config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration pwmeter is running with after merging defaults,
pwmeter.yaml, .env, PWMETER_* environment variables and flags.

The YAML output can be saved as a starting pwmeter.yaml:
  pwmeter config > ~/.config/pwmeter/pwmeter.yaml`,
		Args: cobra.NoArgs,
		RunE: pwm_cli.Wrap(runConfig),
	}
	cmd.Flags().Bool("json", false, "Print the configuration as JSON")
	return cmd
}

func runConfig(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	cfg := pwmconfig.Active()
	asJSON, _ := cmd.Flags().GetBool("json")
	asJSON = asJSON || cfg.Output == pwmconfig.OutputJSON

	otelzap.Ctx(rc.Ctx).Debug("Printing effective configuration",
		zap.String("config_file", cfg.ConfigFile),
		zap.Bool("json", asJSON),
	)

	out := cmd.OutOrStdout()
	if asJSON {
		if err := output.JSONTo(out, cfg); err != nil {
			return pwm_err.NewSystemError("failed to write JSON", err)
		}
		return nil
	}

	source := cfg.ConfigFile
	if source == "" {
		source = "none (expected at " + xdg.XDGConfigPath(shared.AppName, shared.ConfigFileName) + ")"
	}
	if _, err := fmt.Fprintf(out, "# config file: %s\n", source); err != nil {
		return err
	}
	if err := output.YAMLTo(out, cfg); err != nil {
		return pwm_err.NewSystemError("failed to write YAML", err)
	}
	return nil
}
