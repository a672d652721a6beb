// cmd/menu/menu.go
package menu

import (
	"context"
	"os"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/config"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_cli"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_io"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// MenuCmd represents the 'pwmeter menu' command
var MenuCmd = NewMenuCmd()

// NewMenuCmd builds a fresh menu command.
func NewMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive password strength menu",
		Long: `Start the interactive menu: check a password, generate a strong one, or exit.
This is also what running pwmeter without a subcommand does.`,
		Args: cobra.NoArgs,
		RunE: pwm_cli.Wrap(Run),
	}
}

// Run serves the interactive menu on the command's input and output streams.
func Run(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	cfg := config.Active()
	m := &interaction.Menu{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Color:  cfg.Color,
		Length: cfg.DefaultLength,
	}

	if f, ok := m.In.(*os.File); ok && f == os.Stdin && pwm_io.IsTerminal(f) {
		m.ReadPassword = func(ctx context.Context, prompt string) (string, error) {
			return pwm_io.PromptSecurePassword(rc, prompt)
		}
	}

	otelzap.Ctx(rc.Ctx).Debug("Starting interactive menu",
		zap.Int("default_length", m.Length),
		zap.Bool("hidden_input", m.ReadPassword != nil),
	)
	return m.Run(rc.Ctx)
}
