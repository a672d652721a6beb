// cmd/check/check.go
package check

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/config"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/password"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_cli"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_io"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// CheckCmd represents the 'pwmeter check' command
var CheckCmd = NewCheckCmd()

// NewCheckCmd builds a fresh check command; tests use it to avoid shared flag state.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Evaluate the strength of a password",
		Long: `Score a password against the built-in rules and print its rating,
status and improvement suggestions.

The password is taken from the argument, else from the first line of standard
input with --stdin or when input is piped, else from a hidden terminal prompt.
Arguments end up in shell history; prefer the prompt or --stdin.

Examples:
  pwmeter check
  printf '%s\n' "$PW" | pwmeter check --stdin --json
  pwmeter check --min-strength strong --verbose`,
		Args: cobra.MaximumNArgs(1),
		RunE: pwm_cli.Wrap(runCheck),
	}

	cmd.Flags().Bool("stdin", false, "Read the password from the first line of standard input")
	cmd.Flags().Bool("json", false, "Print the evaluation as JSON")
	cmd.Flags().BoolP("verbose", "v", false, "Show the per-check breakdown and score")
	cmd.Flags().String("min-strength", "", "Exit with status 2 when the rating is below weak|moderate|strong")
	return cmd
}

func runCheck(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	log := otelzap.Ctx(rc.Ctx)

	// ASSESS
	useStdin, _ := cmd.Flags().GetBool("stdin")
	asJSON, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")
	minFlag, _ := cmd.Flags().GetString("min-strength")
	cfg := config.Active()
	asJSON = asJSON || cfg.Output == config.OutputJSON

	var minStrength password.Strength
	if minFlag != "" {
		s, err := password.ParseStrength(minFlag)
		if err != nil {
			return pwm_err.NewValidationErrorWithCause("invalid --min-strength", err,
				"Use one of: weak, moderate, strong")
		}
		minStrength = s
	}

	pw, source, err := readPassword(rc, cmd, args, useStdin)
	if err != nil {
		return err
	}
	log.Debug("Password obtained", zap.String("source", source), zap.String("password", crypto.Redact(pw)))

	// INTERVENE
	res := password.Evaluate(pw)
	rc.Attributes["strength"] = string(res.Strength)
	log.Info("Password evaluated",
		zap.Int("score", res.Score),
		zap.String("strength", string(res.Strength)),
		zap.Int("suggestions", len(res.Feedback)),
	)

	// EVALUATE
	out := cmd.OutOrStdout()
	if asJSON {
		if err := output.JSONTo(out, res); err != nil {
			return pwm_err.NewSystemError("failed to write JSON", err)
		}
	} else {
		p := output.NewPrinter(out, cfg.Color)
		p.Evaluation(res)
		if verbose {
			if err := p.Checks(res); err != nil {
				return pwm_err.NewSystemError("failed to write checks", err)
			}
		}
	}

	if minStrength != "" && !res.Strength.AtLeast(minStrength) {
		return pwm_err.NewValidationError(
			fmt.Sprintf("password rated %s, below required %s", res.Strength, minStrength),
			"Follow the improvement suggestions above",
		)
	}
	return nil
}

func readPassword(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string, useStdin bool) (string, string, error) {
	if len(args) == 1 {
		if err := pwm_io.ValidatePasswordInput(args[0]); err != nil {
			return "", "", pwm_err.WrapValidationError(err)
		}
		otelzap.Ctx(rc.Ctx).Warn("Password passed as an argument may be recorded in shell history")
		return args[0], "argument", nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && f == os.Stdin && !useStdin && pwm_io.IsTerminal(f) {
		pw, err := pwm_io.PromptSecurePassword(rc, interaction.PasswordPrompt)
		return pw, "prompt", err
	}

	pw, err := pwm_io.ReadPasswordLine(bufio.NewReader(in))
	if errors.Is(err, io.EOF) {
		return "", "", pwm_err.NewValidationError("no password on standard input",
			"Pipe the password followed by a newline, or pass it as an argument")
	}
	if err != nil && pwm_err.CategoryOf(err) != pwm_err.CategoryValidation {
		return "", "", pwm_err.NewSystemError("failed to read standard input", err)
	}
	return pw, "stdin", err
}
