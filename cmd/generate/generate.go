// cmd/generate/generate.go
package generate

import (
	"fmt"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/config"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/password"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_cli"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	MinCount = 1
	MaxCount = 100
)

// GenerateCmd represents the 'pwmeter generate' command
var GenerateCmd = NewGenerateCmd()

// NewGenerateCmd builds a fresh generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate random passwords that satisfy every rule",
		Long: `Generate cryptographically random passwords containing at least one
uppercase letter, lowercase letter, digit and special character (!@#$%^&*).

Examples:
  pwmeter generate
  pwmeter generate -l 20 -n 5
  pwmeter generate --no-evaluate -n 3 > passwords.txt`,
		Args: cobra.NoArgs,
		RunE: pwm_cli.Wrap(runGenerate),
	}

	cmd.Flags().IntP("length", "l", 0, fmt.Sprintf("Password length, %d-%d (default from config, %d)",
		password.MinLength, password.MaxLength, password.DefaultLength))
	cmd.Flags().IntP("count", "n", 1, fmt.Sprintf("Number of passwords, %d-%d", MinCount, MaxCount))
	cmd.Flags().Bool("json", false, "Print the passwords as a JSON array")
	cmd.Flags().Bool("no-evaluate", false, "Print bare passwords without rating them")
	return cmd
}

func runGenerate(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	log := otelzap.Ctx(rc.Ctx)

	// ASSESS
	cfg := config.Active()
	length := cfg.DefaultLength
	if cmd.Flags().Changed("length") {
		length, _ = cmd.Flags().GetInt("length")
	}
	count, _ := cmd.Flags().GetInt("count")
	asJSON, _ := cmd.Flags().GetBool("json")
	noEvaluate, _ := cmd.Flags().GetBool("no-evaluate")
	asJSON = asJSON || cfg.Output == config.OutputJSON

	if err := password.ValidateLength(length); err != nil {
		return err
	}
	if count < MinCount || count > MaxCount {
		return pwm_err.NewValidationError(
			fmt.Sprintf("invalid count %d", count),
			fmt.Sprintf("Use --count between %d and %d", MinCount, MaxCount),
		)
	}
	rc.Attributes["length"] = fmt.Sprint(length)
	rc.Attributes["count"] = fmt.Sprint(count)

	// INTERVENE
	gen := password.NewGenerator(nil)
	results := make([]output.GeneratedPassword, 0, count)
	for i := 0; i < count; i++ {
		pw, err := gen.Generate(length)
		if err != nil {
			return cerr.Wrapf(err, "generate password %d of %d", i+1, count)
		}
		item := output.GeneratedPassword{Password: pw, Length: length}
		if !noEvaluate {
			res := password.Evaluate(pw)
			item.Result = &res
		}
		results = append(results, item)
	}
	log.Info("Passwords generated", zap.Int("count", count), zap.Int("length", length))

	// EVALUATE
	out := cmd.OutOrStdout()
	if asJSON {
		if err := output.JSONTo(out, results); err != nil {
			return pwm_err.NewSystemError("failed to write JSON", err)
		}
		return nil
	}

	p := output.NewPrinter(out, cfg.Color)
	for _, item := range results {
		if item.Result == nil {
			p.PasswordOnly(item.Password)
			continue
		}
		p.Generated(item.Password, item.Result)
	}
	return nil
}
