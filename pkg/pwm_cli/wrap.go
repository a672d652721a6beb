// pkg/pwm_cli/wrap.go

package pwm_cli

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RunFunc is the signature of every pwmeter command body.
type RunFunc func(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error

// Wrap adapts fn to cobra's RunE with signal-driven cancellation, panic
// recovery, a per-run RuntimeContext, and stack capture on unexpected errors.
func Wrap(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		sig := pwm_io.NewSignalHandler(parent)
		defer sig.Stop()

		rc := pwm_io.NewContext(sig.Context(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		// Arguments may be passwords; only their count is logged.
		rc.Log.Debug("Entering wrapped command function", zap.Int("args", len(args)))

		err = fn(rc, cmd, args)
		if err != nil && !pwm_err.IsExpectedUserError(err) && pwm_err.CategoryOf(err) == pwm_err.CategorySystem {
			err = cerr.WithStack(err)
		}
		return err
	}
}
