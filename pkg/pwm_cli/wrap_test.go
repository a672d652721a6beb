// pkg/pwm_cli/wrap_test.go

package pwm_cli

import (
	"context"
	"errors"
	"testing"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	sentinel := errors.New("command failed")

	tests := []struct {
		name      string
		fn        RunFunc
		wantErr   bool
		errorMsg  string
		wantIs    error
		wantCode  int
		wantStack bool
	}{
		{
			name: "success gets a runtime context",
			fn: func(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				assert.NotNil(t, rc)
				assert.NotNil(t, rc.Ctx)
				assert.NotNil(t, rc.Log)
				assert.Equal(t, "test-cmd", rc.Command)
				assert.Equal(t, []string{"arg1"}, args)
				return nil
			},
		},
		{
			name: "plain error gains a stack",
			fn: func(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				return sentinel
			},
			wantErr:   true,
			errorMsg:  "command failed",
			wantIs:    sentinel,
			wantCode:  1,
			wantStack: true,
		},
		{
			name: "validation error passes through",
			fn: func(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				return pwm_err.NewValidationError("bad length")
			},
			wantErr:  true,
			errorMsg: "bad length",
			wantCode: 2,
		},
		{
			name: "panic recovery",
			fn: func(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				panic("test panic")
			},
			wantErr:  true,
			errorMsg: "panic: test panic",
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test-cmd"}
			cmd.SetContext(context.Background())

			err := Wrap(tt.fn)(cmd, []string{"arg1"})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
			assert.Equal(t, tt.wantCode, pwm_err.GetExitCode(err))
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantStack {
				assert.NotNil(t, cerr.GetReportableStackTrace(err))
			}
		})
	}
}

func TestWrapCancelledParent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := &cobra.Command{Use: "menu"}
	cmd.SetContext(ctx)

	err := Wrap(func(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		<-rc.Ctx.Done()
		return pwm_err.NewUserCancelledError("menu")
	})(cmd, nil)

	require.Error(t, err)
	assert.Equal(t, 130, pwm_err.GetExitCode(err))
}

func TestWrapNilContext(t *testing.T) {
	cmd := &cobra.Command{Use: "version"}
	err := Wrap(func(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		return rc.Ctx.Err()
	})(cmd, nil)
	assert.NoError(t, err)
}
