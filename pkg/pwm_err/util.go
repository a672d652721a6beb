// pkg/pwm_err/util.go

package pwm_err

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// UserError marks an error as expected and recoverable by the user.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

// PrintError writes a human-readable error message to w and logs it.
// Expected user errors are reported as notices at warn level.
func PrintError(w io.Writer, log *zap.Logger, userMessage string, err error) {
	if err == nil {
		return
	}
	if log == nil {
		log = zap.NewNop()
	}

	if IsExpectedUserError(err) {
		log.Warn(userMessage, zap.Error(err))
		_, _ = fmt.Fprintf(w, "Notice: %s: %v\n", userMessage, err)
		return
	}

	log.Error(userMessage, zap.Error(err), zap.String("category", CategoryOf(err).String()))
	_, _ = fmt.Fprintf(w, "Error: %s: %v\n", userMessage, err)
}
