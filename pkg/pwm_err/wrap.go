// pkg/pwm_err/wrap.go

package pwm_err

import (
	cerr "github.com/cockroachdb/errors"
)

func WrapValidationError(err error) error {
	return cerr.WithHint(cerr.WithStack(err), "validation failed")
}

func WrapConfigError(err error) error {
	return cerr.WithHint(cerr.WithStack(err), "check pwmeter.yaml and PWMETER_* environment variables")
}
