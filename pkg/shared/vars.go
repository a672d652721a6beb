// pkg/shared/vars.go

package shared

import "errors"

var ErrNotTTY = errors.New("cannot prompt: not a TTY")
