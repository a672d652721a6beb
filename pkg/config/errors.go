// pkg/config/errors.go

package config

import "fmt"

// FieldError names one config key that failed validation.
type FieldError struct {
	Key   string
	Rule  string
	Value any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: value %v violates %s", e.Key, e.Value, e.Rule)
}
