// pkg/crypto/redact.go

package crypto

import (
	"fmt"
	"unicode/utf8"
)

// Redact returns a log-safe placeholder for a secret. Only the character
// count survives.
func Redact(secret string) string {
	if secret == "" {
		return "(empty)"
	}
	return fmt.Sprintf("[redacted:%d chars]", utf8.RuneCountInString(secret))
}

// SecureZero overwrites a byte slice to reduce the chance of sensitive data lingering in memory.
func SecureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
