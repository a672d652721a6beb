// pkg/pwm_io/secure_input.go

package pwm_io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/shared"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// MaxPasswordInputLength caps a single password read from the user, in characters.
const MaxPasswordInputLength = 4096

// ValidatePasswordInput rejects input that cannot be a typed password. Empty
// input is allowed: it simply evaluates as Weak.
func ValidatePasswordInput(pw string) error {
	if n := utf8.RuneCountInString(pw); n > MaxPasswordInputLength {
		return pwm_err.NewValidationError(
			fmt.Sprintf("password input too long (%d characters, max %d)", n, MaxPasswordInputLength),
			"Pass a shorter password",
		)
	}
	if strings.ContainsRune(pw, 0) {
		return pwm_err.NewValidationError("password input contains null bytes")
	}
	return nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// PromptSecurePassword prompts on stderr and reads a password from stdin
// without echoing it. It fails with shared.ErrNotTTY when stdin is not a terminal.
func PromptSecurePassword(rc *RuntimeContext, prompt string) (string, error) {
	log := otelzap.Ctx(rc.Ctx)

	// ASSESS
	log.Debug("Assessing secure password input capability")
	if !IsTerminal(os.Stdin) {
		return "", shared.ErrNotTTY
	}

	// INTERVENE
	_, _ = fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	defer crypto.SecureZero(raw)
	_, _ = fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", pwm_err.NewSystemError("failed to read password", err)
	}
	pw := string(raw)

	// EVALUATE
	if err := ValidatePasswordInput(pw); err != nil {
		log.Warn("Invalid password input", zap.Error(err))
		return "", err
	}
	log.Debug("Read password from terminal", zap.String("password", crypto.Redact(pw)))
	return pw, nil
}

// ReadPasswordLine reads one line from r as a password. Only the line
// terminator is stripped; surrounding spaces are part of the password. A final
// line without a newline is returned as is; io.EOF is returned only when
// nothing was read.
func ReadPasswordLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if err := ValidatePasswordInput(line); err != nil {
		return "", err
	}
	return line, nil
}
