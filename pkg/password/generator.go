// pkg/password/generator.go

package password

import (
	"fmt"
	"io"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	cerr "github.com/cockroachdb/errors"
)

const (
	// DefaultLength is used when the caller has no preference.
	DefaultLength = 12
	// MinLength leaves room for one character of every required class.
	MinLength = 4
	// MaxLength bounds a single request.
	MaxLength = 4096
)

var (
	ErrLengthTooShort = cerr.New("password length below minimum")
	ErrLengthTooLong  = cerr.New("password length above maximum")
)

// Generator draws passwords from an entropy source. The zero value uses
// crypto/rand. A Generator holds no mutable state and is safe for concurrent use.
type Generator struct {
	src io.Reader
}

// NewGenerator returns a Generator reading entropy from src; nil means crypto/rand.
func NewGenerator(src io.Reader) *Generator {
	return &Generator{src: src}
}

// Generate returns a random password of length characters drawn with crypto/rand.
func Generate(length int) (string, error) {
	return (&Generator{}).Generate(length)
}

// ValidateLength checks a requested length without generating anything.
func ValidateLength(length int) error {
	switch {
	case length < MinLength:
		return pwm_err.NewValidationErrorWithCause(
			fmt.Sprintf("invalid password length %d", length),
			ErrLengthTooShort,
			fmt.Sprintf("Use a length of at least %d (one character per required class)", MinLength),
		)
	case length > MaxLength:
		return pwm_err.NewValidationErrorWithCause(
			fmt.Sprintf("invalid password length %d", length),
			ErrLengthTooLong,
			fmt.Sprintf("Use a length of at most %d", MaxLength),
		)
	}
	return nil
}

// Generate returns a password containing at least one uppercase letter, one
// lowercase letter, one digit and one special character. The mandatory
// characters are drawn first, the rest uniformly from AllCharacters, and the
// whole sequence is then uniformly shuffled.
func (g *Generator) Generate(length int) (string, error) {
	if err := ValidateLength(length); err != nil {
		return "", err
	}

	pw := make([]byte, 0, length)

	for _, class := range RequiredClasses() {
		c, err := crypto.RandomChar(g.src, class.Charset)
		if err != nil {
			return "", cerr.Wrapf(err, "draw %s character", class.Name)
		}
		pw = append(pw, c)
	}

	for len(pw) < length {
		c, err := crypto.RandomChar(g.src, AllCharacters)
		if err != nil {
			return "", cerr.Wrap(err, "draw fill character")
		}
		pw = append(pw, c)
	}

	if err := crypto.Shuffle(g.src, pw); err != nil {
		return "", cerr.Wrap(err, "shuffle password")
	}

	return string(pw), nil
}
