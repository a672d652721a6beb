// pkg/interaction/menu.go

package interaction

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/password"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	ChoiceCheck    = "1"
	ChoiceGenerate = "2"
	ChoiceExit     = "3"

	PasswordPrompt = "Enter your password: "
)

// PasswordFunc obtains one password after the prompt has been decided on.
type PasswordFunc func(ctx context.Context, prompt string) (string, error)

// Menu is the interactive check/generate/exit loop.
type Menu struct {
	In     io.Reader
	Out    io.Writer
	Color  bool
	Length int

	// Generator defaults to crypto/rand when nil.
	Generator *password.Generator
	// ReadPassword replaces the plain line read for option 1, e.g. with a
	// hidden terminal prompt.
	ReadPassword PasswordFunc
}

// Run prints the banner and serves choices until Exit, end of input, or
// cancellation of ctx. Exit and end of input return nil; cancellation returns
// a user-cancelled error.
func (m *Menu) Run(ctx context.Context) error {
	log := otelzap.Ctx(ctx)
	reader := bufio.NewReader(m.In)
	p := output.NewPrinter(m.Out, m.Color)

	gen := m.Generator
	if gen == nil {
		gen = password.NewGenerator(nil)
	}
	length := m.Length
	if length == 0 {
		length = password.DefaultLength
	}
	readPassword := m.ReadPassword
	if readPassword == nil {
		readPassword = func(ctx context.Context, prompt string) (string, error) {
			return ReadPasswordLine(ctx, reader, m.Out, prompt)
		}
	}

	p.Banner()
	for {
		p.Menu()
		choice, err := ReadLine(ctx, reader, m.Out, output.MenuPrompt)
		if done, err := m.handleReadError(ctx, p, err); done {
			return err
		}

		log.Debug("Menu choice", zap.String("choice", choice))
		switch choice {
		case ChoiceCheck:
			pw, err := readPassword(ctx, PasswordPrompt)
			if pwm_err.CategoryOf(err) == pwm_err.CategoryValidation {
				p.Warning(err.Error())
				continue
			}
			if done, err := m.handleReadError(ctx, p, err); done {
				return err
			}
			res := password.Evaluate(pw)
			log.Info("Password evaluated",
				zap.String("password", crypto.Redact(pw)),
				zap.Int("score", res.Score),
				zap.String("strength", string(res.Strength)),
			)
			p.Evaluation(res)

		case ChoiceGenerate:
			pw, err := gen.Generate(length)
			if err != nil {
				return cerr.Wrap(err, "generate password")
			}
			res := password.Evaluate(pw)
			log.Info("Password generated",
				zap.Int("length", length),
				zap.String("strength", string(res.Strength)),
			)
			p.Generated(pw, &res)

		case ChoiceExit:
			p.Farewell()
			return nil

		default:
			p.InvalidChoice()
		}
	}
}

// handleReadError reports whether the loop must stop and with what error.
func (m *Menu) handleReadError(ctx context.Context, p *output.Printer, err error) (bool, error) {
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, io.EOF):
		otelzap.Ctx(ctx).Debug("End of input, leaving menu")
		p.Newline()
		p.Farewell()
		return true, nil
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		p.Newline()
		return true, pwm_err.NewUserCancelledError("interactive menu")
	default:
		return true, pwm_err.NewSystemError("failed to read input", err)
	}
}
