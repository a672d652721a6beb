// pkg/interaction/reader.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type lineResult struct {
	text string
	err  error
}

// readCtx runs read in a goroutine so a cancelled ctx unblocks the caller.
// The abandoned read finishes on its own once input arrives or stdin closes.
func readCtx(ctx context.Context, read func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ch := make(chan lineResult, 1)
	go func() {
		text, err := read()
		ch <- lineResult{text: text, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.text, res.err
	}
}

// ReadLine writes label to w and returns a trimmed line of input.
func ReadLine(ctx context.Context, reader *bufio.Reader, w io.Writer, label string) (string, error) {
	logger := otelzap.Ctx(ctx)
	logger.Debug("Prompting user for input", zap.String("label", label))

	_, _ = fmt.Fprint(w, label)

	text, err := readCtx(ctx, func() (string, error) {
		line, err := reader.ReadString('\n')
		if err == io.EOF && line != "" {
			return line, nil
		}
		return line, err
	})
	if err != nil {
		return "", err
	}

	value := strings.TrimSpace(text)
	logger.Debug("User input received", zap.String("value", value))
	return value, nil
}

// ReadPasswordLine writes label to w and reads a password line, keeping
// surrounding whitespace.
func ReadPasswordLine(ctx context.Context, reader *bufio.Reader, w io.Writer, label string) (string, error) {
	_, _ = fmt.Fprint(w, label)
	return readCtx(ctx, func() (string, error) {
		return pwm_io.ReadPasswordLine(reader)
	})
}
