// pkg/pwm_io/signals.go
//
// Interrupt handling: the first SIGINT/SIGTERM cancels the command context so
// blocking reads return, a second one exits immediately.

package pwm_io

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// SignalHandler cancels a context on interrupt.
type SignalHandler struct {
	ctx     context.Context
	cancel  context.CancelFunc
	sigChan chan os.Signal
	done    chan struct{}
	once    sync.Once
}

// NewSignalHandler derives a cancellable context from ctx and starts watching signals.
func NewSignalHandler(ctx context.Context) *SignalHandler {
	ctx, cancel := context.WithCancel(ctx)
	h := &SignalHandler{
		ctx:     ctx,
		cancel:  cancel,
		sigChan: make(chan os.Signal, 2),
		done:    make(chan struct{}),
	}
	signal.Notify(h.sigChan, os.Interrupt, syscall.SIGTERM)
	go h.handleSignals()
	return h
}

// Context is cancelled on the first signal or on Stop.
func (h *SignalHandler) Context() context.Context {
	return h.ctx
}

func (h *SignalHandler) handleSignals() {
	select {
	case sig := <-h.sigChan:
		otelzap.Ctx(h.ctx).Info("Received signal, cancelling", zap.String("signal", sig.String()))
		h.cancel()
	case <-h.done:
		return
	}

	select {
	case <-h.sigChan:
		_, _ = fmt.Fprintln(os.Stderr, "\nReceived second interrupt, forcing exit")
		os.Exit(130)
	case <-h.done:
	}
}

// Stop releases the signal subscription and cancels the context.
func (h *SignalHandler) Stop() {
	h.once.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}
