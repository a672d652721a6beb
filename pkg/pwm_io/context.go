// pkg/pwm_io/context.go

package pwm_io

import (
	"context"
	"runtime"
	"time"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RuntimeContext carries everything a command needs for one invocation.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Timestamp  time.Time
	Span       trace.Span
	Command    string
	RunID      string
	Attributes map[string]string
}

// NewContext starts a span for cmdName and scopes a logger to this run.
func NewContext(parent context.Context, cmdName string) *RuntimeContext {
	if parent == nil {
		parent = context.Background()
	}
	ctx, span := telemetry.Start(parent, cmdName, attribute.String("command", cmdName))

	runID := uuid.New().String()
	log := logger.L().With(
		zap.String("command", cmdName),
		zap.String("run_id", runID),
	)
	if sc := span.SpanContext(); sc.IsValid() {
		log = log.With(zap.String("trace_id", sc.TraceID().String()))
	}

	return &RuntimeContext{
		Ctx:        ctx,
		Log:        log,
		Timestamp:  time.Now(),
		Span:       span,
		Command:    cmdName,
		RunID:      runID,
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// End logs the outcome, annotates and closes the span, and flushes the logger.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	var err error
	if errPtr != nil {
		err = *errPtr
	}
	duration := time.Since(rc.Timestamp)

	switch {
	case err == nil:
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
	case pwm_err.IsExpectedUserError(err) || pwm_err.CategoryOf(err) == pwm_err.CategoryUser:
		rc.Log.Warn("Command ended", zap.Duration("duration", duration), zap.Error(err))
	default:
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(err))
	}

	attrs := []attribute.KeyValue{
		attribute.Bool("success", err == nil),
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("os", runtime.GOOS),
		attribute.String("version", shared.Version),
		attribute.String("run_id", rc.RunID),
	}
	for k, v := range rc.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}
	if err != nil {
		attrs = append(attrs,
			attribute.String("error_type", pwm_err.CategoryOf(err).String()),
			attribute.Int("exit_code", pwm_err.GetExitCode(err)),
		)
		rc.Span.SetStatus(codes.Error, err.Error())
	}
	rc.Span.SetAttributes(attrs...)

	_ = logger.Sync()
}
