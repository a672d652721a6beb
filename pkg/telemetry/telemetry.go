// pkg/telemetry/telemetry.go
package telemetry

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	mu       sync.RWMutex
	tracer   trace.Tracer = noop.NewTracerProvider().Tracer(shared.AppName)
	provider *sdktrace.TracerProvider
	sink     io.Closer
	filePath string
)

// Init configures OpenTelemetry; call this early in main(). When enabled is
// false a no-op provider is installed and nothing is written.
func Init(service string, enabled bool) error {
	if !enabled {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		mu.Lock()
		tracer = tp.Tracer(service)
		filePath = ""
		mu.Unlock()
		return nil
	}
	return InitFile(service, xdg.XDGStatePath(shared.AppName, shared.TelemetryFileName))
}

// InitFile exports spans as JSON lines appended to path.
func InitFile(service, path string) error {
	if err := xdg.EnsureDir(path); err != nil {
		return cerr.Wrap(err, "failed to create telemetry directory")
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, xdg.FilePermOwnerReadWrite)
	if err != nil {
		return cerr.Wrap(err, "failed to open telemetry file")
	}

	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		_ = file.Close()
		return cerr.Wrap(err, "failed to create file exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(
			sdkresource.NewWithAttributes(
				semconv.SchemaURL,
				semconv.ServiceName(service),
				semconv.ServiceVersion(shared.Version),
				attribute.String("host.name", hostname()),
			),
		),
	)

	otel.SetTracerProvider(tp)
	mu.Lock()
	tracer = tp.Tracer(service)
	provider = tp
	sink = file
	filePath = path
	mu.Unlock()
	return nil
}

// Shutdown flushes pending spans and closes the telemetry file. It is a no-op
// when telemetry was never enabled.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	tp, f := provider, sink
	provider, sink = nil, nil
	mu.Unlock()

	if tp == nil {
		return nil
	}
	err := tp.Shutdown(ctx)
	if f != nil {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if err != nil {
		return cerr.Wrap(err, "shutdown telemetry")
	}
	return nil
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	mu.RLock()
	t := tracer
	mu.RUnlock()
	return t.Start(ctx, name, trace.WithAttributes(attrs...))
}

// FilePath is the span file in use, or "" when telemetry is off.
func FilePath() string {
	mu.RLock()
	defer mu.RUnlock()
	return filePath
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
