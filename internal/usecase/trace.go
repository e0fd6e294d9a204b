package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("ringbook/internal/usecase")

// startUsecaseSpan opens a child span under the request's server span.
// Without a valid parent, as in tests and health checks, it hands back
// a no-op span so callers can defer End unconditionally.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if parent := trace.SpanFromContext(ctx); name == "" || !parent.SpanContext().IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}

	return usecaseTracer.Start(ctx, name)
}
