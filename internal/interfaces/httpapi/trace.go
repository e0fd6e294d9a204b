package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("ringbook/internal/interfaces/httpapi")

// Only handler entry points get their own span. Middleware and helpers
// would double every trace with noise.
func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		// Filtered routes like /healthz carry no parent span. Returning
		// a no-op span keeps root spans from sprouting under them.
		return ctx, trace.SpanFromContext(context.Background())
	}

	return apiTracer.Start(ctx, name)
}
