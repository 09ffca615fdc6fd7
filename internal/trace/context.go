package trace

import "context"

type (
	tracerKey struct{}
	spanKey   struct{}
	workerKey struct{}
)

// FromContext returns the tracer stored in ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// SpanFromContext returns the ID of the enclosing span, 0 at the root.
func SpanFromContext(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(spanKey{}).(uint64)
	return id
}

// WithSpan makes sp the parent of spans begun from the returned context.
func WithSpan(ctx context.Context, sp *Span) context.Context {
	if sp == nil || sp.id == 0 {
		return ctx
	}
	return context.WithValue(ctx, spanKey{}, sp.id)
}

// WithWorker tags spans begun from ctx with a pool slot number (1-based).
func WithWorker(ctx context.Context, worker int) context.Context {
	return context.WithValue(ctx, workerKey{}, worker)
}

// WorkerFromContext returns the pool slot, 0 outside a worker.
func WorkerFromContext(ctx context.Context) int {
	if ctx == nil {
		return 0
	}
	w, _ := ctx.Value(workerKey{}).(int)
	return w
}

// Start begins a span under the tracer and parent span found in ctx and
// returns a context carrying the new span.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	sp := begin(FromContext(ctx), scope, name, "", SpanFromContext(ctx), WorkerFromContext(ctx))
	return WithSpan(ctx, sp), sp
}

// StartFile begins a ScopeFile span for one pass over path.
func StartFile(ctx context.Context, pass, path string) (context.Context, *Span) {
	sp := begin(FromContext(ctx), ScopeFile, pass, path, SpanFromContext(ctx), WorkerFromContext(ctx))
	return WithSpan(ctx, sp), sp
}
