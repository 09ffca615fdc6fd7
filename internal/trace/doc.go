// Package trace records what sqlex is doing: which pass runs over which
// file and how long it takes.
//
// Включается флагами CLI:
//
//	sqlex check --trace=- --trace-level=detail ./queries
//
// Tracers: Nop (disabled), StreamTracer (text or NDJSON, written
// immediately), RingTracer (last N events in memory, dumped on failure),
// MultiTracer (fan-out).
//
// Levels: off < error < phase < detail < debug. phase shows driver and pass
// boundaries, detail adds per-file spans, debug adds everything.
//
// The tracer travels in a context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	ctx, sp := trace.StartFile(ctx, "lex", path)
//	defer sp.WithCount("tokens", n).End("")
//
// Spans begun inside a driver worker carry its slot number (WithWorker),
// so interleaved per-file events can be told apart.
package trace
