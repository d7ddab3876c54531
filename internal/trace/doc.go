// Package trace records the phases of a cedar run: reading files, lexing,
// parsing, rendering and per-file work in directory checks.
//
// Enable tracing via command-line flags:
//
//	cedar check --trace=- --trace-level=phase schema.cedar
//
// Levels: off, error, phase (driver and pass spans), detail (per-file spans),
// debug (everything). Events go to a StreamTracer as text or NDJSON.
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
//
// The lexer, parser and document renderer never trace; only the driver does.
package trace
