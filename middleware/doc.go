// Package middleware provides composable middleware for instrumenting
// job execution.
//
// A [Middleware] is a function that wraps a job handler. Middleware are
// composed into a chain using [Chain] and applied around each job
// execution. They are applied right-to-left: the first middleware in
// the slice is the outermost wrapper.
//
//	// logging → recover → instrument → handler
//	chain := middleware.Chain(
//	    middleware.Logging(logger),
//	    middleware.Recover(logger),
//	    middleware.Instrument(hooks),
//	)
//
// # Built-in Middleware
//
//   - [Instrument] — emits perform_start and perform lifecycle events
//     around each execution, feeding subscribed metric listeners
//   - [Logging] — logs job name, queue, duration, and outcome
//   - [Recover] — catches panics and converts them to errors
//   - [Tracing] — wraps execution in an OpenTelemetry span
//
// Middleware MUST call next to continue the chain unless intentionally
// short-circuiting.
package middleware
