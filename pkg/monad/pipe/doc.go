// Package pipe lifts result values over channels for concurrent pipelines.
//
// Common usage:
// - Emit/EmitResults: feed values into a pipeline
// - Through/Run: drive a stage with a fixed number of worker lines
// - Map/Bind/Try/Validate/Tap: lift synchronous combinators into stages
// - Collect: fold a channel fail-fast into one result (the asynchronous
//   counterpart of result.Sequence)
// - Drain/Finally: consume a pipeline into results or plain values
//
// Cancellation is cooperative: every send and receive races ctx.Done, and
// a cancelled pipeline closes its channels without flushing what remains.
package pipe
