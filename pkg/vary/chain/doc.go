// Package chain provides a fluent wrapper around outcome.Outcome[T]
// for building synchronous success-or-failure pipelines.
//
// It composes the container combinators behind a convenient Chain[T] type,
// threading one context to every step's callback. This enables ergonomic
// pipelines without dealing directly with branching outcomes at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from an outcome or value
// - Then: switch to a new Outcome[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the success value (T -> U)
// - Ensure: run side effects on success without changing the outcome
// - Validate: accumulate validator errors into one joined failure
// - Recover: replace a failure using its payload
// - Finally: collapse the chain into a final value via handlers
package chain
