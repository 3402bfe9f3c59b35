// Package future provides the single-settlement deferred cell the async
// container surfaces are built on: one computation, one settlement, broadcast
// to every awaiter and derived cell.
//
// Key operations:
// - Go/Resolve: create a cell from a computation or a settled value
// - Then: derive a new cell from another's eventual value
// - Await: block for the value, honoring the caller's context
package future
