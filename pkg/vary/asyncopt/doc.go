// Package asyncopt is the deferred counterpart of package opt: each Option
// wraps a single-settlement computation of a sync container and re-exposes
// the combinator surface. Non-suffixed combinators compose with already-sync
// inputs without an extra suspension point; the *Async forms take suspending
// callbacks or deferred alternatives.
//
// Key operations:
// - Wrap/Present/Absent/New/Safe: construct (Safe converts rejection to Absent)
// - Filter/Map/And/AndThen/Or/OrElse and their *Async forms
// - Await/Unwrap/UnwrapOr/Expect: settle and extract
package asyncopt
