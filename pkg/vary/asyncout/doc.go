// Package asyncout is the deferred counterpart of package outcome, mirroring
// the relationship between asyncopt and opt: one single-settlement
// computation of a sync container, the full combinator surface duplicated in
// sync and *Async forms, plus the cross-family conversions (Ok, Filter,
// FromOption) to the deferred optional.
//
// Key operations:
// - Wrap/Success/Failure/New/Safe: construct (Safe converts rejection to Failure)
// - Map/MapErr/And/AndThen/Or/OrElse and their *Async forms
// - Ok/Filter/FromOption: cross to the deferred optional container
// - Await/Unwrap/UnwrapErr/Expect/UnwrapOr: settle and extract
package asyncout
