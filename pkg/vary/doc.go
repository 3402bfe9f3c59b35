// Package vary holds the shared core of the container types: variant tags,
// the Variant introspection interface consumed by the matching engine, error
// sentinels, and loose-value helpers.
//
// Highlights:
// - Tag/Variant: the discriminant and payload capability of both containers
// - ErrEmptyValue/ErrNotIterable: the shared failure sentinels
// - CoerceError: wrap an arbitrary payload as an error for re-raising
// - IsNil/IsFalsey: the loose conversion rules behind FromNonNull/FromLoose
// - GetErrors: recover individual errors from an errors.Join aggregate
// - Iterate: treat a payload as a sequence, or fail with ErrNotIterable
package vary
