// Package opt implements the optional container: a value of type T or
// nothing, with total and throwing extraction and the full synchronous
// combinator surface.
//
// Key operations:
// - Present/Absent: construct; FromLoose/FromNonNull/FromPtr/FromOk: convert
// - Filter/Map/AndThen/And/Or/OrElse: transform and combine
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse/Get: extract
// - Inspect: observe the value without changing the container
// - All/Any: aggregate several options
// - Map/AndThen/Flatten (package level): type-changing transforms
package opt
