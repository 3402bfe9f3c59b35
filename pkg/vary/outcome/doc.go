// Package outcome implements the success-or-failure container with the full
// synchronous combinator surface. The failure side is Go's error interface;
// each instance carries an identity and creation time.
//
// Key operations:
// - Success/Failure: construct; FromLoose/FromNonNull/FromQuantity/Try/Safe: convert
// - Map/MapErr/AndThen/And/Or/OrElse: transform and combine
// - Unwrap/UnwrapErr/Expect/ExpectErr/UnwrapOr/Get: extract
// - Ok/Filter: convert to the optional container
// - Inspect/InspectErr: observe either side without changing the container
// - All/Any: aggregate several outcomes
package outcome
