// Package match dispatches structurally on container variants and plain
// values. A branch specification is plain data walked by one recursive
// matcher: the chained form (Cases) is an ordered list of pattern/result
// pairs, the mapped form (Branches) is keyed by variant tag with a "_"
// fallback resolved at the nearest enclosing level that declares one.
//
// Patterns are the wildcard Any, literals (deep equality; slices and maps
// match partially), predicates, containers carrying nested patterns, and
// Fn wrapped-function markers matched by identity without invocation.
//
// Key operations:
// - Match/MustMatch: dispatch a subject against a specification
// - Compile/MustCompile: pre-validate a specification into a reusable Matcher
// - Matches: the bare structural pattern test
// - ErrExhausted: no branch, pattern, or default applied
package match
