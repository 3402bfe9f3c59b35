package opt

import "github.com/ib-77/vary/pkg/vary"

// FromLoose classifies v with loose falsiness: nil, zero scalars, NaN, the
// zero time.Time and non-nil error values become Absent, everything else
// Present. Zero and empty-string are legitimate domain values in many callers;
// this coercion is an intentional convention, use Present for exact wrapping.
func FromLoose[T any](v T) Option[T] {
	if _, ok := vary.AsError(v); ok {
		return Absent[T]()
	}
	if vary.IsFalsey(v) {
		return Absent[T]()
	}
	return Present(v)
}

// FromNonNull maps only nil and NaN to Absent.
func FromNonNull[T any](v T) Option[T] {
	if vary.IsNil(v) || vary.IsNaN(v) {
		return Absent[T]()
	}
	return Present(v)
}

// FromPtr dereferences p, treating nil as Absent.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// FromOk lifts Go's comma-ok shape (map lookups, type assertions).
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return Absent[T]()
	}
	return Present(v)
}
