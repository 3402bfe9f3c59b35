package outcome

import (
	"github.com/ib-77/vary/pkg/vary"
	"github.com/ib-77/vary/pkg/vary/opt"
)

// FromLoose classifies v with loose falsiness: a non-nil error value becomes
// Failure carrying that error, any other falsey shape (nil, zero scalars,
// NaN, zero time.Time) becomes Failure with a nil payload, everything else
// Success. The falsey coercion is an intentional convention; use Success for
// exact wrapping.
func FromLoose[T any](v T) Outcome[T] {
	if err, ok := vary.AsError(v); ok {
		return Failure[T](err)
	}
	if vary.IsFalsey(v) {
		return Failure[T](nil)
	}
	return Success(v)
}

// FromNonNull maps only nil and NaN to Failure with a nil payload.
func FromNonNull[T any](v T) Outcome[T] {
	if vary.IsNil(v) || vary.IsNaN(v) {
		return Failure[T](nil)
	}
	return Success(v)
}

// FromQuantity accepts non-negative quantities, rejecting the rest with a nil
// failure payload.
func FromQuantity(n int) Outcome[int] {
	if n < 0 {
		return Failure[int](nil)
	}
	return Success(n)
}

// FromOption converts Present to Success and Absent to Failure carrying err.
func FromOption[T any](o opt.Option[T], err error) Outcome[T] {
	if v, ok := o.Get(); ok {
		return Success(v)
	}
	return Failure[T](err)
}

// FromOptionElse is FromOption with a lazily built failure payload.
func FromOptionElse[T any](o opt.Option[T], f func() error) Outcome[T] {
	if v, ok := o.Get(); ok {
		return Success(v)
	}
	return Failure[T](f())
}

// Try invokes f and converts its returned error into Failure.
func Try[T any](f func() (T, error)) Outcome[T] {
	v, err := f()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Safe invokes f and captures a panic as Failure instead of letting it
// propagate. The panic value is coerced to an error unless mapErr is given.
func Safe[T any](f func() T, mapErr ...func(any) error) (out Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			if len(mapErr) > 0 && mapErr[0] != nil {
				out = Failure[T](mapErr[0](r))
				return
			}
			out = Failure[T](vary.CoerceError(r))
		}
	}()
	return Success(f())
}
