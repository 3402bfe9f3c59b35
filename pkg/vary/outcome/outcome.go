package outcome

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/vary/pkg/vary"
	"github.com/ib-77/vary/pkg/vary/opt"
)

// Outcome holds either a success value of type T or a failure error. Both
// variants are ordinary instances; each carries an identity and creation time.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

// Success wraps a success value.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps a failure payload. A nil err is a legal payload (loose
// conversions produce it); IsErr still reports true.
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Tag implements vary.Variant.
func (o Outcome[T]) Tag() vary.Tag {
	if o.ok {
		return vary.TagSuccess
	}
	return vary.TagFailure
}

// Payload implements vary.Variant. Failure's payload is its error.
func (o Outcome[T]) Payload() (any, bool) {
	if o.ok {
		return o.value, true
	}
	return o.err, true
}

func (o Outcome[T]) IsOk() bool {
	return o.ok
}

func (o Outcome[T]) IsErr() bool {
	return !o.ok
}

// IsOkAnd reports whether o is Success and its value satisfies pred.
func (o Outcome[T]) IsOkAnd(pred func(T) bool) bool {
	return o.ok && pred(o.value)
}

// IsErrAnd reports whether o is Failure and its error satisfies pred.
func (o Outcome[T]) IsErrAnd(pred func(error) bool) bool {
	return !o.ok && pred(o.err)
}

// Filter converts to the optional container: a Success value passing pred
// becomes Present, everything else Absent. This is a cross-type conversion,
// the failure payload does not survive it.
func (o Outcome[T]) Filter(pred func(T) bool) opt.Option[T] {
	if o.ok && pred(o.value) {
		return opt.Present(o.value)
	}
	return opt.Absent[T]()
}

// Map transforms the success value; Failure passes through untouched.
// Type-changing transforms use the package-level Map.
func (o Outcome[T]) Map(f func(T) T) Outcome[T] {
	if !o.ok {
		return o
	}
	return Success(f(o.value))
}

// MapErr transforms the failure payload; Success passes through untouched.
func (o Outcome[T]) MapErr(f func(error) error) Outcome[T] {
	if o.ok {
		return o
	}
	return Failure[T](f(o.err))
}

// Unwrap returns the success value or panics with the failure payload,
// coerced to an error when it is not one already.
func (o Outcome[T]) Unwrap() T {
	if !o.ok {
		panic(vary.CoerceError(o.err))
	}
	return o.value
}

// UnwrapErr returns the failure payload or panics with the success value
// coerced to an error.
func (o Outcome[T]) UnwrapErr() error {
	if o.ok {
		panic(vary.CoerceError(o.value))
	}
	return o.err
}

// Expect returns the success value or panics with a message computed from the
// failure payload.
func (o Outcome[T]) Expect(msg func(error) string) T {
	if !o.ok {
		panic(errors.New(msg(o.err)))
	}
	return o.value
}

// ExpectErr returns the failure payload or panics with a message computed
// from the success value.
func (o Outcome[T]) ExpectErr(msg func(T) string) error {
	if o.ok {
		panic(errors.New(msg(o.value)))
	}
	return o.err
}

// UnwrapOr returns the success value or the eager default.
func (o Outcome[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the success value or a default computed from the
// failure payload.
func (o Outcome[T]) UnwrapOrElse(f func(error) T) T {
	if o.ok {
		return o.value
	}
	return f(o.err)
}

// UnwrapUnchecked returns the success value, zero under Failure. Never panics.
func (o Outcome[T]) UnwrapUnchecked() T {
	return o.value
}

// Get returns the Go-native pair.
func (o Outcome[T]) Get() (T, error) {
	return o.value, o.err
}

// Or returns o when Success, else other.
func (o Outcome[T]) Or(other Outcome[T]) Outcome[T] {
	if o.ok {
		return o
	}
	return other
}

// OrElse returns o when Success, else the alternative built from the failure
// payload.
func (o Outcome[T]) OrElse(f func(error) Outcome[T]) Outcome[T] {
	if o.ok {
		return o
	}
	return f(o.err)
}

// And short-circuits on Failure, else returns other. The receiver's success
// value is discarded, not paired with other's.
func (o Outcome[T]) And(other Outcome[T]) Outcome[T] {
	if !o.ok {
		return o
	}
	return other
}

// AndThen short-circuits on Failure, else derives from the success value.
// Type-changing derivations use the package-level AndThen.
func (o Outcome[T]) AndThen(f func(T) Outcome[T]) Outcome[T] {
	if !o.ok {
		return o
	}
	return f(o.value)
}

// Ok converts to the optional container, discarding the failure payload.
func (o Outcome[T]) Ok() opt.Option[T] {
	if o.ok {
		return opt.Present(o.value)
	}
	return opt.Absent[T]()
}

// Inspect calls f with the success value, for side effects, and returns o
// unchanged either way.
func (o Outcome[T]) Inspect(f func(T)) Outcome[T] {
	if o.ok {
		f(o.value)
	}
	return o
}

// InspectErr calls f with the failure payload, for side effects, and returns
// o unchanged either way.
func (o Outcome[T]) InspectErr(f func(error)) Outcome[T] {
	if !o.ok {
		f(o.err)
	}
	return o
}

// Iter returns an iterator over the success payload's elements. Failure
// iterates as already done; a Success payload without an iteration protocol
// fails here with vary.ErrNotIterable.
func (o Outcome[T]) Iter() (iter.Seq[any], error) {
	if !o.ok {
		return vary.Empty(), nil
	}
	return vary.Iterate(o.value)
}

// Id returns the instance identity assigned at construction.
func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

// CreatedAt returns the construction time (UTC).
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.err)
}

// Map transforms a success value into an Outcome of another type.
func Map[In, Out any](o Outcome[In], f func(In) Out) Outcome[Out] {
	if !o.ok {
		return Failure[Out](o.err)
	}
	return Success(f(o.value))
}

// AndThen chains an Outcome-producing derivation across types.
func AndThen[In, Out any](o Outcome[In], f func(In) Outcome[Out]) Outcome[Out] {
	if !o.ok {
		return Failure[Out](o.err)
	}
	return f(o.value)
}

// Flatten collapses one level of nesting.
func Flatten[T any](o Outcome[Outcome[T]]) Outcome[T] {
	if !o.ok {
		return Failure[T](o.err)
	}
	return o.value
}
