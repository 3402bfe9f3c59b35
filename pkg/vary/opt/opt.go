package opt

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ib-77/vary/pkg/vary"
)

// Option holds either one value of type T or nothing. The zero value is
// Absent, so every Absent of a given type is the identical value and the
// Absent path of a combinator never builds a new instance.
type Option[T any] struct {
	value   T
	present bool
}

// Present wraps v. Wrapping is explicit, not a truthiness test: a zero or
// otherwise falsey v still produces the Present variant.
func Present[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// Absent returns the empty Option for T.
func Absent[T any]() Option[T] {
	return Option[T]{}
}

// Tag implements vary.Variant.
func (o Option[T]) Tag() vary.Tag {
	if o.present {
		return vary.TagPresent
	}
	return vary.TagAbsent
}

// Payload implements vary.Variant.
func (o Option[T]) Payload() (any, bool) {
	if o.present {
		return o.value, true
	}
	return nil, false
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsAbsent() bool {
	return !o.present
}

// IsPresentAnd reports whether o is Present and its value satisfies pred.
func (o Option[T]) IsPresentAnd(pred func(T) bool) bool {
	return o.present && pred(o.value)
}

// Filter keeps a Present value only while pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if !o.present || pred(o.value) {
		return o
	}
	return Absent[T]()
}

// Map transforms the value under Present; Absent passes through unchanged.
// Type-changing transforms use the package-level Map.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if !o.present {
		return o
	}
	return Present(f(o.value))
}

// Unwrap returns the value or panics with vary.ErrEmptyValue.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(vary.ErrEmptyValue)
	}
	return o.value
}

// Expect returns the value or panics with the caller's message.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(errors.New(msg))
	}
	return o.value
}

// UnwrapOr returns the value or the eager default.
func (o Option[T]) UnwrapOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the value or the lazily computed default.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.present {
		return o.value
	}
	return f()
}

// UnwrapUnchecked returns the value, or the zero value under Absent. It never
// panics.
func (o Option[T]) UnwrapUnchecked() T {
	return o.value
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Or returns o when Present, else other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse returns o when Present, else the lazily built alternative.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return f()
}

// And returns Absent when o is Absent, else other. The receiver's value is
// discarded, not paired with other's.
func (o Option[T]) And(other Option[T]) Option[T] {
	if !o.present {
		return o
	}
	return other
}

// AndThen returns Absent when o is Absent, else the value derived from o's.
// Type-changing derivations use the package-level AndThen.
func (o Option[T]) AndThen(f func(T) Option[T]) Option[T] {
	if !o.present {
		return o
	}
	return f(o.value)
}

// Inspect calls f with the value when Present, for side effects, and returns
// o unchanged either way.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.present {
		f(o.value)
	}
	return o
}

// Iter returns an iterator over the payload's elements. Absent iterates as
// already done; a Present payload without an iteration protocol fails here
// with vary.ErrNotIterable rather than iterating as empty.
func (o Option[T]) Iter() (iter.Seq[any], error) {
	if !o.present {
		return vary.Empty(), nil
	}
	return vary.Iterate(o.value)
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Present(%v)", o.value)
	}
	return "Absent"
}

// Map transforms a Present value into an Option of another type.
func Map[In, Out any](o Option[In], f func(In) Out) Option[Out] {
	if !o.IsPresent() {
		return Absent[Out]()
	}
	return Present(f(o.value))
}

// AndThen chains an Option-producing derivation across types.
func AndThen[In, Out any](o Option[In], f func(In) Option[Out]) Option[Out] {
	if !o.IsPresent() {
		return Absent[Out]()
	}
	return f(o.value)
}

// Flatten collapses one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.present {
		return Absent[T]()
	}
	return o.value
}
