package vary

import (
	"iter"
	"math"
	"reflect"
	"time"
)

// IsNil reports whether i is nil or a nil-valued pointer, interface, map,
// slice, function or channel.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// IsFalsey reports whether v is one of the loose "no value" shapes: nil, a
// zero scalar (0, "", false), NaN, or the zero time.Time. Composite values
// (slices, maps, structs) are never falsey, empty or not.
func IsFalsey(v any) bool {
	if IsNil(v) {
		return true
	}
	if t, ok := v.(time.Time); ok {
		return t.IsZero()
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.IsZero()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	}
	return false
}

// IsNaN reports whether v is a floating point NaN.
func IsNaN(v any) bool {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// AsError extracts a non-nil error from v, if it carries one.
func AsError(v any) (error, bool) {
	if err, ok := v.(error); ok && !IsNil(err) {
		return err, true
	}
	return nil, false
}

// GetErrors returns the individual errors joined into err, a single-element
// slice for a plain error, or an empty slice for nil.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Iterate adapts v into a sequence of its elements: slice and array elements,
// string runes, map values, channel receives. Any other payload kind returns
// ErrNotIterable; a non-iterable payload is a loud failure, not an empty
// sequence.
func Iterate(v any) (iter.Seq[any], error) {
	if s, ok := v.(string); ok {
		return func(yield func(any) bool) {
			for _, r := range s {
				if !yield(r) {
					return
				}
			}
		}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}, nil
	case reflect.Map:
		return func(yield func(any) bool) {
			it := rv.MapRange()
			for it.Next() {
				if !yield(it.Value().Interface()) {
					return
				}
			}
		}, nil
	case reflect.Chan:
		return func(yield func(any) bool) {
			for {
				x, ok := rv.Recv()
				if !ok {
					return
				}
				if !yield(x.Interface()) {
					return
				}
			}
		}, nil
	}
	return nil, ErrNotIterable
}

// Empty is the already-done sequence used by Absent and Failure iteration.
func Empty() iter.Seq[any] {
	return func(yield func(any) bool) {}
}
