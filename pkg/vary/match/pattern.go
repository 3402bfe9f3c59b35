package match

import (
	"errors"
	"reflect"

	"github.com/ib-77/vary/pkg/vary"
)

// Any is the wildcard marker: it matches every subject, including inside
// nested array and record patterns.
var Any any = wildcard{}

type wildcard struct{}

// Predicate is the leaf-test pattern form. A predicate is never recursed
// into; it either accepts the candidate or it does not.
type Predicate func(any) bool

// Pred adapts a typed predicate into a Predicate. A candidate of the wrong
// dynamic type does not match.
func Pred[T any](f func(T) bool) Predicate {
	return func(v any) bool {
		t, ok := v.(T)
		return ok && f(t)
	}
}

// ErrWhere wraps a predicate as an error value, so it can sit inside a
// Failure pattern whose payload slot is typed error.
func ErrWhere(pred Predicate) error {
	return errPattern{pred: pred}
}

// AnyErr is the error-typed wildcard for Failure pattern payloads.
var AnyErr = ErrWhere(func(any) bool { return true })

type errPattern struct {
	pred Predicate
}

func (e errPattern) Error() string {
	return "match: error pattern"
}

// FuncPattern matches function values by identity, never by invocation. Use
// it both to tag a function subject and as the pattern testing for it.
type FuncPattern struct {
	fn reflect.Value
}

// Fn wraps a function's identity for matching purposes. f must be a function.
func Fn(f any) FuncPattern {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func {
		panic(errors.New("match: Fn requires a function"))
	}
	return FuncPattern{fn: v}
}

func (p FuncPattern) matches(subject any) bool {
	if fp, ok := subject.(FuncPattern); ok {
		return fp.fn.Pointer() == p.fn.Pointer()
	}
	v := reflect.ValueOf(subject)
	return v.Kind() == reflect.Func && v.Pointer() == p.fn.Pointer()
}

// Matches tests pattern against subject. Patterns are data: the wildcard, a
// predicate, a wrapped-function marker, a container (whose own payload is a
// nested pattern), a slice or map matched structurally and partially, or a
// literal compared by deep equality. A nil pattern matches a nil subject,
// but only where it is nested (array elements, record values, container
// payloads): at the top of a chained Case, a nil When is the default instead.
func Matches(pattern, subject any) bool {
	switch p := pattern.(type) {
	case nil:
		return vary.IsNil(subject)
	case wildcard:
		return true
	case FuncPattern:
		return p.matches(subject)
	case errPattern:
		return p.pred(subject)
	case Predicate:
		return p(subject)
	case func(any) bool:
		return p(subject)
	case vary.Variant:
		return matchVariant(p, subject)
	}

	pv := reflect.ValueOf(pattern)
	switch pv.Kind() {
	case reflect.Slice, reflect.Array:
		return matchSeq(pv, subject)
	case reflect.Map:
		return matchRecord(pv, subject)
	case reflect.Func:
		return callPredicate(pv, subject)
	}
	return reflect.DeepEqual(pattern, subject)
}

// matchVariant requires the subject to be a container of the same variant
// tag; a payload-carrying pattern then recurses into the subject's payload.
func matchVariant(p vary.Variant, subject any) bool {
	sv, ok := subject.(vary.Variant)
	if !ok || sv.Tag() != p.Tag() {
		return false
	}
	pp, hasPayload := p.Payload()
	if !hasPayload {
		return true
	}
	sp, _ := sv.Payload()
	return Matches(pp, sp)
}

// matchSeq matches a slice/array pattern positionally and partially: every
// declared element must match the subject element at the same index, extra
// trailing subject elements are ignored, a shorter subject fails.
func matchSeq(pv reflect.Value, subject any) bool {
	sv := reflect.ValueOf(subject)
	if sv.Kind() != reflect.Slice && sv.Kind() != reflect.Array {
		return false
	}
	if sv.Len() < pv.Len() {
		return false
	}
	for i := 0; i < pv.Len(); i++ {
		if !Matches(pv.Index(i).Interface(), sv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

// matchRecord matches a map pattern against a map or struct subject: every
// declared key must exist and match, undeclared subject keys are ignored.
func matchRecord(pv reflect.Value, subject any) bool {
	sv := reflect.ValueOf(subject)
	for sv.Kind() == reflect.Ptr {
		if sv.IsNil() {
			return false
		}
		sv = sv.Elem()
	}

	it := pv.MapRange()
	for it.Next() {
		field, ok := recordField(sv, it.Key())
		if !ok {
			return false
		}
		if !Matches(it.Value().Interface(), field) {
			return false
		}
	}
	return true
}

func recordField(sv reflect.Value, key reflect.Value) (any, bool) {
	switch sv.Kind() {
	case reflect.Map:
		if !key.Type().AssignableTo(sv.Type().Key()) {
			return nil, false
		}
		v := sv.MapIndex(key)
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		if key.Kind() != reflect.String {
			return nil, false
		}
		f := sv.FieldByName(key.String())
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

// callPredicate invokes a typed one-argument boolean function pattern via
// reflection. A candidate not assignable to the parameter type does not
// match.
func callPredicate(pv reflect.Value, subject any) bool {
	t := pv.Type()
	if t.NumIn() != 1 || t.NumOut() != 1 || t.Out(0).Kind() != reflect.Bool {
		return false
	}
	sv := reflect.ValueOf(subject)
	if !sv.IsValid() {
		return false
	}
	if !sv.Type().AssignableTo(t.In(0)) {
		return false
	}
	return pv.Call([]reflect.Value{sv})[0].Bool()
}
