package outcome

import "errors"

// All collects the success values of every argument, or returns the first
// Failure encountered; later arguments are not inspected.
func All[T any](outs ...Outcome[T]) Outcome[[]T] {
	values := make([]T, 0, len(outs))
	for _, o := range outs {
		if !o.ok {
			return Failure[[]T](o.err)
		}
		values = append(values, o.value)
	}
	return Success(values)
}

// Any returns the first Success, else a Failure joining every failure payload
// in argument order. Individual payloads are recoverable with vary.GetErrors.
func Any[T any](outs ...Outcome[T]) Outcome[T] {
	errs := make([]error, 0, len(outs))
	for _, o := range outs {
		if o.ok {
			return o
		}
		errs = append(errs, o.err)
	}
	return Failure[T](errors.Join(errs...))
}
