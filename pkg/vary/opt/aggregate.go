package opt

// All collects the values of every argument, or returns Absent as soon as one
// argument is Absent.
func All[T any](opts ...Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.present {
			return Absent[[]T]()
		}
		values = append(values, o.value)
	}
	return Present(values)
}

// Any returns the first Present argument, else Absent.
func Any[T any](opts ...Option[T]) Option[T] {
	for _, o := range opts {
		if o.present {
			return o
		}
	}
	return Absent[T]()
}
