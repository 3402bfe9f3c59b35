package asyncopt

import (
	"context"

	"github.com/ib-77/vary/pkg/vary/future"
	"github.com/ib-77/vary/pkg/vary/opt"
)

// Option wraps one deferred computation of a sync opt.Option. Awaiting it
// yields the sync container, not the raw payload; every combinator derives a
// new deferred computation from the original, which is never consumed twice.
type Option[T any] struct {
	cell *future.Cell[opt.Option[T]]
}

// Wrap lifts an already-computed sync container.
func Wrap[T any](o opt.Option[T]) Option[T] {
	return Option[T]{cell: future.Resolve(o)}
}

// Present lifts a value as an already-settled Present.
func Present[T any](v T) Option[T] {
	return Wrap(opt.Present(v))
}

// Absent lifts an already-settled Absent.
func Absent[T any]() Option[T] {
	return Wrap(opt.Absent[T]())
}

// New runs f on its own goroutine. Rejection is not captured: a panic in f
// propagates to whatever awaits the result.
func New[T any](ctx context.Context, f func(ctx context.Context) opt.Option[T]) Option[T] {
	return Option[T]{cell: future.Go(func() opt.Option[T] {
		return f(ctx)
	})}
}

// Safe runs f on its own goroutine and converts a returned error or a panic
// into Absent; rejection never propagates from a Safe computation.
func Safe[T any](ctx context.Context, f func(ctx context.Context) (T, error)) Option[T] {
	return Option[T]{cell: future.Go(func() (o opt.Option[T]) {
		defer func() {
			if r := recover(); r != nil {
				o = opt.Absent[T]()
			}
		}()
		v, err := f(ctx)
		if err != nil {
			return opt.Absent[T]()
		}
		return opt.Present(v)
	})}
}

// From adopts an existing deferred cell.
func From[T any](c *future.Cell[opt.Option[T]]) Option[T] {
	return Option[T]{cell: c}
}

// Future exposes the underlying deferred computation.
func (a Option[T]) Future() *future.Cell[opt.Option[T]] {
	return a.cell
}

// Await blocks for the sync container, honoring ctx.
func (a Option[T]) Await(ctx context.Context) (opt.Option[T], error) {
	return a.cell.Await(ctx)
}

func (a Option[T]) IsPresent(ctx context.Context) (bool, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		return false, err
	}
	return o.IsPresent(), nil
}

func (a Option[T]) IsAbsent(ctx context.Context) (bool, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		return false, err
	}
	return o.IsAbsent(), nil
}

// IsPresentAnd awaits the container and applies a sync predicate.
func (a Option[T]) IsPresentAnd(ctx context.Context, pred func(T) bool) (bool, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		return false, err
	}
	return o.IsPresentAnd(pred), nil
}

// IsPresentAndAsync is IsPresentAnd for a predicate that suspends itself.
func (a Option[T]) IsPresentAndAsync(ctx context.Context, pred func(ctx context.Context, v T) bool) (bool, error) {
	c := future.Then(a.cell, func(o opt.Option[T]) bool {
		return o.IsPresentAnd(func(v T) bool { return pred(ctx, v) })
	})
	return c.Await(ctx)
}

// Filter applies a sync predicate to the eventual container.
func (a Option[T]) Filter(pred func(T) bool) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		return o.Filter(pred)
	}))
}

// FilterAsync is Filter for a predicate that suspends itself.
func (a Option[T]) FilterAsync(ctx context.Context, pred func(ctx context.Context, v T) bool) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		return o.Filter(func(v T) bool { return pred(ctx, v) })
	}))
}

// Map transforms the eventual value with a sync function; no extra suspension
// point is introduced.
func (a Option[T]) Map(f func(T) T) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		return o.Map(f)
	}))
}

// MapAsync is Map for a transform that suspends itself.
func (a Option[T]) MapAsync(ctx context.Context, f func(ctx context.Context, v T) T) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		return o.Map(func(v T) T { return f(ctx, v) })
	}))
}

// And discards the eventual value in favor of an already-sync alternative;
// Absent short-circuits.
func (a Option[T]) And(other opt.Option[T]) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		return o.And(other)
	}))
}

// AndAsync is And with a deferred alternative. other settles only if needed.
func (a Option[T]) AndAsync(other Option[T]) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		if o.IsAbsent() {
			return o
		}
		return other.cell.Wait()
	}))
}

// AndThen derives from the eventual value with a sync, sync-returning
// function.
func (a Option[T]) AndThen(f func(T) opt.Option[T]) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		return o.AndThen(f)
	}))
}

// AndThenAsync derives with a function returning a deferred container; the
// derived computation settles when the inner one does.
func (a Option[T]) AndThenAsync(ctx context.Context, f func(ctx context.Context, v T) Option[T]) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		v, ok := o.Get()
		if !ok {
			return o
		}
		return f(ctx, v).cell.Wait()
	}))
}

// Or keeps the eventual container when Present, else the sync alternative.
func (a Option[T]) Or(alt opt.Option[T]) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		return o.Or(alt)
	}))
}

// OrAsync is Or with a deferred alternative.
func (a Option[T]) OrAsync(alt Option[T]) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		if o.IsPresent() {
			return o
		}
		return alt.cell.Wait()
	}))
}

// OrElse lazily builds a sync alternative when the eventual container is
// Absent.
func (a Option[T]) OrElse(f func() opt.Option[T]) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		return o.OrElse(f)
	}))
}

// OrElseAsync lazily builds a deferred alternative.
func (a Option[T]) OrElseAsync(ctx context.Context, f func(ctx context.Context) Option[T]) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		if o.IsPresent() {
			return o
		}
		return f(ctx).cell.Wait()
	}))
}

// Inspect observes the eventual value without changing the container.
func (a Option[T]) Inspect(f func(T)) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[T]) opt.Option[T] {
		return o.Inspect(f)
	}))
}

// Unwrap awaits and extracts, panicking with vary.ErrEmptyValue under Absent.
func (a Option[T]) Unwrap(ctx context.Context) (T, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return o.Unwrap(), nil
}

// Expect awaits and extracts, panicking with the caller's message under
// Absent.
func (a Option[T]) Expect(ctx context.Context, msg string) (T, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return o.Expect(msg), nil
}

// UnwrapOr awaits and extracts with an eager default.
func (a Option[T]) UnwrapOr(ctx context.Context, def T) (T, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return o.UnwrapOr(def), nil
}

// UnwrapOrElse awaits and extracts with a lazy default.
func (a Option[T]) UnwrapOrElse(ctx context.Context, f func() T) (T, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return o.UnwrapOrElse(f), nil
}

// UnwrapUnchecked awaits and extracts, zero value under Absent. Never panics.
func (a Option[T]) UnwrapUnchecked(ctx context.Context) (T, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return o.UnwrapUnchecked(), nil
}

// Map transforms the eventual value into a deferred Option of another type.
func Map[In, Out any](a Option[In], f func(In) Out) Option[Out] {
	return From(future.Then(a.cell, func(o opt.Option[In]) opt.Option[Out] {
		return opt.Map(o, f)
	}))
}

// MapAsync is the type-changing Map for a transform that suspends itself.
func MapAsync[In, Out any](ctx context.Context, a Option[In], f func(ctx context.Context, v In) Out) Option[Out] {
	return From(future.Then(a.cell, func(o opt.Option[In]) opt.Option[Out] {
		return opt.Map(o, func(v In) Out { return f(ctx, v) })
	}))
}

// AndThen chains a sync, sync-returning derivation across types.
func AndThen[In, Out any](a Option[In], f func(In) opt.Option[Out]) Option[Out] {
	return From(future.Then(a.cell, func(o opt.Option[In]) opt.Option[Out] {
		return opt.AndThen(o, f)
	}))
}

// AndThenAsync chains a derivation returning a deferred container across
// types.
func AndThenAsync[In, Out any](ctx context.Context, a Option[In], f func(ctx context.Context, v In) Option[Out]) Option[Out] {
	return From(future.Then(a.cell, func(o opt.Option[In]) opt.Option[Out] {
		v, ok := o.Get()
		if !ok {
			return opt.Absent[Out]()
		}
		return f(ctx, v).cell.Wait()
	}))
}

// Flatten collapses a deferred option of a sync option.
func Flatten[T any](a Option[opt.Option[T]]) Option[T] {
	return From(future.Then(a.cell, func(o opt.Option[opt.Option[T]]) opt.Option[T] {
		return opt.Flatten(o)
	}))
}
