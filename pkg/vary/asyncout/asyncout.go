package asyncout

import (
	"context"

	"github.com/ib-77/vary/pkg/vary"
	"github.com/ib-77/vary/pkg/vary/asyncopt"
	"github.com/ib-77/vary/pkg/vary/future"
	"github.com/ib-77/vary/pkg/vary/opt"
	"github.com/ib-77/vary/pkg/vary/outcome"
)

// Outcome wraps one deferred computation of a sync outcome.Outcome. Awaiting
// it yields the sync container; every combinator derives a new deferred
// computation from the original.
type Outcome[T any] struct {
	cell *future.Cell[outcome.Outcome[T]]
}

// Wrap lifts an already-computed sync container.
func Wrap[T any](o outcome.Outcome[T]) Outcome[T] {
	return Outcome[T]{cell: future.Resolve(o)}
}

// Success lifts a value as an already-settled Success.
func Success[T any](v T) Outcome[T] {
	return Wrap(outcome.Success(v))
}

// Failure lifts an error as an already-settled Failure.
func Failure[T any](err error) Outcome[T] {
	return Wrap(outcome.Failure[T](err))
}

// New runs f on its own goroutine. Rejection is not captured: a panic in f
// propagates to whatever awaits the result.
func New[T any](ctx context.Context, f func(ctx context.Context) outcome.Outcome[T]) Outcome[T] {
	return Outcome[T]{cell: future.Go(func() outcome.Outcome[T] {
		return f(ctx)
	})}
}

// Safe runs f on its own goroutine, converting a returned error or a panic
// into Failure; rejection never propagates from a Safe computation. The
// panic value is coerced to an error unless mapErr is given.
func Safe[T any](ctx context.Context, f func(ctx context.Context) (T, error), mapErr ...func(any) error) Outcome[T] {
	return Outcome[T]{cell: future.Go(func() (out outcome.Outcome[T]) {
		defer func() {
			if r := recover(); r != nil {
				if len(mapErr) > 0 && mapErr[0] != nil {
					out = outcome.Failure[T](mapErr[0](r))
					return
				}
				out = outcome.Failure[T](vary.CoerceError(r))
			}
		}()
		v, err := f(ctx)
		if err != nil {
			return outcome.Failure[T](err)
		}
		return outcome.Success(v)
	})}
}

// From adopts an existing deferred cell.
func From[T any](c *future.Cell[outcome.Outcome[T]]) Outcome[T] {
	return Outcome[T]{cell: c}
}

// FromOption converts a deferred optional: Present to Success, Absent to
// Failure carrying err.
func FromOption[T any](a asyncopt.Option[T], err error) Outcome[T] {
	return From(future.Then(a.Future(), func(o opt.Option[T]) outcome.Outcome[T] {
		return outcome.FromOption(o, err)
	}))
}

// FromOptionElse is FromOption with a lazily built failure payload.
func FromOptionElse[T any](a asyncopt.Option[T], f func() error) Outcome[T] {
	return From(future.Then(a.Future(), func(o opt.Option[T]) outcome.Outcome[T] {
		return outcome.FromOptionElse(o, f)
	}))
}

// Future exposes the underlying deferred computation.
func (a Outcome[T]) Future() *future.Cell[outcome.Outcome[T]] {
	return a.cell
}

// Await blocks for the sync container, honoring ctx.
func (a Outcome[T]) Await(ctx context.Context) (outcome.Outcome[T], error) {
	return a.cell.Await(ctx)
}

func (a Outcome[T]) IsOk(ctx context.Context) (bool, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		return false, err
	}
	return o.IsOk(), nil
}

func (a Outcome[T]) IsErr(ctx context.Context) (bool, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		return false, err
	}
	return o.IsErr(), nil
}

// IsOkAnd awaits the container and applies a sync predicate to the success
// side.
func (a Outcome[T]) IsOkAnd(ctx context.Context, pred func(T) bool) (bool, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		return false, err
	}
	return o.IsOkAnd(pred), nil
}

// IsErrAnd awaits the container and applies a sync predicate to the failure
// side.
func (a Outcome[T]) IsErrAnd(ctx context.Context, pred func(error) bool) (bool, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		return false, err
	}
	return o.IsErrAnd(pred), nil
}

// IsOkAndAsync is IsOkAnd for a predicate that suspends itself.
func (a Outcome[T]) IsOkAndAsync(ctx context.Context, pred func(ctx context.Context, v T) bool) (bool, error) {
	c := future.Then(a.cell, func(o outcome.Outcome[T]) bool {
		return o.IsOkAnd(func(v T) bool { return pred(ctx, v) })
	})
	return c.Await(ctx)
}

// Filter converts to the deferred optional container: an eventual Success
// value passing pred becomes Present, everything else Absent.
func (a Outcome[T]) Filter(pred func(T) bool) asyncopt.Option[T] {
	return asyncopt.From(future.Then(a.cell, func(o outcome.Outcome[T]) opt.Option[T] {
		return o.Filter(pred)
	}))
}

// FilterAsync is Filter for a predicate that suspends itself.
func (a Outcome[T]) FilterAsync(ctx context.Context, pred func(ctx context.Context, v T) bool) asyncopt.Option[T] {
	return asyncopt.From(future.Then(a.cell, func(o outcome.Outcome[T]) opt.Option[T] {
		return o.Filter(func(v T) bool { return pred(ctx, v) })
	}))
}

// Map transforms the eventual success value with a sync function.
func (a Outcome[T]) Map(f func(T) T) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		return o.Map(f)
	}))
}

// MapAsync is Map for a transform that suspends itself.
func (a Outcome[T]) MapAsync(ctx context.Context, f func(ctx context.Context, v T) T) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		return o.Map(func(v T) T { return f(ctx, v) })
	}))
}

// MapErr transforms the eventual failure payload with a sync function.
func (a Outcome[T]) MapErr(f func(error) error) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		return o.MapErr(f)
	}))
}

// MapErrAsync is MapErr for a transform that suspends itself.
func (a Outcome[T]) MapErrAsync(ctx context.Context, f func(ctx context.Context, err error) error) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		return o.MapErr(func(err error) error { return f(ctx, err) })
	}))
}

// And discards the eventual success value in favor of an already-sync
// alternative; Failure short-circuits.
func (a Outcome[T]) And(other outcome.Outcome[T]) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		return o.And(other)
	}))
}

// AndAsync is And with a deferred alternative. other settles only if needed.
func (a Outcome[T]) AndAsync(other Outcome[T]) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		if o.IsErr() {
			return o
		}
		return other.cell.Wait()
	}))
}

// AndThen derives from the eventual success value with a sync, sync-returning
// function.
func (a Outcome[T]) AndThen(f func(T) outcome.Outcome[T]) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		return o.AndThen(f)
	}))
}

// AndThenAsync derives with a function returning a deferred container; the
// derived computation settles when the inner one does, and f runs only after
// the receiver settles successfully.
func (a Outcome[T]) AndThenAsync(ctx context.Context, f func(ctx context.Context, v T) Outcome[T]) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		if o.IsErr() {
			return o
		}
		return f(ctx, o.UnwrapUnchecked()).cell.Wait()
	}))
}

// Or keeps the eventual container when Success, else the sync alternative.
func (a Outcome[T]) Or(alt outcome.Outcome[T]) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		return o.Or(alt)
	}))
}

// OrAsync is Or with a deferred alternative.
func (a Outcome[T]) OrAsync(alt Outcome[T]) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		if o.IsOk() {
			return o
		}
		return alt.cell.Wait()
	}))
}

// OrElse lazily builds a sync alternative from the eventual failure payload.
func (a Outcome[T]) OrElse(f func(error) outcome.Outcome[T]) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		return o.OrElse(f)
	}))
}

// OrElseAsync lazily builds a deferred alternative from the eventual failure
// payload.
func (a Outcome[T]) OrElseAsync(ctx context.Context, f func(ctx context.Context, err error) Outcome[T]) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		if o.IsOk() {
			return o
		}
		_, err := o.Get()
		return f(ctx, err).cell.Wait()
	}))
}

// Ok converts to the deferred optional container, discarding the failure
// payload.
func (a Outcome[T]) Ok() asyncopt.Option[T] {
	return asyncopt.From(future.Then(a.cell, func(o outcome.Outcome[T]) opt.Option[T] {
		return o.Ok()
	}))
}

// Inspect observes the eventual success value without changing the container.
func (a Outcome[T]) Inspect(f func(T)) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		return o.Inspect(f)
	}))
}

// InspectErr observes the eventual failure payload without changing the
// container.
func (a Outcome[T]) InspectErr(f func(error)) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[T]) outcome.Outcome[T] {
		return o.InspectErr(f)
	}))
}

// Unwrap awaits and extracts, panicking with the coerced failure payload
// under Failure.
func (a Outcome[T]) Unwrap(ctx context.Context) (T, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return o.Unwrap(), nil
}

// UnwrapErr awaits and extracts the failure payload, panicking under Success.
func (a Outcome[T]) UnwrapErr(ctx context.Context) (error, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		return nil, err
	}
	return o.UnwrapErr(), nil
}

// Expect awaits and extracts, panicking with a caller-computed message under
// Failure.
func (a Outcome[T]) Expect(ctx context.Context, msg func(error) string) (T, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return o.Expect(msg), nil
}

// ExpectErr awaits and extracts the failure payload, panicking with a
// caller-computed message under Success.
func (a Outcome[T]) ExpectErr(ctx context.Context, msg func(T) string) (error, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		return nil, err
	}
	return o.ExpectErr(msg), nil
}

// UnwrapOr awaits and extracts with an eager default.
func (a Outcome[T]) UnwrapOr(ctx context.Context, def T) (T, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return o.UnwrapOr(def), nil
}

// UnwrapOrElse awaits and extracts with a default computed from the failure
// payload.
func (a Outcome[T]) UnwrapOrElse(ctx context.Context, f func(error) T) (T, error) {
	o, err := a.cell.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return o.UnwrapOrElse(f), nil
}

// Map transforms the eventual success value into a deferred Outcome of
// another type.
func Map[In, Out any](a Outcome[In], f func(In) Out) Outcome[Out] {
	return From(future.Then(a.cell, func(o outcome.Outcome[In]) outcome.Outcome[Out] {
		return outcome.Map(o, f)
	}))
}

// MapAsync is the type-changing Map for a transform that suspends itself.
func MapAsync[In, Out any](ctx context.Context, a Outcome[In], f func(ctx context.Context, v In) Out) Outcome[Out] {
	return From(future.Then(a.cell, func(o outcome.Outcome[In]) outcome.Outcome[Out] {
		return outcome.Map(o, func(v In) Out { return f(ctx, v) })
	}))
}

// AndThen chains a sync, sync-returning derivation across types.
func AndThen[In, Out any](a Outcome[In], f func(In) outcome.Outcome[Out]) Outcome[Out] {
	return From(future.Then(a.cell, func(o outcome.Outcome[In]) outcome.Outcome[Out] {
		return outcome.AndThen(o, f)
	}))
}

// AndThenAsync chains a derivation returning a deferred container across
// types.
func AndThenAsync[In, Out any](ctx context.Context, a Outcome[In], f func(ctx context.Context, v In) Outcome[Out]) Outcome[Out] {
	return From(future.Then(a.cell, func(o outcome.Outcome[In]) outcome.Outcome[Out] {
		if o.IsErr() {
			_, err := o.Get()
			return outcome.Failure[Out](err)
		}
		return f(ctx, o.UnwrapUnchecked()).cell.Wait()
	}))
}

// Flatten collapses a deferred outcome of a sync outcome.
func Flatten[T any](a Outcome[outcome.Outcome[T]]) Outcome[T] {
	return From(future.Then(a.cell, func(o outcome.Outcome[outcome.Outcome[T]]) outcome.Outcome[T] {
		return outcome.Flatten(o)
	}))
}
