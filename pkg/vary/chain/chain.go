package chain

import (
	"context"
	"errors"

	"github.com/ib-77/vary/pkg/vary/outcome"
)

// Chain wraps an outcome.Outcome with context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	out outcome.Outcome[T]
}

// Start creates a new chain from an outcome.
func Start[T any](ctx context.Context, out outcome.Outcome[T]) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		out: out,
	}
}

// FromValue creates a new chain from a success value.
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		out: outcome.Success(value),
	}
}

// Outcome returns the underlying outcome.
func (c *Chain[T]) Outcome() outcome.Outcome[T] {
	return c.out
}

// Then chains a function that returns outcome.Outcome[U].
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) outcome.Outcome[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		out: outcome.AndThen(c.out, func(v T) outcome.Outcome[U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error).
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Then(c, func(ctx context.Context, v T) outcome.Outcome[U] {
		return outcome.Try(func() (U, error) {
			return tryOnSuccess(ctx, v)
		})
	})
}

// Map chains a pure transformation function.
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		out: outcome.Map(c.out, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Ensure performs a side effect on success without changing the outcome.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		out: c.out.Inspect(func(v T) {
			onSuccess(c.ctx, v)
		}),
	}
}

// Validate runs every validator against the success value, accumulating their
// errors into one joined failure; individual errors are recoverable with
// vary.GetErrors. A failed chain passes through untouched.
func (c *Chain[T]) Validate(validators ...func(context.Context, T) error) *Chain[T] {
	if c.out.IsErr() {
		return c
	}

	v := c.out.UnwrapUnchecked()
	var errs []error
	for _, validate := range validators {
		if err := validate(c.ctx, v); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return c
	}
	return &Chain[T]{
		ctx: c.ctx,
		out: outcome.Failure[T](errors.Join(errs...)),
	}
}

// Recover replaces a failed outcome using the failure payload.
func (c *Chain[T]) Recover(onFailure func(context.Context, error) outcome.Outcome[T]) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		out: c.out.OrElse(func(err error) outcome.Outcome[T] {
			return onFailure(c.ctx, err)
		}),
	}
}

// Finally collapses the chain into a final value via handlers.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	if c.out.IsOk() {
		return onSuccess(c.ctx, c.out.UnwrapUnchecked())
	}
	_, err := c.out.Get()
	return onFailure(c.ctx, err)
}
