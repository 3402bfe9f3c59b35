package future

import "context"

// Cell is a single-settlement deferred computation of V. A cell is created
// once around one computation and never replaced; settlement is broadcast by
// closing done, so any number of awaiters and derived cells observe the same
// settlement. A panic inside the computation is captured and re-raised at
// every Await and in every derived cell, which is how rejection propagates to
// whatever awaits.
type Cell[V any] struct {
	done chan struct{}
	val  V
	pan  any
}

// Go runs compute in its own goroutine and returns the cell that will settle
// with its result. A panic in compute settles the cell as rejected.
func Go[V any](compute func() V) *Cell[V] {
	c := &Cell[V]{done: make(chan struct{})}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				c.pan = r
			}
			close(c.done)
		}()
		c.val = compute()
	}()
	return c
}

// Resolve returns an already-settled cell.
func Resolve[V any](v V) *Cell[V] {
	c := &Cell[V]{done: make(chan struct{}), val: v}
	close(c.done)
	return c
}

// Then derives a new cell that settles with f applied to c's value once c
// settles. The parent cell is not consumed; any number of cells may derive
// from it. Settlement of the parent is waited for unconditionally (there is
// no cancellation primitive); a rejected parent rejects the derived cell
// without running f, and a panic in f rejects the derived cell.
func Then[A, B any](c *Cell[A], f func(A) B) *Cell[B] {
	return Go(func() B {
		return f(c.Wait())
	})
}

// Await blocks until the cell settles or ctx is done, returning the settled
// value or ctx's error. A rejected cell re-raises its captured panic here.
// Stopping the wait does not stop the computation; the cell still settles.
func (c *Cell[V]) Await(ctx context.Context) (V, error) {
	select {
	case <-c.done:
		if c.pan != nil {
			panic(c.pan)
		}
		return c.val, nil
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// Done is closed when the cell has settled.
func (c *Cell[V]) Done() <-chan struct{} {
	return c.done
}

// Wait blocks unconditionally until the cell settles, re-raising a captured
// panic. Combinator chains use it internally; callers with a deadline use
// Await.
func (c *Cell[V]) Wait() V {
	<-c.done
	if c.pan != nil {
		panic(c.pan)
	}
	return c.val
}
