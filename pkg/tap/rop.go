package tap

import (
	"context"

	"github.com/ib-77/tap3/pkg/rop"
)

// Result lifts the held value onto the success track.
func (w *Wrapper[T]) Result() rop.Result[T] {
	return rop.Success(w.value)
}

// TapErr runs op and stops the chain on error: the wrapper is returned only
// when op succeeds, and op's error is returned as is.
func (w *Wrapper[T]) TapErr(op func(T) error) (*Wrapper[T], error) {
	if err := op(w.value); err != nil {
		return nil, err
	}
	return w, nil
}

// Attempt runs op and reports the outcome as a rop.Result. Context errors,
// whether from ctx itself or returned by op, produce a cancel result.
func Attempt[T any](ctx context.Context, w *Wrapper[T],
	op func(ctx context.Context, v T) error) rop.Result[T] {

	if err := ctx.Err(); err != nil {
		return rop.Cancel[T](err)
	}

	if err := op(ctx, w.value); err != nil {
		if rop.IsCancellationError(err) {
			return rop.Cancel[T](err)
		}
		return rop.Fail[T](err)
	}

	return rop.Success(w.value)
}
