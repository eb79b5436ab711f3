package tap

// Wrapper holds a single value bound at construction.
type Wrapper[T any] struct {
	value T
}

// Wrap binds value to a new Wrapper.
func Wrap[T any](value T) *Wrapper[T] {
	return &Wrapper[T]{value: value}
}

// Tap runs op against the held value and returns the same wrapper.
func (w *Wrapper[T]) Tap(op func(T)) *Wrapper[T] {
	op(w.value)
	return w
}

// TapIf runs op only when cond holds for the held value.
func (w *Wrapper[T]) TapIf(cond func(T) bool, op func(T)) *Wrapper[T] {
	if cond(w.value) {
		op(w.value)
	}
	return w
}

// Unwrap returns the held value.
func (w *Wrapper[T]) Unwrap() T {
	return w.value
}
