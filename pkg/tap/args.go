package tap

// Tap1 runs op with the held value and a.
func Tap1[T, A any](w *Wrapper[T], op func(T, A), a A) *Wrapper[T] {
	return w.Tap(Bind1(op, a))
}

func Tap2[T, A, B any](w *Wrapper[T], op func(T, A, B), a A, b B) *Wrapper[T] {
	return w.Tap(Bind2(op, a, b))
}

func Tap3[T, A, B, C any](w *Wrapper[T], op func(T, A, B, C), a A, b B, c C) *Wrapper[T] {
	return w.Tap(Bind3(op, a, b, c))
}

// TapArgs forwards args to a variadic op in the order given.
func TapArgs[T, A any](w *Wrapper[T], op func(T, ...A), args ...A) *Wrapper[T] {
	return w.Tap(BindArgs(op, args...))
}

// Bind1 fixes the trailing argument of op so it can be passed to Tap.
func Bind1[T, A any](op func(T, A), a A) func(T) {
	return func(v T) {
		op(v, a)
	}
}

func Bind2[T, A, B any](op func(T, A, B), a A, b B) func(T) {
	return func(v T) {
		op(v, a, b)
	}
}

func Bind3[T, A, B, C any](op func(T, A, B, C), a A, b B, c C) func(T) {
	return func(v T) {
		op(v, a, b, c)
	}
}

func BindArgs[T, A any](op func(T, ...A), args ...A) func(T) {
	return func(v T) {
		op(v, args...)
	}
}
