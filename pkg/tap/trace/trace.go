package trace

import (
	"time"

	"go.uber.org/zap"
)

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// Op logs the start and finish of op at debug level. A panic in op is logged
// at error level and re-raised with the original value.
func Op[T any](l *zap.Logger, name string, op func(T)) func(T) {
	l = orNop(l).With(zap.String("op", name))

	return func(v T) {
		start := time.Now()
		l.Debug("tap started")

		defer func() {
			if r := recover(); r != nil {
				l.Error("tap panicked", zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)))
				panic(r)
			}
		}()

		op(v)
		l.Debug("tap finished", zap.Duration("elapsed", time.Since(start)))
	}
}

// OpErr is Op for operations that report failure through an error.
// The error is returned as is.
func OpErr[T any](l *zap.Logger, name string, op func(T) error) func(T) error {
	l = orNop(l).With(zap.String("op", name))

	return func(v T) error {
		start := time.Now()
		l.Debug("tap started")

		if err := op(v); err != nil {
			l.Error("tap failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
			return err
		}

		l.Debug("tap finished", zap.Duration("elapsed", time.Since(start)))
		return nil
	}
}

// Value returns an operation logging the held value at info level.
func Value[T any](l *zap.Logger, msg string) func(T) {
	l = orNop(l)
	return func(v T) {
		l.Info(msg, zap.Any("value", v))
	}
}

// Field returns an operation logging a single projection of the held value.
func Field[T any](l *zap.Logger, msg, key string, get func(T) any) func(T) {
	l = orNop(l)
	return func(v T) {
		l.Info(msg, zap.Any(key, get(v)))
	}
}
