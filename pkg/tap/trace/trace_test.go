package trace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/tap3/pkg/tap"
)

type account struct {
	owner   string
	balance int
}

func newObserved() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestOp_LogsStartAndFinish(t *testing.T) {
	t.Parallel()

	l, logs := newObserved()

	acc := tap.Wrap(&account{balance: 10}).
		Tap(Op(l, "deposit", func(a *account) { a.balance += 5 })).
		Unwrap()

	assert.Equal(t, 15, acc.balance)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "tap started", entries[0].Message)
	assert.Equal(t, "tap finished", entries[1].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, "deposit", entries[1].ContextMap()["op"])
	assert.Contains(t, entries[1].ContextMap(), "elapsed")
}

func TestOp_PanicIsLoggedAndRethrown(t *testing.T) {
	t.Parallel()

	l, logs := newObserved()
	w := tap.Wrap(&account{})

	assert.PanicsWithValue(t, "overdraft", func() {
		w.Tap(Op(l, "withdraw", func(*account) { panic("overdraft") }))
	})

	failed := logs.FilterMessage("tap panicked").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Equal(t, "overdraft", failed[0].ContextMap()["panic"])
	assert.Equal(t, 0, logs.FilterMessage("tap finished").Len())
}

func TestOpErr(t *testing.T) {
	t.Parallel()

	l, logs := newObserved()
	expected := errors.New("insufficient funds")

	w := tap.Wrap(&account{balance: 1})

	got, err := w.TapErr(OpErr(l, "charge", func(a *account) error {
		a.balance--
		return nil
	}))
	require.NoError(t, err)
	assert.Same(t, w, got)

	_, err = w.TapErr(OpErr(l, "charge", func(*account) error { return expected }))
	assert.Same(t, expected, err)

	failed := logs.FilterMessage("tap failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "charge", failed[0].ContextMap()["op"])
	assert.Equal(t, expected.Error(), failed[0].ContextMap()["error"])
	assert.Equal(t, 0, w.Unwrap().balance)
}

func TestValueAndField(t *testing.T) {
	t.Parallel()

	l, logs := newObserved()

	tap.Wrap(&account{owner: "John", balance: 3}).
		Tap(Field(l, "owner", "name", func(a *account) any { return a.owner })).
		Tap(Value[*account](l, "snapshot"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "John", entries[0].ContextMap()["name"])
	assert.Equal(t, "snapshot", entries[1].Message)
	assert.Contains(t, entries[1].ContextMap(), "value")
}

func TestNilLogger(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		tap.Wrap(1).
			Tap(Op[int](nil, "noop", func(int) {})).
			Tap(Value[int](nil, "v")).
			Tap(Field[int](nil, "f", "k", func(v int) any { return v }))
	})
}
