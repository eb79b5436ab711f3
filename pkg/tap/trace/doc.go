// Package trace decorates tapped operations with structured logging.
//
// The tap package never logs on its own; callers opt in by wrapping the
// operation they hand to Tap:
//
//	tap.Wrap(order).
//		Tap(trace.Op(logger, "reserve", reserve)).
//		Tap(trace.Value[*Order](logger, "reserved"))
//
// Panics and errors pass through unchanged after being logged.
package trace
