// Package tap provides a fluent Wrapper[T] that runs side-effecting
// operations against a held value and hands the value back untouched.
//
// The API surface is intentionally small:
// - Wrap: bind a value and get a *Wrapper[T]
// - Tap/TapIf: run an operation that receives the held value
// - Tap1/Tap2/Tap3/TapArgs: forward extra arguments positionally
// - Bind1/Bind2/Bind3/BindArgs: pre-bind arguments to keep method chains fluent
// - TapErr/Attempt/Result: bridge fallible operations onto rop.Result
// - Unwrap: get the held value back
//
// Operations run synchronously on the calling goroutine. Panics raised by an
// operation are not recovered. Mutations are only observable when T is a
// reference type such as a pointer, map or slice.
package tap
