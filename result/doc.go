// Package result implements the Result/ErrorInfo model of:
// a Result[T] is either a value or an ErrorInfo carrying an error taxonomy
// code plus a bounded, append-only context chain. ErrorInfo additionally
// records the goroutine that created it so that passing a Result across
// goroutines is detected in every build: the context chain is then treated as invalidated and
// only the bare code's default message is used, rather than panicking.
//
// The teacher's sentinel-error-plus-%w-wrapping idiom (every package
// declares `var ErrX = errors.New(...)` and wraps with fmt.Errorf("%w"))
// is kept as the per-package error surface; this package adds the single
// cross-cutting taxonomy requires every analytics entry
// point to report through.
package result
