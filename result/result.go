package result

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

const contextCap = 8 // bounded context chain.5 "fixed size"

// ErrorInfo is the error half of a Result: a taxonomy code plus a bounded
// chain of annotation strings, and the id of the goroutine that created
// it. Passing an ErrorInfo to another goroutine and then calling
// WithContext/Error() on it is detected (goroutineID mismatch) and degrades
// to the bare code's default message rather than returning stale or
// corrupted context.
type ErrorInfo struct {
	code ErrCode
	context []string
	goroutineID int64
}

// NewErrorInfo constructs an ErrorInfo for code, capturing the calling
// goroutine's id.
func NewErrorInfo(code ErrCode) *ErrorInfo {
	return &ErrorInfo{code: code, goroutineID: currentGoroutineID()}
}

// Code() reports the taxonomy code.
func (e *ErrorInfo) Code() ErrCode { return e.code }

// WithContext prepends a message to the context chain, truncating the
// oldest entries once contextCap is exceeded. A no-op if e was created on a different goroutine.
func (e *ErrorInfo) WithContext(msg string) *ErrorInfo {
	if e == nil {
		return nil
	}
	if e.goroutineID != currentGoroutineID() {
		return e // crossed goroutines: context frozen, see Error()
	}
	e.context = append([]string{msg}, e.context...)
	if len(e.context) > contextCap {
		e.context = e.context[:contextCap]
	}
	return e
}

// Error() renders the error message: the taxonomy's default message if this
// ErrorInfo has crossed goroutines since creation, otherwise the context chain joined with the default
// message.
func (e *ErrorInfo) Error() string {
	if e == nil {
		return ""
	}
	if e.goroutineID != currentGoroutineID() || len(e.context) == 0 {
		return e.code.String()
	}
	msg := e.code.String()
	for _, c := range e.context {
		msg = fmt.Sprintf("%s: %s", c, msg)
	}
	return msg
}

// Is supports errors.Is(err, code.Sentinel()) by comparing taxonomy codes.
func (e *ErrorInfo) Is(target error) bool {
	if e == nil {
		return false
	}
	return e.code.Sentinel() == target
}

// currentGoroutineID() parses the current goroutine's id out of a runtime
// stack trace — the standard best-effort trick for a "thread-local" id in
// Go, used here purely to detect Result/ErrorInfo misuse across
// goroutines (in every build), never for scheduling decisions.
func currentGoroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return -1
	}
	id, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		return -1
	}
	return id
}

// Result[T] is either a value of T or an *ErrorInfo.5.
type Result[T any] struct {
	value T
	err *ErrorInfo
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Err() wraps a failure under code, with an initial context message.
func Err[T any](code ErrCode, msg string) Result[T] {
	info := NewErrorInfo(code)
	info.WithContext(msg)
	return Result[T]{err: info}
}

// Wrap lifts an existing *ErrorInfo (e.g. reduced from a parallel region's
// reduce.ErrorInfo) into a Result[T].
func Wrap[T any](info *ErrorInfo) Result[T] { return Result[T]{err: info} }

// IsOk() reports whether r holds a value rather than an error.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Value() returns the held value; the zero value of T if r holds an error.
func (r Result[T]) Value() T { return r.value }

// Err() returns the held *ErrorInfo, or nil if r holds a value.
func (r Result[T]) Err() *ErrorInfo { return r.err }

// Unwrap returns (value, error) in the conventional Go shape, for callers
// that prefer idiomatic error handling over inspecting Result directly.
func (r Result[T]) Unwrap() (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	return r.value, r.err
}

// Annotate prepends msg to the held error's context; it takes no
// file/line argument, so any location must be part of msg. Matching:
// "callers either propagate unchanged or annotate with a single string of
// context and (file,line) before returning." A no-op on a successful Result.
func (r Result[T]) Annotate(msg string) Result[T] {
	if r.err != nil {
		r.err.WithContext(msg)
	}
	return r
}
