package result

import "errors"

// ErrCode enumerates the error taxonomy every Result and ErrorInfo carries.
type ErrCode int

const (
	// Ok is the zero value: no error.
	Ok ErrCode = iota
	InvalidArgument
	NotImplemented
	NotFound
	ArrowError
	JSONParseFailed
	JSONDumpFailed
	HTTPError
	PropertyNotFound
	AlreadyExists
	TypeError
	AssertionFailed
	GraphUpdateFailed
)

// sentinels maps each ErrCode onto a package-level sentinel error, so
// callers can branch with errors.Is instead of string comparison.
var sentinels = map[ErrCode]error{
	InvalidArgument: errors.New("result: invalid argument"),
	NotImplemented: errors.New("result: not implemented"),
	NotFound: errors.New("result: not found"),
	ArrowError: errors.New("result: arrow error"),
	JSONParseFailed: errors.New("result: json parse failed"),
	JSONDumpFailed: errors.New("result: json dump failed"),
	HTTPError: errors.New("result: http error"),
	PropertyNotFound: errors.New("result: property not found"),
	AlreadyExists: errors.New("result: already exists"),
	TypeError: errors.New("result: type error"),
	AssertionFailed: errors.New("result: assertion failed"),
	GraphUpdateFailed: errors.New("result: graph update failed"),
}

// Sentinel() returns the package-level sentinel error for code, or nil for Ok.
func (c ErrCode) Sentinel() error { return sentinels[c] }

// Condition() approximates "maps to an STL error-condition"
// (e.g. TypeError -> invalid_argument; PropertyNotFound -> no_such_file_or_directory;
// AlreadyExists -> file_exists) as a short descriptive string, since Go has
// no direct analogue to std::error_condition.
func (c ErrCode) Condition() string {
	switch c {
	case InvalidArgument, TypeError:
		return "invalid_argument"
	case PropertyNotFound, NotFound:
		return "no_such_file_or_directory"
	case AlreadyExists:
		return "file_exists"
	case AssertionFailed:
		return "assertion_failed"
	case GraphUpdateFailed:
		return "io_error"
	case NotImplemented:
		return "not_supported"
	default:
		return "unknown"
	}
}

func (c ErrCode) String() string {
	if s := sentinels[c]; s != nil {
		return s.Error()
	}
	return "result: ok"
}
