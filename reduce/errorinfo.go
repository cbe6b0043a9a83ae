package reduce

import "github.com/arborcore/galoway/result"

// ErrorInfo is a Reducer specialized over *result.ErrorInfo: each worker
// reports at most one error, and Reduce() returns a single representative
// error for the whole parallel region (first non-nil slot wins, by
// worker index). This is how a parallel loop's per-iteration failures are
// folded into the single error a do-all/for-each call returns.
type ErrorInfo struct {
	slots []error
}

// NewErrorInfo allocates an ErrorInfo reducer for width workers.
func NewErrorInfo(width int) *ErrorInfo {
	return &ErrorInfo{slots: make([]error, width)}
}

// Update records err in workerID's slot. Only the first error a worker
// reports is kept; subsequent errors from the same worker are dropped,
// mirroring "first error wins" short-circuit idiom.
func (e *ErrorInfo) Update(workerID int, err error) {
	if err == nil || e.slots[workerID] != nil {
		return
	}
	e.slots[workerID] = err
}

// Reduce() returns the first non-nil slot (lowest worker id), or nil if no
// worker reported an error. A *result.ErrorInfo is returned as is; any
// other error is wrapped as GraphUpdateFailed on the calling goroutine,
// so its message stays readable there.
func (e *ErrorInfo) Reduce() error {
	for _, s := range e.slots {
		if s == nil {
			continue
		}
		if info, ok := s.(*result.ErrorInfo); ok {
			return info
		}
		return result.NewErrorInfo(result.GraphUpdateFailed).WithContext(s.Error())
	}
	return nil
}

// Reset() clears every slot.
func (e *ErrorInfo) Reset() {
	for i := range e.slots {
		e.slots[i] = nil
	}
}
