package srterrors

import "errors"

// One sentinel per portable error category, for callers that want to react
// to whole families of failures with errors.Is instead of matching every
// ErrorCode.
var (
	ErrConnectionRefused = errors.New("connection refused")
	ErrConnectionAborted = errors.New("connection aborted")
	ErrNotConnected      = errors.New("socket not connected")
	ErrTimedOut          = errors.New("operation timed out")
	ErrWouldBlock        = errors.New("operation would block")
	ErrAddrInUse         = errors.New("address already in use")
	ErrAddrNotAvailable  = errors.New("address not available")
	ErrInvalidInput      = errors.New("invalid input")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNotFound          = errors.New("not found")
)
