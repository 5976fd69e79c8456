package srt

import (
	"fmt"

	"github.com/lumastream/srt/srterrors"
)

// Category is a small, protocol-agnostic classification of failures for
// callers that do not care which of the ~40 specific codes occurred. The
// projection from ErrorCode is deliberately lossy and one-way; match on
// ErrorCode directly when the distinction matters.
type Category int

const (
	CategoryOther Category = iota
	CategoryConnectionRefused
	CategoryConnectionAborted
	CategoryNotConnected
	CategoryTimedOut
	CategoryWouldBlock
	CategoryAddrInUse
	CategoryAddrNotAvailable
	CategoryInvalidInput
	CategoryPermissionDenied
	CategoryNotFound
)

func (c Category) String() string {
	switch c {
	case CategoryOther:
		return "other"
	case CategoryConnectionRefused:
		return "connection refused"
	case CategoryConnectionAborted:
		return "connection aborted"
	case CategoryNotConnected:
		return "not connected"
	case CategoryTimedOut:
		return "timed out"
	case CategoryWouldBlock:
		return "would block"
	case CategoryAddrInUse:
		return "address in use"
	case CategoryAddrNotAvailable:
		return "address not available"
	case CategoryInvalidInput:
		return "invalid input"
	case CategoryPermissionDenied:
		return "permission denied"
	case CategoryNotFound:
		return "not found"
	default:
		panic(fmt.Errorf("invalid category %d", int(c)))
	}
}

// sentinel yields the srterrors value for the category, or nil for
// CategoryOther which has none.
func (c Category) sentinel() error {
	switch c {
	case CategoryConnectionRefused:
		return srterrors.ErrConnectionRefused
	case CategoryConnectionAborted:
		return srterrors.ErrConnectionAborted
	case CategoryNotConnected:
		return srterrors.ErrNotConnected
	case CategoryTimedOut:
		return srterrors.ErrTimedOut
	case CategoryWouldBlock:
		return srterrors.ErrWouldBlock
	case CategoryAddrInUse:
		return srterrors.ErrAddrInUse
	case CategoryAddrNotAvailable:
		return srterrors.ErrAddrNotAvailable
	case CategoryInvalidInput:
		return srterrors.ErrInvalidInput
	case CategoryPermissionDenied:
		return srterrors.ErrPermissionDenied
	case CategoryNotFound:
		return srterrors.ErrNotFound
	}
	return nil
}

// Category projects the code onto its portable category. Total over the
// closed set; CodeConnRejected projects by the outer code alone, whatever
// the embedded rejection reason says.
func (c ErrorCode) Category() Category {
	switch c {
	case CodeConnSetup, CodeNoServer, CodeConnRejected, CodeSecurityFail,
		CodeConnFail, CodeRdvNoServ, CodeRdvUnbound:
		return CategoryConnectionRefused
	case CodeConnLost:
		return CategoryConnectionAborted
	case CodeNotConnected, CodeUnboundSock:
		return CategoryNotConnected
	case CodeSockFail, CodeClosed, CodeInvalidSock, CodeInvalidPollID:
		return CategoryAddrNotAvailable
	case CodeBoundSock, CodeConnectedSock, CodeDupListen:
		return CategoryAddrInUse
	case CodeInvalidReadOffset, CodeInvalidWriteOffset, CodeInvalidOp,
		CodeInvalidParam, CodeNoListen, CodeMessageAPI, CodeBufferAPI:
		return CategoryInvalidInput
	case CodeReadPermission, CodeWritePermission:
		return CategoryPermissionDenied
	case CodeFile:
		return CategoryNotFound
	case CodeTimeout:
		return CategoryTimedOut
	case CodeAsyncFail, CodeAsyncSend, CodeAsyncRecv:
		return CategoryWouldBlock
	case CodeUnknown, CodeSuccess, CodeResource, CodeThread, CodeNoBuffer,
		CodeSysObj, CodeLargeMessage, CodePollEmpty, CodeCongestion,
		CodePeerError:
		return CategoryOther
	default:
		panic(fmt.Sprintf("srt: error code %d has no category", int(c)))
	}
}
