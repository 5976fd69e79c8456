package srt

import (
	"fmt"

	"github.com/lumastream/srt/internal"
)

// ErrorCode identifies one of the failure modes the library reports through
// its last-error slot. The set is closed: every code the linked library can
// produce maps to exactly one ErrorCode, and an unlisted code means the
// classification table is out of date, which is a fault in this package and
// not a runtime condition.
type ErrorCode int

const (
	CodeUnknown ErrorCode = iota
	CodeSuccess
	CodeConnSetup
	CodeNoServer
	CodeConnRejected
	CodeSockFail
	CodeSecurityFail
	CodeClosed
	CodeConnFail
	CodeConnLost
	CodeNotConnected
	CodeResource
	CodeThread
	CodeNoBuffer
	CodeSysObj
	CodeFile
	CodeInvalidReadOffset
	CodeReadPermission
	CodeInvalidWriteOffset
	CodeWritePermission
	CodeInvalidOp
	CodeBoundSock
	CodeConnectedSock
	CodeInvalidParam
	CodeInvalidSock
	CodeUnboundSock
	CodeNoListen
	CodeRdvNoServ
	CodeRdvUnbound
	CodeMessageAPI
	CodeBufferAPI
	CodeDupListen
	CodeLargeMessage
	CodeInvalidPollID
	CodePollEmpty
	CodeAsyncFail
	CodeAsyncSend
	CodeAsyncRecv
	CodeTimeout
	CodeCongestion
	CodePeerError

	maxErrorCode
)

var errorCodeDescriptions = map[ErrorCode]string{
	CodeUnknown:            "internal error when setting the right error code",
	CodeSuccess:            "the last error was cleared and no error has occurred since",
	CodeConnSetup:          "general setup error resulting from internal system state",
	CodeNoServer:           "connection timed out while attempting to connect to the remote address",
	CodeConnRejected:       "connection has been rejected",
	CodeSockFail:           "an error occurred when trying to call a system function on an internally used UDP socket",
	CodeSecurityFail:       "a possible tampering with the handshake packets was detected, or an encryption request was not properly fulfilled",
	CodeClosed:             "a socket that was vital for an operation called in blocking mode has been closed during the operation",
	CodeConnFail:           "general connection failure of unknown details",
	CodeConnLost:           "the socket was properly connected, but the connection has been broken",
	CodeNotConnected:       "the socket is not connected",
	CodeResource:           "system or standard library error reported unexpectedly for unknown purpose",
	CodeThread:             "system was unable to spawn a new thread when required",
	CodeNoBuffer:           "system was unable to allocate memory for buffers",
	CodeSysObj:             "system was unable to allocate system specific objects",
	CodeFile:               "general filesystem error during file transmission",
	CodeInvalidReadOffset:  "failure when trying to read from a given position in the file",
	CodeReadPermission:     "read permission was denied when trying to read from file",
	CodeInvalidWriteOffset: "failed to set position in the written file",
	CodeWritePermission:    "write permission was denied when trying to write to a file",
	CodeInvalidOp:          "invalid operation performed for the current state of a socket",
	CodeBoundSock:          "the socket is currently bound and the required operation cannot be performed in this state",
	CodeConnectedSock:      "the socket is currently connected and therefore performing the required operation is not possible",
	CodeInvalidParam:       "call parameters for API functions have some requirements that were not satisfied",
	CodeInvalidSock:        "the API function required an ID of an entity (socket or group) and it was invalid",
	CodeUnboundSock:        "the operation to be performed on a socket requires that it first be explicitly bound",
	CodeNoListen:           "the socket passed for the operation is required to be in the listen state",
	CodeRdvNoServ:          "the required operation cannot be performed when the socket is set to rendezvous mode",
	CodeRdvUnbound:         "an attempt was made to connect to a socket set to rendezvous mode that was not first bound",
	CodeMessageAPI:         "the function was used incorrectly in the message API",
	CodeBufferAPI:          "the function was used incorrectly in the stream (buffer) API",
	CodeDupListen:          "the port tried to be bound for listening is already busy",
	CodeLargeMessage:       "size exceeded",
	CodeInvalidPollID:      "the epoll ID passed to an epoll function is invalid",
	CodePollEmpty:          "the epoll container currently has no subscribed sockets",
	CodeAsyncFail:          "general asynchronous failure",
	CodeAsyncSend:          "sending operation is not ready to perform",
	CodeAsyncRecv:          "receiving operation is not ready to perform",
	CodeTimeout:            "the operation timed out",
	CodeCongestion:         "some packets were dropped by the sender under live congestion control",
	CodePeerError:          "receiver peer is writing to a file that the agent is sending",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeDescriptions[c]; ok {
		return s
	}
	return fmt.Sprintf("error code %d", int(c))
}

// errnoCodes is the classification table: one entry per code the library
// defines for its last-error slot.
var errnoCodes = map[internal.Errno]ErrorCode{
	internal.ErrnoUnknown:        CodeUnknown,
	internal.ErrnoSuccess:        CodeSuccess,
	internal.ErrnoConnSetup:      CodeConnSetup,
	internal.ErrnoNoServer:       CodeNoServer,
	internal.ErrnoConnRej:        CodeConnRejected,
	internal.ErrnoSockFail:       CodeSockFail,
	internal.ErrnoSecFail:        CodeSecurityFail,
	internal.ErrnoClosed:         CodeClosed,
	internal.ErrnoConnFail:       CodeConnFail,
	internal.ErrnoConnLost:       CodeConnLost,
	internal.ErrnoNoConn:         CodeNotConnected,
	internal.ErrnoResource:       CodeResource,
	internal.ErrnoThread:         CodeThread,
	internal.ErrnoNoBuf:          CodeNoBuffer,
	internal.ErrnoSysObj:         CodeSysObj,
	internal.ErrnoFile:           CodeFile,
	internal.ErrnoInvRdOff:       CodeInvalidReadOffset,
	internal.ErrnoRdPerm:         CodeReadPermission,
	internal.ErrnoInvWrOff:       CodeInvalidWriteOffset,
	internal.ErrnoWrPerm:         CodeWritePermission,
	internal.ErrnoInvOp:          CodeInvalidOp,
	internal.ErrnoBoundSock:      CodeBoundSock,
	internal.ErrnoConnSock:       CodeConnectedSock,
	internal.ErrnoInvParam:       CodeInvalidParam,
	internal.ErrnoInvSock:        CodeInvalidSock,
	internal.ErrnoUnboundSock:    CodeUnboundSock,
	internal.ErrnoNoListen:       CodeNoListen,
	internal.ErrnoRdvNoServ:      CodeRdvNoServ,
	internal.ErrnoRdvUnbound:     CodeRdvUnbound,
	internal.ErrnoInvalMsgAPI:    CodeMessageAPI,
	internal.ErrnoInvalBufferAPI: CodeBufferAPI,
	internal.ErrnoDupListen:      CodeDupListen,
	internal.ErrnoLargeMsg:       CodeLargeMessage,
	internal.ErrnoInvPollID:      CodeInvalidPollID,
	internal.ErrnoPollEmpty:      CodePollEmpty,
	internal.ErrnoAsyncFail:      CodeAsyncFail,
	internal.ErrnoAsyncSnd:       CodeAsyncSend,
	internal.ErrnoAsyncRcv:       CodeAsyncRecv,
	internal.ErrnoTimeout:        CodeTimeout,
	internal.ErrnoCongest:        CodeCongestion,
	internal.ErrnoPeerErr:        CodePeerError,
}

// Error is the structured failure value handed to callers. Code is always
// set. Reason is meaningful only when Code is CodeConnRejected; it starts
// out as RejectUnknown because the last-error slot alone does not say why
// the peer turned the connection down, and is refined through
// (*Socket).RejectReason.
type Error struct {
	Code   ErrorCode
	Reason RejectReason
}

func (e *Error) Error() string {
	if e.Code == CodeConnRejected {
		return fmt.Sprintf("%s: %s", e.Code, e.Reason)
	}
	return e.Code.String()
}

// Unwrap yields the sentinel of the error's generic category, so
// errors.Is(err, srterrors.ErrTimedOut) and friends work. Errors of
// CategoryOther unwrap to nothing.
func (e *Error) Unwrap() error {
	return e.Code.Category().sentinel()
}

// Timeout reports whether the failure was a timeout, in the net.Error
// manner.
func (e *Error) Timeout() bool {
	return e.Code == CodeTimeout
}

// Temporary reports whether retrying the operation may succeed.
func (e *Error) Temporary() bool {
	return e.Timeout() || e.Code.Category() == CategoryWouldBlock
}

// readLastError is the one foreign read of the classifier; a variable so
// tests can plant codes in the slot.
var readLastError = internal.LastError

// LastError reads and classifies the calling thread's last-error slot. The
// slot is not cleared by the read.
//
// The slot is thread-local and overwritten by every failing call, so
// LastError must run on the thread that observed the failing return code,
// before any other call into the library.
func LastError() *Error {
	return errorFromErrno(readLastError())
}

func errorFromErrno(errno internal.Errno) *Error {
	code, ok := errnoCodes[errno]
	if !ok {
		panic(fmt.Sprintf("srt: unrecognized error code %d, classification table out of date", int(errno)))
	}
	e := &Error{Code: code}
	if code == CodeConnRejected {
		e.Reason = RejectUnknown
	}
	return e
}

// Check interprets the return code of a library call: 0 succeeds with ok,
// -1 classifies the last-error slot into the returned error. The library's
// calling convention guarantees no other outcome, so anything else panics;
// it means either a broken binding or an incompatible library version.
func Check[T any](ok T, returnCode int) (T, error) {
	switch returnCode {
	case 0:
		return ok, nil
	case -1:
		var zero T
		return zero, LastError()
	default:
		panic(fmt.Sprintf("srt: unexpected return code %d", returnCode))
	}
}

// check is Check for calls whose success carries no value.
func check(returnCode int) error {
	_, err := Check(struct{}{}, returnCode)
	return err
}
