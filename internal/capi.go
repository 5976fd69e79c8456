package internal

/*
#cgo LDFLAGS: -lsrt
#include <srt/srt.h>
*/
import "C"

// SocketID is the foreign library's handle for a single SRT socket.
type SocketID int32

// InvalidSocket is the handle returned by failed socket-producing calls.
const InvalidSocket = SocketID(-1)

// Errno is a raw error code read from the library's last-error slot.
type Errno int32

// One value per code the library can leave in the last-error slot. Taken
// from the SRT_ERRNO enumeration; the classification table above this
// package must stay in sync with this list.
var (
	ErrnoUnknown        = Errno(C.SRT_EUNKNOWN)
	ErrnoSuccess        = Errno(C.SRT_SUCCESS)
	ErrnoConnSetup      = Errno(C.SRT_ECONNSETUP)
	ErrnoNoServer       = Errno(C.SRT_ENOSERVER)
	ErrnoConnRej        = Errno(C.SRT_ECONNREJ)
	ErrnoSockFail       = Errno(C.SRT_ESOCKFAIL)
	ErrnoSecFail        = Errno(C.SRT_ESECFAIL)
	ErrnoClosed         = Errno(C.SRT_ESCLOSED)
	ErrnoConnFail       = Errno(C.SRT_ECONNFAIL)
	ErrnoConnLost       = Errno(C.SRT_ECONNLOST)
	ErrnoNoConn         = Errno(C.SRT_ENOCONN)
	ErrnoResource       = Errno(C.SRT_ERESOURCE)
	ErrnoThread         = Errno(C.SRT_ETHREAD)
	ErrnoNoBuf          = Errno(C.SRT_ENOBUF)
	ErrnoSysObj         = Errno(C.SRT_ESYSOBJ)
	ErrnoFile           = Errno(C.SRT_EFILE)
	ErrnoInvRdOff       = Errno(C.SRT_EINVRDOFF)
	ErrnoRdPerm         = Errno(C.SRT_ERDPERM)
	ErrnoInvWrOff       = Errno(C.SRT_EINVWROFF)
	ErrnoWrPerm         = Errno(C.SRT_EWRPERM)
	ErrnoInvOp          = Errno(C.SRT_EINVOP)
	ErrnoBoundSock      = Errno(C.SRT_EBOUNDSOCK)
	ErrnoConnSock       = Errno(C.SRT_ECONNSOCK)
	ErrnoInvParam       = Errno(C.SRT_EINVPARAM)
	ErrnoInvSock        = Errno(C.SRT_EINVSOCK)
	ErrnoUnboundSock    = Errno(C.SRT_EUNBOUNDSOCK)
	ErrnoNoListen       = Errno(C.SRT_ENOLISTEN)
	ErrnoRdvNoServ      = Errno(C.SRT_ERDVNOSERV)
	ErrnoRdvUnbound     = Errno(C.SRT_ERDVUNBOUND)
	ErrnoInvalMsgAPI    = Errno(C.SRT_EINVALMSGAPI)
	ErrnoInvalBufferAPI = Errno(C.SRT_EINVALBUFFERAPI)
	ErrnoDupListen      = Errno(C.SRT_EDUPLISTEN)
	ErrnoLargeMsg       = Errno(C.SRT_ELARGEMSG)
	ErrnoInvPollID      = Errno(C.SRT_EINVPOLLID)
	ErrnoPollEmpty      = Errno(C.SRT_EPOLLEMPTY)
	ErrnoAsyncFail      = Errno(C.SRT_EASYNCFAIL)
	ErrnoAsyncSnd       = Errno(C.SRT_EASYNCSND)
	ErrnoAsyncRcv       = Errno(C.SRT_EASYNCRCV)
	ErrnoTimeout        = Errno(C.SRT_ETIMEOUT)
	ErrnoCongest        = Errno(C.SRT_ECONGEST)
	ErrnoPeerErr        = Errno(C.SRT_EPEERERR)
)

// Errnos lists every code above, in declaration order.
var Errnos = []Errno{
	ErrnoUnknown, ErrnoSuccess, ErrnoConnSetup, ErrnoNoServer, ErrnoConnRej,
	ErrnoSockFail, ErrnoSecFail, ErrnoClosed, ErrnoConnFail, ErrnoConnLost,
	ErrnoNoConn, ErrnoResource, ErrnoThread, ErrnoNoBuf, ErrnoSysObj,
	ErrnoFile, ErrnoInvRdOff, ErrnoRdPerm, ErrnoInvWrOff, ErrnoWrPerm,
	ErrnoInvOp, ErrnoBoundSock, ErrnoConnSock, ErrnoInvParam, ErrnoInvSock,
	ErrnoUnboundSock, ErrnoNoListen, ErrnoRdvNoServ, ErrnoRdvUnbound,
	ErrnoInvalMsgAPI, ErrnoInvalBufferAPI, ErrnoDupListen, ErrnoLargeMsg,
	ErrnoInvPollID, ErrnoPollEmpty, ErrnoAsyncFail, ErrnoAsyncSnd,
	ErrnoAsyncRcv, ErrnoTimeout, ErrnoCongest, ErrnoPeerErr,
}

// RejectCode is a raw reason read from a socket's reject-reason slot after
// a connection attempt was turned down.
type RejectCode int32

var (
	RejUnknown    = RejectCode(C.SRT_REJ_UNKNOWN)
	RejSystem     = RejectCode(C.SRT_REJ_SYSTEM)
	RejPeer       = RejectCode(C.SRT_REJ_PEER)
	RejResource   = RejectCode(C.SRT_REJ_RESOURCE)
	RejRogue      = RejectCode(C.SRT_REJ_ROGUE)
	RejBacklog    = RejectCode(C.SRT_REJ_BACKLOG)
	RejIPE        = RejectCode(C.SRT_REJ_IPE)
	RejClose      = RejectCode(C.SRT_REJ_CLOSE)
	RejVersion    = RejectCode(C.SRT_REJ_VERSION)
	RejRdvCookie  = RejectCode(C.SRT_REJ_RDVCOOKIE)
	RejBadSecret  = RejectCode(C.SRT_REJ_BADSECRET)
	RejUnsecure   = RejectCode(C.SRT_REJ_UNSECURE)
	RejMessageAPI = RejectCode(C.SRT_REJ_MESSAGEAPI)
	RejCongestion = RejectCode(C.SRT_REJ_CONGESTION)
	RejFilter     = RejectCode(C.SRT_REJ_FILTER)
	RejGroup      = RejectCode(C.SRT_REJ_GROUP)
	RejTimeout    = RejectCode(C.SRT_REJ_TIMEOUT)
)

// RejectCodes lists every reject reason above, in declaration order.
var RejectCodes = []RejectCode{
	RejUnknown, RejSystem, RejPeer, RejResource, RejRogue, RejBacklog,
	RejIPE, RejClose, RejVersion, RejRdvCookie, RejBadSecret, RejUnsecure,
	RejMessageAPI, RejCongestion, RejFilter, RejGroup, RejTimeout,
}

// Startup initializes the library. Returns 0 on first initialization, 1 if
// the library was already started, -1 on failure.
func Startup() int {
	return int(C.srt_startup())
}

// Cleanup releases the library's global state.
func Cleanup() int {
	return int(C.srt_cleanup())
}

// Version reports the linked library version, encoded as
// major*0x10000 + minor*0x100 + patch.
func Version() uint32 {
	return uint32(C.srt_getversion())
}

// LastError reads the calling thread's last-error slot. The read does not
// clear the slot. It is only meaningful immediately after a failing call on
// the same thread; any intervening library call may overwrite it.
func LastError() Errno {
	return Errno(C.srt_getlasterror(nil))
}

// RejectReason reads the reject-reason slot of a socket whose connection
// attempt was turned down.
func RejectReason(fd SocketID) int32 {
	return int32(C.srt_getrejectreason(C.SRTSOCKET(fd)))
}
