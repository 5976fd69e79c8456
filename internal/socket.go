package internal

/*
#include <srt/srt.h>
#include <stdlib.h>
*/
import "C"

import (
	"net"
	"unsafe"

	"golang.org/x/sys/unix"
)

// SockOpt identifies a socket flag of the C API.
type SockOpt int

var (
	OptRcvSyn      = SockOpt(C.SRTO_RCVSYN)
	OptSndSyn      = SockOpt(C.SRTO_SNDSYN)
	OptMessageAPI  = SockOpt(C.SRTO_MESSAGEAPI)
	OptPassphrase  = SockOpt(C.SRTO_PASSPHRASE)
	OptStreamID    = SockOpt(C.SRTO_STREAMID)
	OptLatency     = SockOpt(C.SRTO_LATENCY)
	OptPayloadSize = SockOpt(C.SRTO_PAYLOADSIZE)
	OptConnTimeo   = SockOpt(C.SRTO_CONNTIMEO)
	OptTLPktDrop   = SockOpt(C.SRTO_TLPKTDROP)
)

// NewSocket creates an SRT socket. Returns InvalidSocket on failure.
func NewSocket() SocketID {
	return SocketID(C.srt_create_socket())
}

// CloseSocket closes and invalidates the socket handle.
func CloseSocket(fd SocketID) int {
	return int(C.srt_close(C.SRTSOCKET(fd)))
}

func Bind(fd SocketID, addr *net.UDPAddr) (int, error) {
	sa, salen, err := rawSockaddr(addr)
	if err != nil {
		return 0, err
	}
	rc := C.srt_bind(
		C.SRTSOCKET(fd),
		(*C.struct_sockaddr)(unsafe.Pointer(&sa)),
		C.int(salen),
	)
	return int(rc), nil
}

func Connect(fd SocketID, addr *net.UDPAddr) (int, error) {
	sa, salen, err := rawSockaddr(addr)
	if err != nil {
		return 0, err
	}
	rc := C.srt_connect(
		C.SRTSOCKET(fd),
		(*C.struct_sockaddr)(unsafe.Pointer(&sa)),
		C.int(salen),
	)
	return int(rc), nil
}

func Listen(fd SocketID, backlog int) int {
	return int(C.srt_listen(C.SRTSOCKET(fd), C.int(backlog)))
}

// Accept takes the next pending connection off the listener's queue.
// Returns InvalidSocket when there is none to take; the last-error slot
// holds the cause.
func Accept(fd SocketID) (SocketID, *net.UDPAddr) {
	var sa unix.RawSockaddrInet6
	salen := C.int(unsafe.Sizeof(sa))
	peer := C.srt_accept(
		C.SRTSOCKET(fd),
		(*C.struct_sockaddr)(unsafe.Pointer(&sa)),
		&salen,
	)
	if SocketID(peer) == InvalidSocket {
		return InvalidSocket, nil
	}
	return SocketID(peer), fromRawSockaddr(&sa)
}

// Send writes up to len(b) bytes. Returns the byte count, or -1 with the
// cause in the last-error slot.
func Send(fd SocketID, b []byte) int {
	return int(C.srt_send(
		C.SRTSOCKET(fd),
		(*C.char)(unsafe.Pointer(&b[0])),
		C.int(len(b)),
	))
}

// Recv reads up to len(b) bytes. Returns the byte count, or -1 with the
// cause in the last-error slot.
func Recv(fd SocketID, b []byte) int {
	return int(C.srt_recv(
		C.SRTSOCKET(fd),
		(*C.char)(unsafe.Pointer(&b[0])),
		C.int(len(b)),
	))
}

// SendMsg writes b as a single message of the message API.
func SendMsg(fd SocketID, b []byte) int {
	return int(C.srt_sendmsg2(
		C.SRTSOCKET(fd),
		(*C.char)(unsafe.Pointer(&b[0])),
		C.int(len(b)),
		nil,
	))
}

// RecvMsg reads one whole message of the message API into b.
func RecvMsg(fd SocketID, b []byte) int {
	return int(C.srt_recvmsg2(
		C.SRTSOCKET(fd),
		(*C.char)(unsafe.Pointer(&b[0])),
		C.int(len(b)),
		nil,
	))
}

// SockName reports the local address the socket is bound to.
func SockName(fd SocketID) (*net.UDPAddr, int) {
	var sa unix.RawSockaddrInet6
	salen := C.int(unsafe.Sizeof(sa))
	rc := C.srt_getsockname(
		C.SRTSOCKET(fd),
		(*C.struct_sockaddr)(unsafe.Pointer(&sa)),
		&salen,
	)
	if rc != 0 {
		return nil, int(rc)
	}
	return fromRawSockaddr(&sa), 0
}

// PeerName reports the remote address of a connected socket.
func PeerName(fd SocketID) (*net.UDPAddr, int) {
	var sa unix.RawSockaddrInet6
	salen := C.int(unsafe.Sizeof(sa))
	rc := C.srt_getpeername(
		C.SRTSOCKET(fd),
		(*C.struct_sockaddr)(unsafe.Pointer(&sa)),
		&salen,
	)
	if rc != 0 {
		return nil, int(rc)
	}
	return fromRawSockaddr(&sa), 0
}

func SetFlagBool(fd SocketID, opt SockOpt, v bool) int {
	val := C.int(0)
	if v {
		val = 1
	}
	return int(C.srt_setsockflag(
		C.SRTSOCKET(fd),
		C.SRT_SOCKOPT(opt),
		unsafe.Pointer(&val),
		C.int(unsafe.Sizeof(val)),
	))
}

func SetFlagInt(fd SocketID, opt SockOpt, v int) int {
	val := C.int(v)
	return int(C.srt_setsockflag(
		C.SRTSOCKET(fd),
		C.SRT_SOCKOPT(opt),
		unsafe.Pointer(&val),
		C.int(unsafe.Sizeof(val)),
	))
}

func SetFlagString(fd SocketID, opt SockOpt, v string) int {
	cs := C.CString(v)
	defer C.free(unsafe.Pointer(cs))
	return int(C.srt_setsockflag(
		C.SRTSOCKET(fd),
		C.SRT_SOCKOPT(opt),
		unsafe.Pointer(cs),
		C.int(len(v)),
	))
}

func GetFlagInt(fd SocketID, opt SockOpt) (int, int) {
	var val C.int
	vlen := C.int(unsafe.Sizeof(val))
	rc := C.srt_getsockflag(
		C.SRTSOCKET(fd),
		C.SRT_SOCKOPT(opt),
		unsafe.Pointer(&val),
		&vlen,
	)
	return int(val), int(rc)
}
