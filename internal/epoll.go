package internal

/*
#include <srt/srt.h>
*/
import "C"

import "unsafe"

// EpollID is the foreign library's handle for one epoll container.
type EpollID int32

var (
	EpollIn  = int(C.SRT_EPOLL_IN)
	EpollOut = int(C.SRT_EPOLL_OUT)
	EpollErr = int(C.SRT_EPOLL_ERR)
)

// EpollEvent mirrors the layout of SRT_EPOLL_EVENT so a slice of these can
// be handed to the C API directly.
type EpollEvent struct {
	Socket SocketID
	Events int32
}

func EpollCreate() EpollID {
	return EpollID(C.srt_epoll_create())
}

func EpollRelease(eid EpollID) int {
	return int(C.srt_epoll_release(C.int(eid)))
}

func EpollAdd(eid EpollID, fd SocketID, events int) int {
	ev := C.int(events)
	return int(C.srt_epoll_add_usock(C.int(eid), C.SRTSOCKET(fd), &ev))
}

func EpollUpdate(eid EpollID, fd SocketID, events int) int {
	ev := C.int(events)
	return int(C.srt_epoll_update_usock(C.int(eid), C.SRTSOCKET(fd), &ev))
}

func EpollRemove(eid EpollID, fd SocketID) int {
	return int(C.srt_epoll_remove_usock(C.int(eid), C.SRTSOCKET(fd)))
}

// EpollWait fills events with the sockets that became ready and returns how
// many, 0 after an uneventful timeout, or -1 with the cause in the
// last-error slot. timeoutMS < 0 blocks until something is ready.
func EpollWait(eid EpollID, events []EpollEvent, timeoutMS int64) int {
	return int(C.srt_epoll_uwait(
		C.int(eid),
		(*C.SRT_EPOLL_EVENT)(unsafe.Pointer(&events[0])),
		C.int(len(events)),
		C.int64_t(timeoutMS),
	))
}
