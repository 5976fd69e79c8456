package srt

import (
	"fmt"

	"github.com/lumastream/srt/internal"
)

// RejectReason says why a connection attempt was turned down. It is the
// payload of CodeConnRejected errors. Like ErrorCode, the set is closed and
// the mapping from the library's raw codes is total.
type RejectReason int

const (
	RejectUnknown RejectReason = iota // initial value while the attempt is in progress
	RejectSystem
	RejectPeer
	RejectResource
	RejectRogue
	RejectBacklog
	RejectIPE
	RejectClose
	RejectVersion
	RejectRdvCookie
	RejectBadSecret
	RejectUnsecure
	RejectMessageAPI
	RejectCongestion
	RejectFilter
	RejectGroup
	RejectTimeout

	maxRejectReason
)

var rejectReasonDescriptions = map[RejectReason]string{
	RejectUnknown:    "rejection reason unknown or attempt still in progress",
	RejectSystem:     "broken due to a system function error",
	RejectPeer:       "connection was rejected by the peer",
	RejectResource:   "internal problem with resource allocation",
	RejectRogue:      "incorrect data in handshake messages",
	RejectBacklog:    "listener's backlog exceeded",
	RejectIPE:        "internal program error",
	RejectClose:      "socket is closing",
	RejectVersion:    "peer is an older version than the agent's minimum",
	RejectRdvCookie:  "rendezvous cookie collision",
	RejectBadSecret:  "wrong password",
	RejectUnsecure:   "password required or unexpected",
	RejectMessageAPI: "stream API and message API collision",
	RejectCongestion: "incompatible congestion-controller type",
	RejectFilter:     "incompatible packet filter",
	RejectGroup:      "incompatible group",
	RejectTimeout:    "connection timed out",
}

func (r RejectReason) String() string {
	if s, ok := rejectReasonDescriptions[r]; ok {
		return s
	}
	return fmt.Sprintf("reject reason %d", int(r))
}

var rejectCodes = map[internal.RejectCode]RejectReason{
	internal.RejUnknown:    RejectUnknown,
	internal.RejSystem:     RejectSystem,
	internal.RejPeer:       RejectPeer,
	internal.RejResource:   RejectResource,
	internal.RejRogue:      RejectRogue,
	internal.RejBacklog:    RejectBacklog,
	internal.RejIPE:        RejectIPE,
	internal.RejClose:      RejectClose,
	internal.RejVersion:    RejectVersion,
	internal.RejRdvCookie:  RejectRdvCookie,
	internal.RejBadSecret:  RejectBadSecret,
	internal.RejUnsecure:   RejectUnsecure,
	internal.RejMessageAPI: RejectMessageAPI,
	internal.RejCongestion: RejectCongestion,
	internal.RejFilter:     RejectFilter,
	internal.RejGroup:      RejectGroup,
	internal.RejTimeout:    RejectTimeout,
}

// rejectReasonFromCode classifies a raw reject-reason code. Same policy as
// the primary table: a code outside it panics instead of degrading to
// RejectUnknown, which would hide new rejection modes behind a library
// upgrade.
func rejectReasonFromCode(raw internal.RejectCode) RejectReason {
	r, ok := rejectCodes[raw]
	if !ok {
		panic(fmt.Sprintf("srt: unrecognized reject reason %d, classification table out of date", int32(raw)))
	}
	return r
}
