// Package srt is a binding to the SRT library for live, low-latency stream
// transport over UDP.
//
// The library reports failures through an integer return code plus a
// thread-local last-error slot; this package turns that contract into
// structured errors. Every failing operation yields an *Error carrying one
// of the closed set of ErrorCodes, which can be matched exactly or
// projected onto a coarse portable Category (see srterrors for the
// matching sentinels).
//
// Call Startup once before using any socket and Cleanup when done.
package srt

import (
	"fmt"

	"github.com/lumastream/srt/internal"
)

// Startup initializes the library's global state. Calling it again after a
// successful call is a no-op.
func Startup() error {
	if rc := internal.Startup(); rc == -1 {
		return LastError()
	}
	return nil
}

// Cleanup tears down the library's global state. All sockets must be
// closed first.
func Cleanup() error {
	return check(internal.Cleanup())
}

// Version reports the linked library version, e.g. "1.5.3".
func Version() string {
	v := internal.Version()
	return fmt.Sprintf("%d.%d.%d", v>>16, (v>>8)&0xff, v&0xff)
}
