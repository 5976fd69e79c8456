package srt

import (
	"errors"
	"strings"
	"testing"

	"github.com/lumastream/srt/internal"
	"github.com/lumastream/srt/srterrors"
)

func TestClassificationTotality(t *testing.T) {
	if len(errnoCodes) != len(internal.Errnos) {
		t.Fatalf("classification table has %d entries, library defines %d codes",
			len(errnoCodes), len(internal.Errnos))
	}

	seen := make(map[ErrorCode]bool)
	for _, errno := range internal.Errnos {
		code, ok := errnoCodes[errno]
		if !ok {
			t.Fatalf("no classification for library code %d", errno)
		}
		if seen[code] {
			t.Fatalf("library code %d maps to already-used variant %v", errno, code)
		}
		seen[code] = true
	}

	if len(seen) != int(maxErrorCode) {
		t.Fatalf("classification reaches %d of %d variants", len(seen), maxErrorCode)
	}
}

func TestClassificationSpotChecks(t *testing.T) {
	for errno, want := range map[internal.Errno]ErrorCode{
		internal.ErrnoUnknown:  CodeUnknown,
		internal.ErrnoSuccess:  CodeSuccess,
		internal.ErrnoConnRej:  CodeConnRejected,
		internal.ErrnoNoConn:   CodeNotConnected,
		internal.ErrnoWrPerm:   CodeWritePermission,
		internal.ErrnoTimeout:  CodeTimeout,
		internal.ErrnoAsyncRcv: CodeAsyncRecv,
		internal.ErrnoPeerErr:  CodePeerError,
	} {
		if got := errorFromErrno(errno).Code; got != want {
			t.Fatalf("library code %d classified as %v, want %v", errno, got, want)
		}
	}
}

func TestClassificationIsDeterministic(t *testing.T) {
	for _, errno := range internal.Errnos {
		first := errorFromErrno(errno)
		second := errorFromErrno(errno)
		if first.Code != second.Code || first.Reason != second.Reason {
			t.Fatalf("library code %d classified differently across calls: %v vs %v",
				errno, first, second)
		}
	}
}

func TestUnrecognizedErrnoPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a code outside the classification table")
		}
	}()
	errorFromErrno(internal.Errno(424242))
}

func TestConnRejectedStartsWithUnknownReason(t *testing.T) {
	e := errorFromErrno(internal.ErrnoConnRej)
	if e.Code != CodeConnRejected {
		t.Fatalf("got %v", e.Code)
	}
	if e.Reason != RejectUnknown {
		t.Fatalf("reason should start out unknown, got %v", e.Reason)
	}
}

func TestErrorDescriptions(t *testing.T) {
	for code := ErrorCode(0); code < maxErrorCode; code++ {
		if errorCodeDescriptions[code] == "" {
			t.Fatalf("variant %d has no description", code)
		}
	}

	e := &Error{Code: CodeConnRejected, Reason: RejectBadSecret}
	if !strings.Contains(e.Error(), "wrong password") {
		t.Fatalf("rejected error should carry its reason, got %q", e.Error())
	}
}

func TestCheckSuccess(t *testing.T) {
	v, err := Check("ok", 0)
	if err != nil {
		t.Fatal(err)
	}
	if v != "ok" {
		t.Fatalf("got %q", v)
	}
}

func TestCheckFailureClassifies(t *testing.T) {
	defer func(old func() internal.Errno) { readLastError = old }(readLastError)
	readLastError = func() internal.Errno { return internal.ErrnoTimeout }

	v, err := Check("ok", -1)
	if v != "" {
		t.Fatalf("failure must not leak the success value, got %q", v)
	}
	var srtErr *Error
	if !errors.As(err, &srtErr) {
		t.Fatalf("got %T", err)
	}
	if srtErr.Code != CodeTimeout {
		t.Fatalf("got %v", srtErr.Code)
	}
	if !errors.Is(err, srterrors.ErrTimedOut) {
		t.Fatal("timeout should match srterrors.ErrTimedOut")
	}
}

func TestCheckUnexpectedReturnCodePanics(t *testing.T) {
	for _, rc := range []int{7, 1, -2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("return code %d should panic, not be interpreted", rc)
				}
			}()
			Check(0, rc)
		}()
	}
}

func TestErrorNetSemantics(t *testing.T) {
	timeout := &Error{Code: CodeTimeout}
	if !timeout.Timeout() || !timeout.Temporary() {
		t.Fatal("timeout must report Timeout and Temporary")
	}

	wouldBlock := &Error{Code: CodeAsyncSend}
	if wouldBlock.Timeout() {
		t.Fatal("would-block is not a timeout")
	}
	if !wouldBlock.Temporary() {
		t.Fatal("would-block is temporary")
	}

	lost := &Error{Code: CodeConnLost}
	if lost.Timeout() || lost.Temporary() {
		t.Fatal("a broken connection is neither a timeout nor temporary")
	}
}
