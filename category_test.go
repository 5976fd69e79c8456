package srt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumastream/srt/srterrors"
)

// Every variant's category, spelled out in full. Callers depend on these
// assignments, so a change here is an API break, not a refactor.
var wantCategories = map[ErrorCode]Category{
	CodeUnknown:            CategoryOther,
	CodeSuccess:            CategoryOther,
	CodeConnSetup:          CategoryConnectionRefused,
	CodeNoServer:           CategoryConnectionRefused,
	CodeConnRejected:       CategoryConnectionRefused,
	CodeSockFail:           CategoryAddrNotAvailable,
	CodeSecurityFail:       CategoryConnectionRefused,
	CodeClosed:             CategoryAddrNotAvailable,
	CodeConnFail:           CategoryConnectionRefused,
	CodeConnLost:           CategoryConnectionAborted,
	CodeNotConnected:       CategoryNotConnected,
	CodeResource:           CategoryOther,
	CodeThread:             CategoryOther,
	CodeNoBuffer:           CategoryOther,
	CodeSysObj:             CategoryOther,
	CodeFile:               CategoryNotFound,
	CodeInvalidReadOffset:  CategoryInvalidInput,
	CodeReadPermission:     CategoryPermissionDenied,
	CodeInvalidWriteOffset: CategoryInvalidInput,
	CodeWritePermission:    CategoryPermissionDenied,
	CodeInvalidOp:          CategoryInvalidInput,
	CodeBoundSock:          CategoryAddrInUse,
	CodeConnectedSock:      CategoryAddrInUse,
	CodeInvalidParam:       CategoryInvalidInput,
	CodeInvalidSock:        CategoryAddrNotAvailable,
	CodeUnboundSock:        CategoryNotConnected,
	CodeNoListen:           CategoryInvalidInput,
	CodeRdvNoServ:          CategoryConnectionRefused,
	CodeRdvUnbound:         CategoryConnectionRefused,
	CodeMessageAPI:         CategoryInvalidInput,
	CodeBufferAPI:          CategoryInvalidInput,
	CodeDupListen:          CategoryAddrInUse,
	CodeLargeMessage:       CategoryOther,
	CodeInvalidPollID:      CategoryAddrNotAvailable,
	CodePollEmpty:          CategoryOther,
	CodeAsyncFail:          CategoryWouldBlock,
	CodeAsyncSend:          CategoryWouldBlock,
	CodeAsyncRecv:          CategoryWouldBlock,
	CodeTimeout:            CategoryTimedOut,
	CodeCongestion:         CategoryOther,
	CodePeerError:          CategoryOther,
}

func TestCategoryProjection(t *testing.T) {
	assert.Equal(t, int(maxErrorCode), len(wantCategories))
	for code, want := range wantCategories {
		assert.Equal(t, want, code.Category(), "variant %v", code)
	}
}

func TestCategoryProjectionIsTotal(t *testing.T) {
	for code := ErrorCode(0); code < maxErrorCode; code++ {
		_ = code.Category() // must not panic
		_ = code.Category().String()
	}
}

func TestCategoryIgnoresRejectReason(t *testing.T) {
	for r := RejectReason(0); r < maxRejectReason; r++ {
		e := &Error{Code: CodeConnRejected, Reason: r}
		assert.Equal(t, CategoryConnectionRefused, e.Code.Category())
		assert.True(t, errors.Is(e, srterrors.ErrConnectionRefused))
	}
}

func TestCategorySentinels(t *testing.T) {
	for code, sentinel := range map[ErrorCode]error{
		CodeNoServer:       srterrors.ErrConnectionRefused,
		CodeConnLost:       srterrors.ErrConnectionAborted,
		CodeUnboundSock:    srterrors.ErrNotConnected,
		CodeTimeout:        srterrors.ErrTimedOut,
		CodeAsyncRecv:      srterrors.ErrWouldBlock,
		CodeDupListen:      srterrors.ErrAddrInUse,
		CodeInvalidSock:    srterrors.ErrAddrNotAvailable,
		CodeInvalidParam:   srterrors.ErrInvalidInput,
		CodeReadPermission: srterrors.ErrPermissionDenied,
		CodeFile:           srterrors.ErrNotFound,
	} {
		assert.True(t, errors.Is(&Error{Code: code}, sentinel), "variant %v", code)
	}

	// CategoryOther matches no sentinel.
	for _, sentinel := range []error{
		srterrors.ErrConnectionRefused, srterrors.ErrTimedOut,
		srterrors.ErrWouldBlock, srterrors.ErrInvalidInput,
	} {
		assert.False(t, errors.Is(&Error{Code: CodeCongestion}, sentinel))
	}
}
