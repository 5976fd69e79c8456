package srt

import (
	"errors"
	"testing"
	"time"

	"github.com/lumastream/srt/srterrors"
	"github.com/lumastream/srt/srtopts"
)

func TestPollerWaitEmpty(t *testing.T) {
	p, err := NewPoller()
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	_, err = p.Wait(10 * time.Millisecond)
	var srtErr *Error
	if !errors.As(err, &srtErr) || srtErr.Code != CodePollEmpty {
		t.Fatalf("waiting on an empty poller got %v, want %v", err, CodePollEmpty)
	}
}

func TestPollerWaitTimeout(t *testing.T) {
	ln, err := Listen("127.0.0.1:0", 1, srtopts.Nonblocking(true))
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	p, err := NewPoller()
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	if err := p.Add(ln, PollIn); err != nil {
		t.Fatal(err)
	}

	_, err = p.Wait(50 * time.Millisecond)
	if !errors.Is(err, srterrors.ErrTimedOut) {
		t.Fatalf("got %v, want a timed-out failure", err)
	}
}

func TestPollerReportsPendingConnection(t *testing.T) {
	ln, err := Listen("127.0.0.1:0", 1, srtopts.Nonblocking(true))
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	addr, err := ln.LocalAddr()
	if err != nil {
		t.Fatal(err)
	}

	p, err := NewPoller()
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	if err := p.Add(ln, PollIn); err != nil {
		t.Fatal(err)
	}

	client, err := Dial(addr.String())
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	events, err := p.Wait(5 * time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events", len(events))
	}
	if events[0].Socket != ln {
		t.Fatal("readiness reported for the wrong socket")
	}

	peer, _, err := ln.Accept()
	if err != nil {
		t.Fatal(err)
	}
	peer.Close()

	if err := p.Remove(ln); err != nil {
		t.Fatal(err)
	}
}
