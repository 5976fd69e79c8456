package srt

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/lumastream/srt/srterrors"
	"github.com/lumastream/srt/srtopts"
)

func TestMain(m *testing.M) {
	if err := Startup(); err != nil {
		panic(err)
	}
	code := m.Run()
	Cleanup()
	os.Exit(code)
}

func TestVersion(t *testing.T) {
	v := Version()
	var major, minor, patch int
	if _, err := fmt.Sscanf(v, "%d.%d.%d", &major, &minor, &patch); err != nil {
		t.Fatalf("malformed version %q: %v", v, err)
	}
	if major < 1 {
		t.Fatalf("implausible version %q", v)
	}
}

func TestLoopbackStreamTransfer(t *testing.T) {
	ln, err := Listen("127.0.0.1:0", 1)
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	addr, err := ln.LocalAddr()
	if err != nil {
		t.Fatal(err)
	}
	if addr.Port == 0 {
		t.Fatal("bind to port 0 should have picked an ephemeral port")
	}

	payload := []byte("live from the loopback interface")

	serverDone := make(chan error, 1)
	go func() {
		peer, _, err := ln.Accept()
		if err != nil {
			serverDone <- err
			return
		}
		defer peer.Close()

		b := make([]byte, 1500)
		n, err := peer.Read(b)
		if err != nil {
			serverDone <- err
			return
		}
		if !bytes.Equal(b[:n], payload) {
			serverDone <- fmt.Errorf("got %q", b[:n])
			return
		}
		serverDone <- nil
	}()

	client, err := Dial(addr.String())
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	n, err := client.Write(payload)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(payload) {
		t.Fatalf("short write: %d of %d", n, len(payload))
	}

	select {
	case err := <-serverDone:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server side timed out")
	}

	if _, err := client.RemoteAddr(); err != nil {
		t.Fatal(err)
	}

	latency, err := client.Latency()
	if err != nil {
		t.Fatal(err)
	}
	if latency < 0 {
		t.Fatalf("negotiated latency cannot be negative, got %v", latency)
	}

	stats, err := client.Stats(false)
	if err != nil {
		t.Fatal(err)
	}
	if stats.ByteSentTotal == 0 {
		t.Fatal("stats should count the sent payload")
	}
}

func TestLoopbackMessageTransfer(t *testing.T) {
	ln, err := Listen("127.0.0.1:0", 1, srtopts.MessageAPI(true))
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	addr, err := ln.LocalAddr()
	if err != nil {
		t.Fatal(err)
	}

	serverDone := make(chan error, 1)
	go func() {
		peer, _, err := ln.Accept()
		if err != nil {
			serverDone <- err
			return
		}
		defer peer.Close()

		b := make([]byte, 1500)
		for _, want := range []string{"first", "second"} {
			n, err := peer.ReadMessage(b)
			if err != nil {
				serverDone <- err
				return
			}
			if string(b[:n]) != want {
				serverDone <- fmt.Errorf("message boundary lost: got %q, want %q", b[:n], want)
				return
			}
		}
		serverDone <- nil
	}()

	client, err := Dial(addr.String(), srtopts.MessageAPI(true))
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	for _, msg := range []string{"first", "second"} {
		if _, err := client.WriteMessage([]byte(msg)); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case err := <-serverDone:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server side timed out")
	}
}

func TestNonblockingAcceptWouldBlock(t *testing.T) {
	ln, err := Listen("127.0.0.1:0", 1, srtopts.Nonblocking(true))
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	_, _, err = ln.Accept()
	if err == nil {
		t.Fatal("accept with nothing pending should fail")
	}
	if !errors.Is(err, srterrors.ErrWouldBlock) {
		t.Fatalf("got %v, want a would-block failure", err)
	}
}

func TestConnectRejectedBadSecret(t *testing.T) {
	ln, err := Listen("127.0.0.1:0", 1, srtopts.Passphrase("correct horse battery"))
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	addr, err := ln.LocalAddr()
	if err != nil {
		t.Fatal(err)
	}

	_, err = Dial(addr.String(), srtopts.Passphrase("wrong horse battery"))
	if err == nil {
		t.Fatal("handshake with a mismatched passphrase should be rejected")
	}

	var srtErr *Error
	if !errors.As(err, &srtErr) {
		t.Fatalf("got %T: %v", err, err)
	}
	if srtErr.Code != CodeConnRejected {
		t.Fatalf("got %v, want %v", srtErr.Code, CodeConnRejected)
	}
	if srtErr.Reason != RejectBadSecret {
		t.Fatalf("got reason %v, want %v", srtErr.Reason, RejectBadSecret)
	}
	if !errors.Is(err, srterrors.ErrConnectionRefused) {
		t.Fatal("a rejected connection projects to connection-refused")
	}
}

func TestWriteOnClosedSocket(t *testing.T) {
	s, err := NewSocket()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	_, err = s.Write([]byte("into the void"))
	var srtErr *Error
	if !errors.As(err, &srtErr) {
		t.Fatalf("got %T: %v", err, err)
	}
	if srtErr.Code != CodeInvalidSock {
		t.Fatalf("got %v, want %v", srtErr.Code, CodeInvalidSock)
	}
	if !errors.Is(err, srterrors.ErrAddrNotAvailable) {
		t.Fatal("an invalid socket projects to address-not-available")
	}
}
