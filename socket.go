package srt

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/lumastream/srt/internal"
	"github.com/lumastream/srt/srtopts"
)

// Socket is a single SRT socket. The zero value is not usable; construct
// through NewSocket, Dial, Listen or Accept.
//
// A blocking socket's Read, Write and Accept wait for the operation to
// complete. With srtopts.Nonblocking they instead fail with an error in
// CategoryWouldBlock and a Poller says when to retry.
type Socket struct {
	fd          internal.SocketID
	nonblocking bool
}

// NewSocket creates an unbound socket and applies opts to it.
func NewSocket(opts ...srtopts.Option) (*Socket, error) {
	fd := internal.NewSocket()
	if fd == internal.InvalidSocket {
		return nil, LastError()
	}
	s := &Socket{fd: fd}
	if err := s.applyOptions(opts); err != nil {
		internal.CloseSocket(fd)
		return nil, err
	}
	return s, nil
}

func (s *Socket) applyOptions(opts []srtopts.Option) error {
	for _, opt := range opts {
		var rc int
		switch opt.Type() {
		case srtopts.TypeNonblocking:
			v := opt.Value().(bool)
			s.nonblocking = v
			if rc = internal.SetFlagBool(s.fd, internal.OptRcvSyn, !v); rc == 0 {
				rc = internal.SetFlagBool(s.fd, internal.OptSndSyn, !v)
			}
		case srtopts.TypeMessageAPI:
			rc = internal.SetFlagBool(s.fd, internal.OptMessageAPI, opt.Value().(bool))
		case srtopts.TypePassphrase:
			rc = internal.SetFlagString(s.fd, internal.OptPassphrase, opt.Value().(string))
		case srtopts.TypeStreamID:
			rc = internal.SetFlagString(s.fd, internal.OptStreamID, opt.Value().(string))
		case srtopts.TypeLatency:
			rc = internal.SetFlagInt(s.fd, internal.OptLatency, int(opt.Value().(time.Duration)/time.Millisecond))
		case srtopts.TypePayloadSize:
			rc = internal.SetFlagInt(s.fd, internal.OptPayloadSize, opt.Value().(int))
		case srtopts.TypeConnectTimeout:
			rc = internal.SetFlagInt(s.fd, internal.OptConnTimeo, int(opt.Value().(time.Duration)/time.Millisecond))
		case srtopts.TypeTooLatePacketDrop:
			rc = internal.SetFlagBool(s.fd, internal.OptTLPktDrop, opt.Value().(bool))
		default:
			return fmt.Errorf("unsupported option %s", opt.Type())
		}
		if err := check(rc); err != nil {
			return fmt.Errorf("cannot apply option %s: %w", opt.Type(), err)
		}
	}
	return nil
}

// ID exposes the raw socket handle for interop with tooling that speaks the
// C API directly.
func (s *Socket) ID() int32 {
	return int32(s.fd)
}

// Bind attaches the socket to a local UDP address. A port of 0 picks an
// ephemeral one; read it back with LocalAddr.
func (s *Socket) Bind(addr string) error {
	udp, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return err
	}
	rc, err := internal.Bind(s.fd, udp)
	if err != nil {
		return err
	}
	return check(rc)
}

// Listen marks a bound socket as accepting connections, queueing up to
// backlog pending ones.
func (s *Socket) Listen(backlog int) error {
	return check(internal.Listen(s.fd, backlog))
}

// Accept takes the next pending connection off a listening socket,
// returning the connected socket and the peer's address. On a nonblocking
// listener with nothing pending the error is in CategoryWouldBlock.
func (s *Socket) Accept() (*Socket, *net.UDPAddr, error) {
	peer, addr := internal.Accept(s.fd)
	if peer == internal.InvalidSocket {
		return nil, nil, LastError()
	}
	return &Socket{fd: peer, nonblocking: s.nonblocking}, addr, nil
}

// Connect attempts a caller-to-listener connection to addr. When the peer
// turns the attempt down the returned *Error has CodeConnRejected with its
// Reason already refined from the socket's reject-reason slot.
func (s *Socket) Connect(addr string) error {
	udp, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return err
	}
	rc, err := internal.Connect(s.fd, udp)
	if err != nil {
		return err
	}
	err = check(rc)
	var srtErr *Error
	if errors.As(err, &srtErr) && srtErr.Code == CodeConnRejected {
		srtErr.Reason = s.RejectReason()
	}
	return err
}

// Latency reports the socket's receiver buffering delay. After the
// handshake this is the negotiated value, which may be higher than the one
// set through srtopts.Latency.
func (s *Socket) Latency() (time.Duration, error) {
	ms, rc := internal.GetFlagInt(s.fd, internal.OptLatency)
	return Check(time.Duration(ms)*time.Millisecond, rc)
}

// RejectReason reads and classifies the socket's reject-reason slot. Only
// meaningful after a connection attempt failed with CodeConnRejected; at
// other times it reads RejectUnknown.
func (s *Socket) RejectReason() RejectReason {
	return rejectReasonFromCode(internal.RejectCode(internal.RejectReason(s.fd)))
}

// Read reads up to len(b) bytes of the incoming stream. In message mode it
// behaves like ReadMessage.
func (s *Socket) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n := internal.Recv(s.fd, b)
	if n == -1 {
		return 0, LastError()
	}
	return n, nil
}

// Write sends len(b) bytes into the outgoing stream.
func (s *Socket) Write(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n := internal.Send(s.fd, b)
	if n == -1 {
		return 0, LastError()
	}
	return n, nil
}

// ReadMessage reads one whole message into b. b must be large enough for
// the full message or the read fails with CodeLargeMessage.
func (s *Socket) ReadMessage(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n := internal.RecvMsg(s.fd, b)
	if n == -1 {
		return 0, LastError()
	}
	return n, nil
}

// WriteMessage sends b as a single message, delivered whole or not at all.
// Requires srtopts.MessageAPI on both ends.
func (s *Socket) WriteMessage(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n := internal.SendMsg(s.fd, b)
	if n == -1 {
		return 0, LastError()
	}
	return n, nil
}

// LocalAddr reports the address the socket is bound to.
func (s *Socket) LocalAddr() (*net.UDPAddr, error) {
	addr, rc := internal.SockName(s.fd)
	return Check(addr, rc)
}

// RemoteAddr reports the peer's address on a connected socket.
func (s *Socket) RemoteAddr() (*net.UDPAddr, error) {
	addr, rc := internal.PeerName(s.fd)
	return Check(addr, rc)
}

// Close releases the socket. Pending data is given the linger grace to
// drain.
func (s *Socket) Close() error {
	return check(internal.CloseSocket(s.fd))
}
