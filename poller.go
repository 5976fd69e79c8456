package srt

import (
	"sync"
	"time"

	"github.com/lumastream/srt/internal"
)

type PollEvents int32

var (
	PollIn  = PollEvents(internal.EpollIn)
	PollOut = PollEvents(internal.EpollOut)
	PollErr = PollEvents(internal.EpollErr)
)

// PollerEvent is one ready socket reported by Wait.
type PollerEvent struct {
	Socket *Socket
	Events PollEvents
}

// Poller multiplexes readiness of nonblocking sockets over the library's
// own epoll facility. Add and Remove may be called from any goroutine;
// Wait must not be called concurrently with itself.
type Poller struct {
	id internal.EpollID

	mu      sync.Mutex
	sockets map[internal.SocketID]*Socket

	buf []internal.EpollEvent
}

func NewPoller() (*Poller, error) {
	id := internal.EpollCreate()
	if id < 0 {
		return nil, LastError()
	}
	return &Poller{
		id:      id,
		sockets: make(map[internal.SocketID]*Socket),
	}, nil
}

// Add subscribes the socket for the given readiness events.
func (p *Poller) Add(s *Socket, events PollEvents) error {
	if err := check(internal.EpollAdd(p.id, s.fd, int(events))); err != nil {
		return err
	}
	p.mu.Lock()
	p.sockets[s.fd] = s
	p.mu.Unlock()
	return nil
}

// Update replaces the socket's event subscription.
func (p *Poller) Update(s *Socket, events PollEvents) error {
	return check(internal.EpollUpdate(p.id, s.fd, int(events)))
}

// Remove unsubscribes the socket.
func (p *Poller) Remove(s *Socket) error {
	if err := check(internal.EpollRemove(p.id, s.fd)); err != nil {
		return err
	}
	p.mu.Lock()
	delete(p.sockets, s.fd)
	p.mu.Unlock()
	return nil
}

// Wait blocks until at least one subscribed socket is ready or timeout
// passes, whichever comes first. A negative timeout blocks indefinitely.
// An uneventful timeout fails with CodeTimeout, an empty poller with
// CodePollEmpty; both are ordinary recoverable errors.
func (p *Poller) Wait(timeout time.Duration) ([]PollerEvent, error) {
	p.mu.Lock()
	n := len(p.sockets)
	p.mu.Unlock()
	if n == 0 {
		return nil, &Error{Code: CodePollEmpty}
	}
	if cap(p.buf) < n {
		p.buf = make([]internal.EpollEvent, n)
	}

	ms := int64(-1)
	if timeout >= 0 {
		ms = timeout.Milliseconds()
	}

	r := internal.EpollWait(p.id, p.buf[:n], ms)
	if r == -1 {
		return nil, LastError()
	}
	if r == 0 {
		return nil, &Error{Code: CodeTimeout}
	}
	if r > n {
		r = n
	}

	out := make([]PollerEvent, 0, r)
	p.mu.Lock()
	for _, ev := range p.buf[:r] {
		if s, ok := p.sockets[ev.Socket]; ok {
			out = append(out, PollerEvent{Socket: s, Events: PollEvents(ev.Events)})
		}
	}
	p.mu.Unlock()
	return out, nil
}

// Close releases the epoll container. Subscribed sockets stay open.
func (p *Poller) Close() error {
	return check(internal.EpollRelease(p.id))
}
