package srt

import "github.com/lumastream/srt/srtopts"

// Dial creates a socket, applies opts and connects it to the listener at
// raddr.
func Dial(raddr string, opts ...srtopts.Option) (*Socket, error) {
	s, err := NewSocket(opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Connect(raddr); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Listen creates a socket, applies opts, binds it to laddr and starts
// listening with the given backlog.
func Listen(laddr string, backlog int, opts ...srtopts.Option) (*Socket, error) {
	s, err := NewSocket(opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Bind(laddr); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.Listen(backlog); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
