package internal

import (
	"encoding/binary"
	"fmt"
	"net"
	"unsafe"

	"golang.org/x/sys/unix"
)

// rawSockaddr builds the raw socket address the C API expects. SRT sockets
// are addressed like UDP sockets. A nil or empty IP binds the wildcard
// address. The returned length is the number of leading bytes of sa that
// are valid.
func rawSockaddr(addr *net.UDPAddr) (sa unix.RawSockaddrInet6, salen int, err error) {
	ip := addr.IP
	if ip == nil {
		ip = net.IPv4zero
	}

	if ip4 := ip.To4(); ip4 != nil {
		sa4 := (*unix.RawSockaddrInet4)(unsafe.Pointer(&sa))
		sa4.Family = unix.AF_INET
		binary.BigEndian.PutUint16((*[2]byte)(unsafe.Pointer(&sa4.Port))[:], uint16(addr.Port))
		copy(sa4.Addr[:], ip4)
		return sa, unix.SizeofSockaddrInet4, nil
	}

	if ip6 := ip.To16(); ip6 != nil {
		sa.Family = unix.AF_INET6
		binary.BigEndian.PutUint16((*[2]byte)(unsafe.Pointer(&sa.Port))[:], uint16(addr.Port))
		copy(sa.Addr[:], ip6)
		return sa, unix.SizeofSockaddrInet6, nil
	}

	return sa, 0, fmt.Errorf("malformed IP address %q", addr.IP)
}

// fromRawSockaddr decodes an address written back by the C API. Returns nil
// for address families SRT never produces.
func fromRawSockaddr(sa *unix.RawSockaddrInet6) *net.UDPAddr {
	switch sa.Family {
	case unix.AF_INET:
		sa4 := (*unix.RawSockaddrInet4)(unsafe.Pointer(sa))
		return &net.UDPAddr{
			IP:   append(net.IP{}, sa4.Addr[:]...),
			Port: int(binary.BigEndian.Uint16((*[2]byte)(unsafe.Pointer(&sa4.Port))[:])),
		}
	case unix.AF_INET6:
		return &net.UDPAddr{
			IP:   append(net.IP{}, sa.Addr[:]...),
			Port: int(binary.BigEndian.Uint16((*[2]byte)(unsafe.Pointer(&sa.Port))[:])),
		}
	}
	return nil
}
