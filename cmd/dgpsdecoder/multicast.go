package main

import (
	"net"

	"golang.org/x/sys/unix"
)

// multicastBuffSize is the UDP socket receive buffer size, following the
// buffer sizing in bramburn-gnssgo's stream package.
const multicastBuffSize = 1 << 20

// datagramBuffSize bounds a single read. Datagrams larger than this are
// truncated by the kernel; M.823 bit-bytes are small enough this never
// matters in practice.
const datagramBuffSize = 65536

// multicastSource is a bitsource.Source reading from a UDP multicast group.
// Each datagram carries a run of bit-bytes (0x00 or 0x01, low bit
// significant); multicastSource buffers across datagram boundaries so Get
// can satisfy any request size.
type multicastSource struct {
	conn    *net.UDPConn
	readBuf []byte
	pending []byte
}

// newMulticastSource joins the given IPv4 multicast group on INADDR_ANY and
// tunes the socket for address/port reuse, so multiple decoder instances can
// bind the same port.
func newMulticastSource(group string, port int) (*multicastSource, error) {
	addr := &net.UDPAddr{IP: net.ParseIP(group), Port: port}
	conn, err := net.ListenMulticastUDP("udp4", nil, addr)
	if err != nil {
		return nil, err
	}
	conn.SetReadBuffer(multicastBuffSize)
	tuneSocketReuse(conn) // best-effort; a failure here isn't fatal.

	return &multicastSource{
		conn:    conn,
		readBuf: make([]byte, datagramBuffSize),
	}, nil
}

// tuneSocketReuse sets SO_REUSEADDR and SO_REUSEPORT on conn's underlying
// file descriptor, mirroring the explicit setsockopt call
// doismellburning-samoyed's kissnet.go makes on its TCP listener.
func tuneSocketReuse(conn *net.UDPConn) error {
	file, err := conn.File()
	if err != nil {
		return err
	}
	defer file.Close()

	fd := int(file.Fd())
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		return err
	}
	return unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
}

// Get implements bitsource.Source, blocking on socket reads until n bytes
// (one per bit) have accumulated. A read error or closed socket ends the
// stream: it returns whatever is already buffered with ok=false.
func (s *multicastSource) Get(n int) ([]byte, bool) {
	for len(s.pending) < n {
		read, _, err := s.conn.ReadFromUDP(s.readBuf)
		if err != nil {
			result := s.pending
			s.pending = nil
			return result, false
		}
		s.pending = append(s.pending, s.readBuf[:read]...)
	}
	result := s.pending[:n]
	s.pending = s.pending[n:]
	return result, true
}

// Close releases the multicast group membership and closes the socket.
func (s *multicastSource) Close() error {
	return s.conn.Close()
}
