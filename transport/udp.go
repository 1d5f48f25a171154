package transport

import (
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/ipv4"
)

// DefaultSocketTimeout bounds a single blocking receive. A timeout of
// zero is interpreted as an infinite timeout.
const DefaultSocketTimeout = 8 * time.Second

// ErrSourceClosed indicates a receive on a closed UDPSource.
var ErrSourceClosed = errors.New("UDP source closed")

// UDPSource reads raw datagrams from a UDP or UDP-multicast socket. It
// implements the receiver's DatagramSource interface.
//
// ReadDatagram applies the configured read timeout to every receive, so
// a stalled sender surfaces as a timeout error instead of blocking the
// reader forever. Closing the source unblocks a pending receive.
type UDPSource struct {
	conn        *net.UDPConn
	pconn       *ipv4.PacketConn // non-nil when joined to a multicast group
	group       *net.UDPAddr
	readTimeout time.Duration
	closed      atomic.Bool // Close may race a blocked ReadDatagram
}

// Listen opens a UDP socket on addr ("host:port"). When the host is a
// multicast group address the socket binds the port and joins the group
// on the system default interface. readTimeout bounds each receive; zero
// means receives block until a datagram arrives or the socket is closed.
func Listen(addr string, readTimeout time.Duration) (*UDPSource, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", addr, err)
	}

	s := &UDPSource{readTimeout: readTimeout}

	if udpAddr.IP != nil && udpAddr.IP.IsMulticast() {
		conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: udpAddr.Port})
		if err != nil {
			return nil, fmt.Errorf("listen udp port %d: %w", udpAddr.Port, err)
		}

		pconn := ipv4.NewPacketConn(conn)
		group := &net.UDPAddr{IP: udpAddr.IP}
		if err := pconn.JoinGroup(nil, group); err != nil {
			conn.Close()
			return nil, fmt.Errorf("join multicast group %s: %w", udpAddr.IP, err)
		}

		s.conn = conn
		s.pconn = pconn
		s.group = group
	} else {
		conn, err := net.ListenUDP("udp", udpAddr)
		if err != nil {
			return nil, fmt.Errorf("listen udp %q: %w", addr, err)
		}
		s.conn = conn
	}

	logrus.WithFields(logrus.Fields{
		"local_addr":   s.conn.LocalAddr().String(),
		"multicast":    s.pconn != nil,
		"read_timeout": readTimeout,
	}).Info("MRDP UDP source listening")

	return s, nil
}

// ReadDatagram receives one datagram into buf and returns its length.
// A timeout or closed socket returns the underlying net error, which
// the receiver surfaces to its caller unchanged.
func (s *UDPSource) ReadDatagram(buf []byte) (int, error) {
	if s.closed.Load() {
		return 0, ErrSourceClosed
	}

	if s.readTimeout > 0 {
		if err := s.conn.SetReadDeadline(time.Now().Add(s.readTimeout)); err != nil {
			return 0, fmt.Errorf("set read deadline: %w", err)
		}
	}

	n, _, err := s.conn.ReadFromUDP(buf)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Close leaves the multicast group, if joined, and closes the socket,
// unblocking any pending receive. It is idempotent.
func (s *UDPSource) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	if s.pconn != nil {
		if err := s.pconn.LeaveGroup(nil, s.group); err != nil {
			logrus.WithError(err).Debug("Leaving multicast group failed")
		}
		s.pconn = nil
	}

	return s.conn.Close()
}

// LocalAddr returns the local address the socket is bound to.
func (s *UDPSource) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}
