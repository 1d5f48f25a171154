package mrdp

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Receiver turns the multiset of out-of-order, duplicated, possibly
// gap-containing datagrams arriving from a DatagramSource into a single
// ordered byte stream.
//
// Decoded packets sit in a bounded reorder window ordered by serial
// number. Each time the caller needs bytes, the receiver evaluates the
// smallest buffered serial: admit it, drop it as duplicate/late, or pull
// one more datagram and try again. Missing serials are given up on after
// the packet timeout elapses or the window overflows, and counted as
// lost; they are never recovered, MRDP has no retransmission.
//
// A Receiver is not safe for concurrent use. One logical reader drives
// the whole pull chain synchronously; the only blocking point is the
// source's receive call.
type Receiver struct {
	source DatagramSource
	cfg    Config

	// buf is the scratch buffer reused for every receive.
	buf []byte

	sess   *session
	opened bool
}

// NewReceiver creates a receiver over the given source. The receiver
// does not own the source; closing the source is the caller's job and is
// also how a blocked read is cancelled.
func NewReceiver(source DatagramSource, cfg Config) (*Receiver, error) {
	if source == nil {
		return nil, fmt.Errorf("datagram source cannot be nil")
	}

	cfg = cfg.withDefaults()
	return &Receiver{
		source: source,
		cfg:    cfg,
		buf:    make([]byte, cfg.MaxPacketSize),
		sess:   &session{},
	}, nil
}

// Open resets the session state and makes the receiver readable. Opening
// an already-open receiver starts a fresh session, dropping any buffered
// packets and any bytes mid-drain.
func (r *Receiver) Open() error {
	r.sess.reset()
	r.opened = true

	if r.cfg.Listener != nil {
		r.cfg.Listener.OnTransferStart()
	}
	logrus.WithFields(logrus.Fields{
		"window_capacity": r.cfg.WindowCapacity,
		"packet_timeout":  r.cfg.PacketTimeout,
	}).Info("MRDP receiver opened")

	return nil
}

// Read copies up to len(p) bytes of the ordered stream into p and
// returns the count copied, at least 1 for a non-empty p. It blocks in
// the source's receive call until the current packet has undelivered
// bytes. MRDP has no end-of-stream marker, so Read never returns io.EOF;
// the stream ends when the source fails (timeout or closed socket) or a
// mid-session stream id change surfaces as ErrStreamChanged. All errors
// are session-fatal: close the receiver and reopen to continue.
func (r *Receiver) Read(p []byte) (int, error) {
	if !r.opened {
		return 0, ErrNotOpened
	}
	if len(p) == 0 {
		return 0, nil
	}

	for len(r.sess.pending) == 0 {
		if err := r.advance(); err != nil {
			return 0, err
		}
	}

	n := copy(p, r.sess.pending)
	r.sess.pending = r.sess.pending[n:]
	return n, nil
}

// Close discards the window and session state. It is idempotent and does
// not close the underlying source.
func (r *Receiver) Close() error {
	if !r.opened {
		return nil
	}
	r.opened = false

	dropped := r.sess.window.Len()
	r.sess.reset()

	if r.cfg.Listener != nil {
		r.cfg.Listener.OnTransferEnd()
	}
	logrus.WithField("dropped_packets", dropped).Info("MRDP receiver closed")

	return nil
}

// Stats returns a snapshot of the counters accumulated since the last
// periodic report. Purely observational; it does not reset anything.
func (r *Receiver) Stats() StatsReport {
	s := r.sess
	report := StatsReport{
		Good:            s.good,
		Lost:            s.lost,
		DuplicateOrLate: s.dupOrLate,
	}
	if s.good > 0 {
		report.LossRatio = float64(s.lost) / float64(s.good)
	}
	return report
}

// advance performs one step of the admission procedure: admit the head
// of the window as the next packet to drain, drop it as duplicate/late,
// or pull one more datagram when no decision can be made yet.
func (r *Receiver) advance() error {
	s := r.sess
	if s.window.Len() == 0 {
		return r.pull()
	}

	head := s.window.peek()

	// Stream continuity: one stream id per session, latched on first use.
	if !s.haveStreamID {
		s.streamID = head.StreamID
		s.haveStreamID = true
	} else if head.StreamID != s.streamID {
		return fmt.Errorf("%w: session stream %d, packet stream %d", ErrStreamChanged, s.streamID, head.StreamID)
	}

	first := !s.haveLastSerial
	diff := int32(1)
	if !first {
		// Plain int32 subtraction: wraps, deliberately non-modular.
		diff = head.SerialNumber - s.lastSerial
	}
	now := r.cfg.Clock.Now()

	switch {
	case first,
		diff == 1,
		diff <= int32(-3*r.cfg.WindowCapacity), // sender restart, or serial wraparound
		now.Sub(s.lastAcceptedAt) > r.cfg.PacketTimeout,
		s.window.Len() > r.cfg.WindowCapacity:
		r.admit(s.window.removeMin(), diff, first, now)
		return nil

	case diff <= 0:
		// Duplicate of an already-admitted serial, or a packet that
		// arrived after its slot was given up.
		s.window.removeMin()
		s.dupOrLate++
		return nil

	default:
		// A gap that a packet still in flight might fill.
		return r.pull()
	}
}

// admit makes head's payload the current drain buffer and updates the
// continuity state and counters. A gap below the admitted serial is
// charged to lostCount, except on the first packet and on a
// restart/wraparound jump (diff is negative there, so no charge).
func (r *Receiver) admit(head *Packet, diff int32, first bool, now time.Time) {
	s := r.sess

	if !first && diff > 1 {
		lost := int(diff) - 1
		s.lost += lost
		logrus.WithFields(logrus.Fields{
			"lost":        lost,
			"last_serial": s.lastSerial,
			"next_serial": head.SerialNumber,
		}).Warn("MRDP serial gap, packets presumed lost")
	}

	s.lastSerial = head.SerialNumber
	s.haveLastSerial = true
	s.lastAcceptedAt = now
	s.good++
	s.pending = head.Payload

	if r.cfg.Listener != nil {
		r.cfg.Listener.OnBytesTransferred(len(head.Payload))
	}

	if s.good >= r.cfg.ReportThreshold {
		r.cfg.OnReport(StatsReport{
			Good:            s.good,
			Lost:            s.lost,
			DuplicateOrLate: s.dupOrLate,
			LossRatio:       float64(s.lost) / float64(s.good),
		})
		s.good, s.lost, s.dupOrLate = 0, 0, 0
	}
}

// pull reads one datagram from the source and inserts it into the
// window. A malformed datagram is logged and discarded rather than
// ending the session: a single corrupt UDP frame should not tear down an
// otherwise healthy stream. Source errors are fatal and propagate.
func (r *Receiver) pull() error {
	n, err := r.source.ReadDatagram(r.buf)
	if err != nil {
		return fmt.Errorf("receive datagram: %w", err)
	}

	pkt, err := ParsePacket(r.buf[:n])
	if err != nil {
		logrus.WithError(err).Warn("Discarding malformed MRDP datagram")
		return nil
	}

	r.sess.window.add(pkt)
	return nil
}
