package mrdp

import "time"

// session is the per-open mutable state of a Receiver: the reorder
// window, the stream continuity latch, the admission bookkeeping, and
// the rolling counters. Keeping it in one struct makes session reset a
// single assignment, and the whole value is exclusively owned by the
// reading goroutine.
type session struct {
	window packetWindow

	// streamID is latched on the first packet and fixed for the session.
	streamID     uint16
	haveStreamID bool

	// lastSerial is the serial number of the most recently admitted
	// packet; haveLastSerial distinguishes it from the pre-admission
	// state.
	lastSerial     int32
	haveLastSerial bool
	lastAcceptedAt time.Time

	// pending is the not-yet-delivered tail of the most recently
	// admitted payload.
	pending []byte

	good      int
	lost      int
	dupOrLate int
}

// reset restores the zero session, dropping any buffered packets and any
// bytes mid-drain.
func (s *session) reset() {
	*s = session{}
}
