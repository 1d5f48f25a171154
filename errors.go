package mrdp

import "errors"

// Sentinel errors for receiver operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrMalformedPacket indicates a datagram that is not a valid MRDP
	// packet: too short, wrong signature, or a negative serial number.
	ErrMalformedPacket = errors.New("malformed MRDP packet")

	// ErrStreamChanged indicates a mid-session stream identifier change.
	// MRDP cannot interleave streams within one session, so this is fatal:
	// the receiver must be closed and reopened.
	ErrStreamChanged = errors.New("stream changed")

	// ErrNotOpened indicates a read on a receiver that has not been
	// opened, or has already been closed.
	ErrNotOpened = errors.New("receiver not opened")
)
