package mrdp

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed size of the MRDP header in bytes.
const HeaderSize = 8

// MRDP signature bytes at the start of every datagram.
const (
	signatureByte0 = 'm'
	signatureByte1 = 'r'
)

// Packet is one decoded MRDP datagram.
//
// Packets are immutable after construction. Within a stream the serial
// number increases by 1 per packet, staying in [0, 2^31), and wraps to 0
// after 2^31-1.
type Packet struct {
	StreamID     uint16
	SerialNumber int32
	Payload      []byte
}

// ParsePacket decodes a raw datagram into a Packet.
//
// The input slice is not retained; the payload is copied. Datagrams
// shorter than HeaderSize, without the 'mr' signature, or carrying a
// negative serial number fail with an error wrapping ErrMalformedPacket.
func ParsePacket(data []byte) (*Packet, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedPacket, len(data), HeaderSize)
	}
	if data[0] != signatureByte0 || data[1] != signatureByte1 {
		return nil, fmt.Errorf("%w: bad signature %q", ErrMalformedPacket, data[:2])
	}

	serial := int32(binary.LittleEndian.Uint32(data[4:8]))
	if serial < 0 {
		return nil, fmt.Errorf("%w: negative serial number %d", ErrMalformedPacket, serial)
	}

	p := &Packet{
		StreamID:     binary.LittleEndian.Uint16(data[2:4]),
		SerialNumber: serial,
		Payload:      make([]byte, len(data)-HeaderSize),
	}
	copy(p.Payload, data[HeaderSize:])

	return p, nil
}
