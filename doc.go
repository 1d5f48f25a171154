// Package mrdp implements the receive side of MRDP, the "more reliable
// datagram protocol": a one-way, partially-reliable transport layered
// directly on UDP or UDP multicast.
//
// MRDP has no acknowledgements, no retransmission, and no congestion
// control. The sender may transmit each packet several times under the
// same serial number; the receiver reorders, deduplicates, and detects
// loss. The result is a lossy-but-ordered byte stream suited to live
// media on lossy wireless links, where a reliable stream protocol stalls.
//
// # Wire format
//
// Every MRDP packet rides in one UDP datagram and starts with a fixed
// 8-byte header, all fields little-endian:
//
//	offset 0, 2 bytes: signature, the ASCII characters 'm' 'r'
//	offset 2, 2 bytes: stream id, uint16
//	offset 4, 4 bytes: serial number, int32, always >= 0
//	offset 8, rest:    payload (may be empty; an empty payload is a keepalive)
//
// Within a stream the serial number increases by 1 per packet and wraps
// to 0 after reaching 2^31-1.
//
// # Receiving
//
// A Receiver pulls raw datagrams from a DatagramSource, buffers decoded
// packets in a bounded reorder window, and exposes the admitted payloads
// as an io.Reader:
//
//	source, err := transport.Listen("239.1.2.3:5000", 8*time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	recv, err := mrdp.NewReceiver(source, mrdp.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := recv.Open(); err != nil {
//	    log.Fatal(err)
//	}
//	defer recv.Close()
//
//	if _, err := io.Copy(dst, recv); err != nil {
//	    log.Printf("stream ended: %v", err)
//	}
//
// The Receiver is single-threaded by design: one reader drives the whole
// pull chain synchronously, and the only blocking point is the source's
// receive call.
package mrdp
