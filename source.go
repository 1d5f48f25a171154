package mrdp

// DatagramSource supplies raw datagrams to a Receiver.
//
// ReadDatagram blocks until one datagram has been received into buf and
// returns its length. A datagram larger than buf is an error of the
// source, not of the receiver. Timeouts and socket closure surface as
// errors; the receiver treats any source error as session-fatal and
// never retries internally.
//
// The transport subpackage provides a UDP/multicast implementation;
// tests supply scripted sources.
type DatagramSource interface {
	ReadDatagram(buf []byte) (int, error)
}
