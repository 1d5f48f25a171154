// Package transport provides the socket-facing side of an MRDP receiver.
//
// The protocol core in the parent package only consumes a DatagramSource;
// this package supplies the real one: a UDP socket, joined to a multicast
// group when the listen address is a multicast address, with a per-receive
// read timeout.
//
// Example:
//
//	source, err := transport.Listen("239.1.2.3:5000", 8*time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
package transport
