package mrdp

// TransferListener receives lifecycle callbacks from a Receiver. All
// callbacks run synchronously on the reading goroutine.
type TransferListener interface {
	// OnTransferStart fires when the receiver is opened.
	OnTransferStart()

	// OnBytesTransferred fires once per admitted packet with the
	// payload length, including zero for keepalives.
	OnBytesTransferred(n int)

	// OnTransferEnd fires when the receiver is closed.
	OnTransferEnd()
}
