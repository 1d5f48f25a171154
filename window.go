package mrdp

import "container/heap"

// serialLess reports whether serial a orders before serial b.
//
// The comparison is plain signed 32-bit subtraction, not modular distance.
// Across a 2^31 wraparound the new low serials therefore do not order
// after the old high ones; the receiver's restart heuristic is what keeps
// the stream moving in that case.
func serialLess(a, b int32) bool {
	return a-b < 0
}

// packetWindow is a min-heap of decoded packets ordered by serialLess.
// The receiver only ever needs the minimum. Equal serials (duplicate
// sends racing each other) may coexist in the window; whichever the heap
// yields first is admitted and the rest drop out as duplicates.
type packetWindow []*Packet

func (w packetWindow) Len() int           { return len(w) }
func (w packetWindow) Less(i, j int) bool { return serialLess(w[i].SerialNumber, w[j].SerialNumber) }
func (w packetWindow) Swap(i, j int)      { w[i], w[j] = w[j], w[i] }

func (w *packetWindow) Push(x any) {
	*w = append(*w, x.(*Packet))
}

func (w *packetWindow) Pop() any {
	old := *w
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	*w = old[:n-1]
	return p
}

// add inserts a packet into the window.
func (w *packetWindow) add(p *Packet) {
	heap.Push(w, p)
}

// peek returns the smallest-serial packet without removing it.
// The window must be non-empty.
func (w *packetWindow) peek() *Packet {
	return (*w)[0]
}

// removeMin removes and returns the smallest-serial packet.
// The window must be non-empty.
func (w *packetWindow) removeMin() *Packet {
	return heap.Pop(w).(*Packet)
}
