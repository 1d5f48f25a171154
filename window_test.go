package mrdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialLess(t *testing.T) {
	tests := []struct {
		name string
		a, b int32
		want bool
	}{
		{"Smaller orders first", 1, 2, true},
		{"Larger orders last", 2, 1, false},
		{"Equal serials tie", 7, 7, false},
		{"Zero before max, non-modular", 0, 2147483647, true},
		{"Max after zero, non-modular", 2147483647, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serialLess(tt.a, tt.b))
		})
	}
}

func TestPacketWindowOrdering(t *testing.T) {
	var w packetWindow
	for _, serial := range []int32{9, 3, 7, 3, 11, 5} {
		w.add(&Packet{SerialNumber: serial})
	}

	assert.Equal(t, 6, w.Len())
	assert.Equal(t, int32(3), w.peek().SerialNumber)

	var got []int32
	for w.Len() > 0 {
		got = append(got, w.removeMin().SerialNumber)
	}
	assert.Equal(t, []int32{3, 3, 5, 7, 9, 11}, got)
}
