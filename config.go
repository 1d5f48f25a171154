package mrdp

import "time"

// Defaults mirror the protocol's reference deployment values.
const (
	// DefaultMaxPacketSize is the default maximum datagram size in bytes.
	DefaultMaxPacketSize = 2000

	// DefaultPacketTimeout bounds how long the receiver holds out for a
	// missing serial before force-admitting the smallest buffered packet.
	DefaultPacketTimeout = 600 * time.Millisecond

	// DefaultWindowCapacity is the default reorder window capacity,
	// in packets.
	DefaultWindowCapacity = 100

	// DefaultReportThreshold is the number of good packets per
	// statistics report.
	DefaultReportThreshold = 100
)

// Config carries the tunables of a Receiver. The zero value of any field
// selects its default, so Config{} and DefaultConfig() are equivalent.
type Config struct {
	// MaxPacketSize is the size of the receive buffer handed to the
	// DatagramSource; datagrams longer than this cannot be received.
	MaxPacketSize int

	// PacketTimeout is the staleness timeout: when this much time has
	// passed since the last admission, the head of the window is
	// admitted regardless of any serial gap.
	PacketTimeout time.Duration

	// WindowCapacity bounds the reorder window. Once more than this
	// many packets are buffered, the head is admitted to force progress.
	WindowCapacity int

	// ReportThreshold is the good-packet count at which a StatsReport
	// is emitted and the counters reset.
	ReportThreshold int

	// Clock supplies the time used for the staleness timeout.
	Clock Clock

	// OnReport receives periodic statistics. Defaults to LogReport.
	OnReport ReportFunc

	// Listener optionally receives transfer lifecycle callbacks.
	Listener TransferListener
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() Config {
	return Config{
		MaxPacketSize:   DefaultMaxPacketSize,
		PacketTimeout:   DefaultPacketTimeout,
		WindowCapacity:  DefaultWindowCapacity,
		ReportThreshold: DefaultReportThreshold,
	}
}

// withDefaults fills unset fields with their defaults.
func (c Config) withDefaults() Config {
	if c.MaxPacketSize <= 0 {
		c.MaxPacketSize = DefaultMaxPacketSize
	}
	if c.PacketTimeout <= 0 {
		c.PacketTimeout = DefaultPacketTimeout
	}
	if c.WindowCapacity <= 0 {
		c.WindowCapacity = DefaultWindowCapacity
	}
	if c.ReportThreshold <= 0 {
		c.ReportThreshold = DefaultReportThreshold
	}
	if c.Clock == nil {
		c.Clock = systemClock{}
	}
	if c.OnReport == nil {
		c.OnReport = LogReport
	}
	return c
}
