package mrdp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	assert.Equal(t, DefaultMaxPacketSize, cfg.MaxPacketSize)
	assert.Equal(t, DefaultPacketTimeout, cfg.PacketTimeout)
	assert.Equal(t, DefaultWindowCapacity, cfg.WindowCapacity)
	assert.Equal(t, DefaultReportThreshold, cfg.ReportThreshold)
	assert.NotNil(t, cfg.Clock)
	assert.NotNil(t, cfg.OnReport)
}

func TestConfigOverridesKept(t *testing.T) {
	cfg := Config{
		MaxPacketSize:  9000,
		PacketTimeout:  50 * time.Millisecond,
		WindowCapacity: 16,
	}.withDefaults()

	assert.Equal(t, 9000, cfg.MaxPacketSize)
	assert.Equal(t, 50*time.Millisecond, cfg.PacketTimeout)
	assert.Equal(t, 16, cfg.WindowCapacity)
	assert.Equal(t, DefaultReportThreshold, cfg.ReportThreshold)
}
