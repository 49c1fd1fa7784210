package ioreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPPURegistersMirrorEveryEightBytes(t *testing.T) {
	f := NewFile()
	f.Write(0x2003, 0x42)

	for addr := uint16(0x2003); addr <= PPUMaxAddr; addr += 8 {
		assert.Equal(t, uint8(0x42), f.Read(addr), "addr %#04x", addr)
	}

	f.Write(0x3FFF, 0x99)
	assert.Equal(t, uint8(0x99), f.Read(0x2007))
}

func TestAPURegisters(t *testing.T) {
	f := NewFile()
	f.Write(0x4000, 0x3F)
	f.Write(0x401F, 0x01)
	assert.Equal(t, uint8(0x3F), f.Read(0x4000))
	assert.Equal(t, uint8(0x01), f.Read(0x401F))

	f.Write(APUStatus, 0x1F)
	assert.Equal(t, uint8(1), f.Status().GetField("dmc"))
	assert.Equal(t, uint8(1), f.Status().GetField("pulse1"))
	assert.Equal(t, uint8(0x1F), f.Read(APUStatus))

	f.Write(FrameCounter, 0xC0)
	assert.Equal(t, uint8(1), f.FrameCounterRegister().GetField("mode"))
	assert.Equal(t, uint8(1), f.FrameCounterRegister().GetField("irq_inhibit"))
}

func TestReset(t *testing.T) {
	f := NewFile()
	f.Write(0x2000, 0x80)
	f.Write(APUStatus, 0x0F)
	f.Reset()

	assert.Equal(t, uint8(0), f.Read(0x2000))
	assert.Equal(t, uint8(0), f.Read(APUStatus))
	assert.Equal(t, uint8(0), f.Status().GetField("pulse1"))
}

func TestContains(t *testing.T) {
	assert.False(t, Contains(0x1FFF))
	assert.True(t, Contains(0x2000))
	assert.True(t, Contains(0x401F))
	assert.False(t, Contains(0x4020))
}
