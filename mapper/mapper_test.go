package mapper

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledPRG(banks int) []uint8 {
	prg := make([]uint8, banks*prgBankSize)
	for i := range prg {
		prg[i] = uint8(i >> 8)
	}
	return prg
}

func TestNROM16KMirrorsUpperBank(t *testing.T) {
	m, err := New(0, Image{PRG: filledPRG(1)})
	require.NoError(t, err)

	for _, addr := range []uint16{0x8000, 0x8123, 0xBFFF} {
		assert.Equal(t, m.ReadByte(addr), m.ReadByte(addr+0x4000), "addr %#04x", addr)
	}
	assert.Equal(t, uint8(0x3F), m.ReadByte(0xFFFF))
}

func TestNROM32KIsDirectMapped(t *testing.T) {
	m, err := New(0, Image{PRG: filledPRG(2)})
	require.NoError(t, err)

	assert.Equal(t, uint8(0x00), m.ReadByte(0x8000))
	assert.Equal(t, uint8(0x40), m.ReadByte(0xC000))
	assert.Equal(t, uint8(0x7F), m.ReadByte(0xFFFF))
}

func TestNROMPrgIsReadOnly(t *testing.T) {
	m, err := New(0, Image{PRG: filledPRG(1)})
	require.NoError(t, err)

	m.WriteByte(0x8001, 0xAA)
	assert.Equal(t, uint8(0x00), m.ReadByte(0x8001))
}

func TestNROMPrgRAM(t *testing.T) {
	m, err := New(0, Image{PRG: filledPRG(1)})
	require.NoError(t, err)

	m.WriteByte(0x6000, 0x11)
	m.WriteByte(0x7FFF, 0x22)
	assert.Equal(t, uint8(0x11), m.ReadByte(0x6000))
	assert.Equal(t, uint8(0x22), m.ReadByte(0x7FFF))

	m.WriteByte(0x5000, 0x33)
	assert.Equal(t, uint8(0x00), m.ReadByte(0x5000))
}

func TestNROMChr(t *testing.T) {
	chr := make([]uint8, chrBankSize)
	chr[0x0100] = 0x5A

	rom, err := New(0, Image{PRG: filledPRG(1), CHR: chr})
	require.NoError(t, err)
	assert.Equal(t, uint8(0x5A), rom.ReadByte(0x0100))
	rom.WriteByte(0x0100, 0x00)
	assert.Equal(t, uint8(0x5A), rom.ReadByte(0x0100), "CHR-ROM must ignore writes")

	ram, err := New(0, Image{PRG: filledPRG(1)})
	require.NoError(t, err)
	ram.WriteByte(0x1FFF, 0xC3)
	assert.Equal(t, uint8(0xC3), ram.ReadByte(0x1FFF))
	assert.Equal(t, uint8(0), ram.(*Mapper0000).ChrBanks)
}

func TestNROMRejectsBadSizes(t *testing.T) {
	_, err := New(0, Image{PRG: make([]uint8, 100)})
	assert.Error(t, err)

	_, err = New(0, Image{PRG: filledPRG(1), CHR: make([]uint8, 3*chrBankSize)})
	assert.Error(t, err)
}

func TestNewUnsupported(t *testing.T) {
	_, err := New(4, Image{PRG: filledPRG(1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedMapper))
	assert.Contains(t, err.Error(), "mapper 4")
}

func TestMirrorKeptFromImage(t *testing.T) {
	m, err := New(0, Image{PRG: filledPRG(1), Mirror: Vertical})
	require.NoError(t, err)
	assert.Equal(t, Vertical, m.Mirror())
	assert.Equal(t, "vertical", m.Mirror().String())
}

func TestNametableIndex(t *testing.T) {
	tests := []struct {
		mirror Mirror
		addr   uint16
		want   uint16
	}{
		{Vertical, 0x2000, 0x0000},
		{Vertical, 0x2400, 0x0400},
		{Vertical, 0x2800, 0x0000},
		{Vertical, 0x2C10, 0x0410},
		{Horizontal, 0x2000, 0x0000},
		{Horizontal, 0x2400, 0x0000},
		{Horizontal, 0x2800, 0x0400},
		{Horizontal, 0x2C10, 0x0410},
		{SingleLower, 0x2C10, 0x0010},
		{SingleUpper, 0x2010, 0x0410},
		{Vertical, 0x3000, 0x0000},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, test.mirror.NametableIndex(test.addr), "%s %#04x", test.mirror, test.addr)
	}
}
