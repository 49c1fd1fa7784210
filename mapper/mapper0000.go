package mapper

import "github.com/pkg/errors"

const (
	prgBankSize = 0x4000
	chrBankSize = 0x2000
	prgRAMSize  = 0x2000
)

// Mapper0000 is NROM: no bank switching, 16 or 32 KB of PRG and a fixed
// 8 KB CHR window.
//
// Address Mapping
//
// if 16KB ROM size:
//
//	0x8000-0xBFFF -> 0x0000-0x3FFF
//	0xC000-0xFFFF -> 0x0000-0x3FFF (mirror)
//
// if 32KB ROM size:
//
//	0x8000-0xFFFF -> 0x0000-0x7FFF
type Mapper0000 struct {
	PrgBanks uint8
	ChrBanks uint8

	prg    []uint8
	chr    []uint8
	prgRAM []uint8
	chrRAM bool
	mirror Mirror
}

func NewMapper0000(img Image) (*Mapper0000, error) {
	if len(img.PRG) != prgBankSize && len(img.PRG) != 2*prgBankSize {
		return nil, errors.Errorf("nrom: PRG size %d, want 16 or 32 KB", len(img.PRG))
	}
	chr := img.CHR
	if len(chr) == 0 {
		chr = make([]uint8, chrBankSize)
	}
	if len(chr) != chrBankSize {
		return nil, errors.Errorf("nrom: CHR size %d, want 8 KB", len(chr))
	}
	m := &Mapper0000{
		PrgBanks: uint8(len(img.PRG) / prgBankSize),
		ChrBanks: 1,
		prg:      img.PRG,
		chr:      chr,
		prgRAM:   make([]uint8, prgRAMSize),
		chrRAM:   img.ChrRAM || len(img.CHR) == 0,
		mirror:   img.Mirror,
	}
	if m.chrRAM {
		m.ChrBanks = 0
	}
	return m, nil
}

func (m *Mapper0000) prgMask() uint16 {
	if m.PrgBanks > 1 {
		return 0x7FFF
	}
	return 0x3FFF
}

func (m *Mapper0000) ReadByte(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return m.chr[addr]
	case addr >= 0x8000:
		return m.prg[addr&m.prgMask()]
	case addr >= 0x6000:
		return m.prgRAM[addr-0x6000]
	}
	// expansion area, nothing on the board answers
	return 0
}

func (m *Mapper0000) WriteByte(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		if m.chrRAM {
			m.chr[addr] = data
		}
	case addr >= 0x8000:
		// ROM
	case addr >= 0x6000:
		m.prgRAM[addr-0x6000] = data
	}
}

func (m *Mapper0000) Mirror() Mirror {
	return m.mirror
}

func (m *Mapper0000) Reset() {
}
