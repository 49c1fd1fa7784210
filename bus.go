package nes

import (
	"fmt"

	"nes-core/ioreg"
	"nes-core/mapper"
)

const (
	// RAM
	ramMinAddr uint16 = 0x0000
	ramMaxAddr uint16 = 0x1FFF
	ramMirror  uint16 = 0x07FF // mirror every 2KB.
	ramSize           = 2048

	// Cartridge
	cartMinAddr uint16 = 0x4020
)

// Region names the device that answers an address on the CPU bus.
type Region uint8

const (
	RegionRAM Region = iota
	RegionIO
	RegionCartridge
)

func (r Region) String() string {
	switch r {
	case RegionRAM:
		return "ram"
	case RegionIO:
		return "io"
	case RegionCartridge:
		return "cartridge"
	}
	return "unmapped"
}

// RegionOf decodes addr the same way ReadByte and WriteByte do.
func RegionOf(addr uint16) Region {
	switch {
	case addr <= ramMaxAddr:
		return RegionRAM
	case ioreg.Contains(addr):
		return RegionIO
	}
	return RegionCartridge
}

// AddressFault is raised when an address has no device behind it. With a
// mapper inserted every address is decoded, so a fault means the bus was
// driven before a cartridge was loaded.
type AddressFault struct {
	Addr  uint16
	Write bool
}

func (f *AddressFault) Error() string {
	op := "read"
	if f.Write {
		op = "write"
	}
	return fmt.Sprintf("unmapped %s at $%04X", op, f.Addr)
}

// Bus is the CPU address space: internal RAM, the register file and the
// cartridge behind its mapper.
type Bus struct {
	cpuRam [ramSize]uint8
	io     *ioreg.File
	mapper mapper.Mapper
}

func NewBus() *Bus {
	return &Bus{
		io: ioreg.NewFile(),
	}
}

// InsertMapper connects the cartridge side of the bus. The bus does not own
// the mapper; it is replaced when another cartridge is loaded.
func (b *Bus) InsertMapper(m mapper.Mapper) {
	b.mapper = m
}

func (b *Bus) Mapper() mapper.Mapper {
	return b.mapper
}

func (b *Bus) IO() *ioreg.File {
	return b.io
}

// ClearRAM zeroes internal RAM. Neither reset nor power-up does this.
func (b *Bus) ClearRAM() {
	b.cpuRam = [ramSize]uint8{}
}

func (b *Bus) ReadByte(addr uint16) uint8 {
	switch RegionOf(addr) {
	case RegionRAM:
		return b.cpuRam[addr&ramMirror]
	case RegionCartridge:
		if b.mapper == nil {
			panic(&AddressFault{Addr: addr})
		}
		return b.mapper.ReadByte(addr)
	}
	return b.io.Read(addr)
}

func (b *Bus) WriteByte(addr uint16, data uint8) {
	switch RegionOf(addr) {
	case RegionRAM:
		b.cpuRam[addr&ramMirror] = data
	case RegionCartridge:
		if b.mapper == nil {
			panic(&AddressFault{Addr: addr, Write: true})
		}
		b.mapper.WriteByte(addr, data)
	default:
		b.io.Write(addr, data)
	}
}

func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := uint16(b.ReadByte(addr))
	hi := uint16(b.ReadByte(addr + 1))
	return hi<<8 | lo
}

// ReadWordPageWrapped reproduces the indirect JMP bug: a pointer at $xxFF
// takes its high byte from $xx00.
func (b *Bus) ReadWordPageWrapped(addr uint16) uint16 {
	next := addr&0xFF00 | uint16(uint8(addr)+1)
	lo := uint16(b.ReadByte(addr))
	hi := uint16(b.ReadByte(next))
	return hi<<8 | lo
}
