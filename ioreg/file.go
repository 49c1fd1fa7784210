// Package ioreg holds the memory-mapped PPU, APU and I/O registers the CPU
// bus routes to. Only storage is modelled; the picture and audio units that
// would react to these registers live outside this module.
package ioreg

const (
	PPUMinAddr uint16 = 0x2000
	PPUMaxAddr uint16 = 0x3FFF
	ppuMirror  uint16 = 0x0007 // mirror every 8 bytes.

	APUMinAddr uint16 = 0x4000
	APUMaxAddr uint16 = 0x401F

	// APUStatus enables the sound channels.
	APUStatus uint16 = 0x4015
	// FrameCounter selects the APU sequencer mode and IRQ inhibit.
	FrameCounter uint16 = 0x4017
)

// File is the register file behind 0x2000-0x401F.
type File struct {
	ppu [8]uint8
	apu [0x20]uint8

	status       Register
	frameCounter Register
}

func NewFile() *File {
	return &File{
		status: CreateRegister(map[string]Field{
			"pulse1":   {0, 1},
			"pulse2":   {1, 1},
			"triangle": {2, 1},
			"noise":    {3, 1},
			"dmc":      {4, 1},
		}),
		frameCounter: CreateRegister(map[string]Field{
			"irq_inhibit": {6, 1},
			"mode":        {7, 1},
		}),
	}
}

// Contains reports whether addr belongs to the register file.
func Contains(addr uint16) bool {
	return addr >= PPUMinAddr && addr <= APUMaxAddr
}

func (f *File) Read(addr uint16) uint8 {
	switch {
	case addr <= PPUMaxAddr:
		return f.ppu[addr&ppuMirror]
	case addr == APUStatus:
		return f.status.Reg
	case addr == FrameCounter:
		return f.frameCounter.Reg
	}
	return f.apu[addr-APUMinAddr]
}

func (f *File) Write(addr uint16, data uint8) {
	switch {
	case addr <= PPUMaxAddr:
		f.ppu[addr&ppuMirror] = data
		return
	case addr == APUStatus:
		f.status.SetReg(data)
	case addr == FrameCounter:
		f.frameCounter.SetReg(data)
	}
	f.apu[addr-APUMinAddr] = data
}

// Status is the APU channel enable register at 0x4015.
func (f *File) Status() *Register {
	return &f.status
}

// FrameCounterRegister is the register at 0x4017.
func (f *File) FrameCounterRegister() *Register {
	return &f.frameCounter
}

func (f *File) Reset() {
	f.ppu = [8]uint8{}
	f.apu = [0x20]uint8{}
	f.status.SetReg(0)
	f.frameCounter.SetReg(0)
}
