package nes

type AddrMode uint8

const (
	IMP AddrMode = iota // implied
	ACC                 // accumulator
	IMM                 // #$nn
	ZP0                 // $nn
	ZPX                 // $nn,X
	ZPY                 // $nn,Y
	REL                 // branch displacement
	ABS                 // $nnnn
	ABX                 // $nnnn,X
	ABY                 // $nnnn,Y
	IND                 // ($nnnn), JMP only
	IZX                 // ($nn,X)
	IZY                 // ($nn),Y
)

var addrModeNames = [...]string{"IMP", "ACC", "IMM", "ZP0", "ZPX", "ZPY", "REL", "ABS", "ABX", "ABY", "IND", "IZX", "IZY"}

func (m AddrMode) String() string {
	if int(m) < len(addrModeNames) {
		return addrModeNames[m]
	}
	return "???"
}

// Operands is the number of bytes following the opcode.
func (m AddrMode) Operands() int {
	switch m {
	case IMP, ACC:
		return 0
	case ABS, ABX, ABY, IND:
		return 2
	}
	return 1
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// resolve computes the effective address of the current instruction into
// addrAbs and moves PC past the operand bytes. It returns 1 when indexing
// crossed a page.
func (c *CPU) resolve(mode AddrMode) uint8 {
	switch mode {
	case IMP, ACC:
		return 0

	case IMM:
		c.addrAbs = c.pc
		c.pc++

	case ZP0:
		c.addrAbs = uint16(c.read(c.pc))
		c.pc++

	case ZPX:
		c.addrAbs = uint16(c.read(c.pc) + c.xRegister)
		c.pc++

	case ZPY:
		c.addrAbs = uint16(c.read(c.pc) + c.yRegister)
		c.pc++

	case REL:
		offset := int8(c.read(c.pc))
		c.pc++
		c.addrAbs = c.pc + uint16(offset)

	case ABS:
		c.addrAbs = c.mem.ReadWord(c.pc)
		c.pc += 2

	case ABX:
		base := c.mem.ReadWord(c.pc)
		c.pc += 2
		c.addrAbs = base + uint16(c.xRegister)
		if pageCrossed(base, c.addrAbs) {
			return 1
		}

	case ABY:
		base := c.mem.ReadWord(c.pc)
		c.pc += 2
		c.addrAbs = base + uint16(c.yRegister)
		if pageCrossed(base, c.addrAbs) {
			return 1
		}

	case IND:
		ptr := c.mem.ReadWord(c.pc)
		c.pc += 2
		c.addrAbs = c.mem.ReadWordPageWrapped(ptr)

	case IZX:
		ptr := c.read(c.pc) + c.xRegister
		c.pc++
		c.addrAbs = c.mem.ReadWordPageWrapped(uint16(ptr))

	case IZY:
		ptr := c.read(c.pc)
		c.pc++
		base := c.mem.ReadWordPageWrapped(uint16(ptr))
		c.addrAbs = base + uint16(c.yRegister)
		if pageCrossed(base, c.addrAbs) {
			return 1
		}
	}
	return 0
}
