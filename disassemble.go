package nes

import "fmt"

type DisassembledInstruction struct {
	Text     string
	Next     uint16
	Previous uint16
}

// operandText formats the operand of an instruction at addr the way an
// assembler listing would.
func operandText(mem Memory, addr uint16, mode AddrMode) string {
	switch mode {
	case IMP:
		return ""
	case ACC:
		return "A"
	case IMM:
		return fmt.Sprintf("#$%02X", mem.ReadByte(addr+1))
	case ZP0:
		return fmt.Sprintf("$%02X", mem.ReadByte(addr+1))
	case ZPX:
		return fmt.Sprintf("$%02X,X", mem.ReadByte(addr+1))
	case ZPY:
		return fmt.Sprintf("$%02X,Y", mem.ReadByte(addr+1))
	case IZX:
		return fmt.Sprintf("($%02X,X)", mem.ReadByte(addr+1))
	case IZY:
		return fmt.Sprintf("($%02X),Y", mem.ReadByte(addr+1))
	case REL:
		offset := int8(mem.ReadByte(addr + 1))
		return fmt.Sprintf("$%04X", addr+2+uint16(offset))
	case ABS:
		return fmt.Sprintf("$%04X", mem.ReadWord(addr+1))
	case ABX:
		return fmt.Sprintf("$%04X,X", mem.ReadWord(addr+1))
	case ABY:
		return fmt.Sprintf("$%04X,Y", mem.ReadWord(addr+1))
	case IND:
		return fmt.Sprintf("($%04X)", mem.ReadWord(addr+1))
	}
	return ""
}

// DisassembleAt returns the listing text of the instruction at addr and its
// length in bytes.
func DisassembleAt(mem Memory, addr uint16) (string, int) {
	inst := lookup[mem.ReadByte(addr)]
	text := inst.Name
	if operand := operandText(mem, addr, inst.Mode); operand != "" {
		text += " " + operand
	}
	return text, 1 + inst.Mode.Operands()
}

// Disassemble decodes every instruction between start and stop. The result
// is keyed by address since instructions have variable length; Previous and
// Next chain the entries for walking the listing around the PC.
func Disassemble(mem Memory, start, stop uint16) map[uint16]DisassembledInstruction {
	lines := make(map[uint16]DisassembledInstruction)
	addr := uint32(start)
	lineAddr := uint16(0)
	for addr <= uint32(stop) {
		previousAddr := lineAddr
		lineAddr = uint16(addr)
		text, length := DisassembleAt(mem, lineAddr)
		addr += uint32(length)
		lines[lineAddr] = DisassembledInstruction{
			Text:     fmt.Sprintf("$%04X: %s {%s}", lineAddr, text, lookup[mem.ReadByte(lineAddr)].Mode),
			Previous: previousAddr,
			Next:     uint16(addr),
		}
	}
	return lines
}
