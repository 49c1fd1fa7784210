package nes

// Instruction is one entry of the opcode table.
type Instruction struct {
	Name   string
	op     func(*CPU) uint8
	Mode   AddrMode
	Cycles uint8
}

// Lookup returns the table entry for opcode.
func Lookup(opcode uint8) Instruction {
	return lookup[opcode]
}

// IsOfficial reports whether opcode is one of the 151 documented 6502
// instructions.
func IsOfficial(opcode uint8) bool {
	switch name := lookup[opcode].Name; {
	case name == "XXX":
		return false
	case name == "NOP":
		return opcode == 0xEA
	case opcode == 0xEB:
		return false
	}
	return true
}

// Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
// plus the usual unofficial opcode tables for the undocumented slots.
var lookup = [256]Instruction{
	{"BRK", BRK, IMP, 7}, {"ORA", ORA, IZX, 6}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZX, 8}, {"NOP", NOP, ZP0, 3}, {"ORA", ORA, ZP0, 3}, {"ASL", ASL, ZP0, 5}, {"XXX", XXX, ZP0, 5}, {"PHP", PHP, IMP, 3}, {"ORA", ORA, IMM, 2}, {"ASL", ASL, ACC, 2}, {"XXX", XXX, IMM, 2}, {"NOP", NOP, ABS, 4}, {"ORA", ORA, ABS, 4}, {"ASL", ASL, ABS, 6}, {"XXX", XXX, ABS, 6},

	{"BPL", BPL, REL, 2}, {"ORA", ORA, IZY, 5}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZY, 8}, {"NOP", NOP, ZPX, 4}, {"ORA", ORA, ZPX, 4}, {"ASL", ASL, ZPX, 6}, {"XXX", XXX, ZPX, 6}, {"CLC", CLC, IMP, 2}, {"ORA", ORA, ABY, 4}, {"NOP", NOP, IMP, 2}, {"XXX", XXX, ABY, 7}, {"NOP", NOP, ABX, 4}, {"ORA", ORA, ABX, 4}, {"ASL", ASL, ABX, 7}, {"XXX", XXX, ABX, 7},

	{"JSR", JSR, ABS, 6}, {"AND", AND, IZX, 6}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZX, 8}, {"BIT", BIT, ZP0, 3}, {"AND", AND, ZP0, 3}, {"ROL", ROL, ZP0, 5}, {"XXX", XXX, ZP0, 5}, {"PLP", PLP, IMP, 4}, {"AND", AND, IMM, 2}, {"ROL", ROL, ACC, 2}, {"XXX", XXX, IMM, 2}, {"BIT", BIT, ABS, 4}, {"AND", AND, ABS, 4}, {"ROL", ROL, ABS, 6}, {"XXX", XXX, ABS, 6},

	{"BMI", BMI, REL, 2}, {"AND", AND, IZY, 5}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZY, 8}, {"NOP", NOP, ZPX, 4}, {"AND", AND, ZPX, 4}, {"ROL", ROL, ZPX, 6}, {"XXX", XXX, ZPX, 6}, {"SEC", SEC, IMP, 2}, {"AND", AND, ABY, 4}, {"NOP", NOP, IMP, 2}, {"XXX", XXX, ABY, 7}, {"NOP", NOP, ABX, 4}, {"AND", AND, ABX, 4}, {"ROL", ROL, ABX, 7}, {"XXX", XXX, ABX, 7},

	{"RTI", RTI, IMP, 6}, {"EOR", EOR, IZX, 6}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZX, 8}, {"NOP", NOP, ZP0, 3}, {"EOR", EOR, ZP0, 3}, {"LSR", LSR, ZP0, 5}, {"XXX", XXX, ZP0, 5}, {"PHA", PHA, IMP, 3}, {"EOR", EOR, IMM, 2}, {"LSR", LSR, ACC, 2}, {"XXX", XXX, IMM, 2}, {"JMP", JMP, ABS, 3}, {"EOR", EOR, ABS, 4}, {"LSR", LSR, ABS, 6}, {"XXX", XXX, ABS, 6},

	{"BVC", BVC, REL, 2}, {"EOR", EOR, IZY, 5}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZY, 8}, {"NOP", NOP, ZPX, 4}, {"EOR", EOR, ZPX, 4}, {"LSR", LSR, ZPX, 6}, {"XXX", XXX, ZPX, 6}, {"CLI", CLI, IMP, 2}, {"EOR", EOR, ABY, 4}, {"NOP", NOP, IMP, 2}, {"XXX", XXX, ABY, 7}, {"NOP", NOP, ABX, 4}, {"EOR", EOR, ABX, 4}, {"LSR", LSR, ABX, 7}, {"XXX", XXX, ABX, 7},

	{"RTS", RTS, IMP, 6}, {"ADC", ADC, IZX, 6}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZX, 8}, {"NOP", NOP, ZP0, 3}, {"ADC", ADC, ZP0, 3}, {"ROR", ROR, ZP0, 5}, {"XXX", XXX, ZP0, 5}, {"PLA", PLA, IMP, 4}, {"ADC", ADC, IMM, 2}, {"ROR", ROR, ACC, 2}, {"XXX", XXX, IMM, 2}, {"JMP", JMP, IND, 5}, {"ADC", ADC, ABS, 4}, {"ROR", ROR, ABS, 6}, {"XXX", XXX, ABS, 6},

	{"BVS", BVS, REL, 2}, {"ADC", ADC, IZY, 5}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZY, 8}, {"NOP", NOP, ZPX, 4}, {"ADC", ADC, ZPX, 4}, {"ROR", ROR, ZPX, 6}, {"XXX", XXX, ZPX, 6}, {"SEI", SEI, IMP, 2}, {"ADC", ADC, ABY, 4}, {"NOP", NOP, IMP, 2}, {"XXX", XXX, ABY, 7}, {"NOP", NOP, ABX, 4}, {"ADC", ADC, ABX, 4}, {"ROR", ROR, ABX, 7}, {"XXX", XXX, ABX, 7},

	{"NOP", NOP, IMM, 2}, {"STA", STA, IZX, 6}, {"NOP", NOP, IMM, 2}, {"XXX", XXX, IZX, 6}, {"STY", STY, ZP0, 3}, {"STA", STA, ZP0, 3}, {"STX", STX, ZP0, 3}, {"XXX", XXX, ZP0, 3}, {"DEY", DEY, IMP, 2}, {"NOP", NOP, IMM, 2}, {"TXA", TXA, IMP, 2}, {"XXX", XXX, IMM, 2}, {"STY", STY, ABS, 4}, {"STA", STA, ABS, 4}, {"STX", STX, ABS, 4}, {"XXX", XXX, ABS, 4},

	{"BCC", BCC, REL, 2}, {"STA", STA, IZY, 6}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZY, 6}, {"STY", STY, ZPX, 4}, {"STA", STA, ZPX, 4}, {"STX", STX, ZPY, 4}, {"XXX", XXX, ZPY, 4}, {"TYA", TYA, IMP, 2}, {"STA", STA, ABY, 5}, {"TXS", TXS, IMP, 2}, {"XXX", XXX, ABY, 5}, {"XXX", XXX, ABX, 5}, {"STA", STA, ABX, 5}, {"XXX", XXX, ABY, 5}, {"XXX", XXX, ABY, 5},

	{"LDY", LDY, IMM, 2}, {"LDA", LDA, IZX, 6}, {"LDX", LDX, IMM, 2}, {"XXX", XXX, IZX, 6}, {"LDY", LDY, ZP0, 3}, {"LDA", LDA, ZP0, 3}, {"LDX", LDX, ZP0, 3}, {"XXX", XXX, ZP0, 3}, {"TAY", TAY, IMP, 2}, {"LDA", LDA, IMM, 2}, {"TAX", TAX, IMP, 2}, {"XXX", XXX, IMM, 2}, {"LDY", LDY, ABS, 4}, {"LDA", LDA, ABS, 4}, {"LDX", LDX, ABS, 4}, {"XXX", XXX, ABS, 4},

	{"BCS", BCS, REL, 2}, {"LDA", LDA, IZY, 5}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZY, 5}, {"LDY", LDY, ZPX, 4}, {"LDA", LDA, ZPX, 4}, {"LDX", LDX, ZPY, 4}, {"XXX", XXX, ZPY, 4}, {"CLV", CLV, IMP, 2}, {"LDA", LDA, ABY, 4}, {"TSX", TSX, IMP, 2}, {"XXX", XXX, ABY, 4}, {"LDY", LDY, ABX, 4}, {"LDA", LDA, ABX, 4}, {"LDX", LDX, ABY, 4}, {"XXX", XXX, ABY, 4},

	{"CPY", CPY, IMM, 2}, {"CMP", CMP, IZX, 6}, {"NOP", NOP, IMM, 2}, {"XXX", XXX, IZX, 8}, {"CPY", CPY, ZP0, 3}, {"CMP", CMP, ZP0, 3}, {"DEC", DEC, ZP0, 5}, {"XXX", XXX, ZP0, 5}, {"INY", INY, IMP, 2}, {"CMP", CMP, IMM, 2}, {"DEX", DEX, IMP, 2}, {"XXX", XXX, IMM, 2}, {"CPY", CPY, ABS, 4}, {"CMP", CMP, ABS, 4}, {"DEC", DEC, ABS, 6}, {"XXX", XXX, ABS, 6},

	{"BNE", BNE, REL, 2}, {"CMP", CMP, IZY, 5}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZY, 8}, {"NOP", NOP, ZPX, 4}, {"CMP", CMP, ZPX, 4}, {"DEC", DEC, ZPX, 6}, {"XXX", XXX, ZPX, 6}, {"CLD", CLD, IMP, 2}, {"CMP", CMP, ABY, 4}, {"NOP", NOP, IMP, 2}, {"XXX", XXX, ABY, 7}, {"NOP", NOP, ABX, 4}, {"CMP", CMP, ABX, 4}, {"DEC", DEC, ABX, 7}, {"XXX", XXX, ABX, 7},

	{"CPX", CPX, IMM, 2}, {"SBC", SBC, IZX, 6}, {"NOP", NOP, IMM, 2}, {"XXX", XXX, IZX, 8}, {"CPX", CPX, ZP0, 3}, {"SBC", SBC, ZP0, 3}, {"INC", INC, ZP0, 5}, {"XXX", XXX, ZP0, 5}, {"INX", INX, IMP, 2}, {"SBC", SBC, IMM, 2}, {"NOP", NOP, IMP, 2}, {"SBC", SBC, IMM, 2}, {"CPX", CPX, ABS, 4}, {"SBC", SBC, ABS, 4}, {"INC", INC, ABS, 6}, {"XXX", XXX, ABS, 6},

	{"BEQ", BEQ, REL, 2}, {"SBC", SBC, IZY, 5}, {"XXX", XXX, IMP, 2}, {"XXX", XXX, IZY, 8}, {"NOP", NOP, ZPX, 4}, {"SBC", SBC, ZPX, 4}, {"INC", INC, ZPX, 6}, {"XXX", XXX, ZPX, 6}, {"SED", SED, IMP, 2}, {"SBC", SBC, ABY, 4}, {"NOP", NOP, IMP, 2}, {"XXX", XXX, ABY, 7}, {"NOP", NOP, ABX, 4}, {"SBC", SBC, ABX, 4}, {"INC", INC, ABX, 7}, {"XXX", XXX, ABX, 7},
}
