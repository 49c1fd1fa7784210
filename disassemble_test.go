package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassembleAt(t *testing.T) {
	tests := []struct {
		program []uint8
		want    string
		length  int
	}{
		{[]uint8{0xEA}, "NOP", 1},
		{[]uint8{0x0A}, "ASL A", 1},
		{[]uint8{0xA9, 0x05}, "LDA #$05", 2},
		{[]uint8{0x85, 0x10}, "STA $10", 2},
		{[]uint8{0xB5, 0x10}, "LDA $10,X", 2},
		{[]uint8{0xB6, 0x10}, "LDX $10,Y", 2},
		{[]uint8{0xA1, 0x20}, "LDA ($20,X)", 2},
		{[]uint8{0xB1, 0x20}, "LDA ($20),Y", 2},
		{[]uint8{0xF0, 0x03}, "BEQ $8005", 2},
		{[]uint8{0xD0, 0xFE}, "BNE $8000", 2},
		{[]uint8{0x4C, 0x34, 0x12}, "JMP $1234", 3},
		{[]uint8{0xBD, 0x00, 0x02}, "LDA $0200,X", 3},
		{[]uint8{0xB9, 0x00, 0x02}, "LDA $0200,Y", 3},
		{[]uint8{0x6C, 0xFF, 0x30}, "JMP ($30FF)", 3},
		{[]uint8{0x02}, "XXX", 1},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			mem := &flatMemory{}
			copy(mem[0x8000:], test.program)

			text, length := DisassembleAt(mem, 0x8000)
			assert.Equal(t, test.want, text)
			assert.Equal(t, test.length, length)
		})
	}
}

func TestDisassembleChainsInstructions(t *testing.T) {
	mem := &flatMemory{}
	copy(mem[0x8000:], []uint8{
		0xA9, 0x05,       // LDA #$05
		0x8D, 0x00, 0x02, // STA $0200
		0xEA,             // NOP
	})

	lines := Disassemble(mem, 0x8000, 0x8005)
	require.Len(t, lines, 3)

	assert.Equal(t, "$8000: LDA #$05 {IMM}", lines[0x8000].Text)
	assert.Equal(t, uint16(0x8002), lines[0x8000].Next)
	assert.Equal(t, "$8002: STA $0200 {ABS}", lines[0x8002].Text)
	assert.Equal(t, uint16(0x8000), lines[0x8002].Previous)
	assert.Equal(t, uint16(0x8005), lines[0x8002].Next)
	assert.Equal(t, "$8005: NOP {IMP}", lines[0x8005].Text)
	assert.Equal(t, uint16(0x8002), lines[0x8005].Previous)
}

func TestDisassembleEndOfMemory(t *testing.T) {
	mem := &flatMemory{}
	mem[0xFFFF] = 0xEA

	lines := Disassemble(mem, 0xFFFE, 0xFFFF)
	assert.Len(t, lines, 2)
	assert.Equal(t, uint16(0x0000), lines[0xFFFF].Next)
}
