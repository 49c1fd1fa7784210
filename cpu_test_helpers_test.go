package nes

// flatMemory is 64 KB of plain RAM, enough to exercise the CPU without the
// NES memory map.
type flatMemory [0x10000]uint8

func (m *flatMemory) ReadByte(addr uint16) uint8 {
	return m[addr]
}

func (m *flatMemory) WriteByte(addr uint16, data uint8) {
	m[addr] = data
}

func (m *flatMemory) ReadWord(addr uint16) uint16 {
	return uint16(m[addr+1])<<8 | uint16(m[addr])
}

func (m *flatMemory) ReadWordPageWrapped(addr uint16) uint16 {
	next := addr&0xFF00 | uint16(uint8(addr)+1)
	return uint16(m[next])<<8 | uint16(m[addr])
}

type cpuTestRig struct {
	mem *flatMemory
	cpu *CPU
}

const (
	testIRQHandler = 0x9000
	testNMIHandler = 0xA000
)

func newCPUTestRig() *cpuTestRig {
	mem := &flatMemory{}
	return &cpuTestRig{
		mem: mem,
		cpu: NewCPU(mem),
	}
}

// load places program at start, points the vectors at fixed handlers and
// leaves the CPU at start with a cleared status.
func (r *cpuTestRig) load(start uint16, program ...uint8) {
	for i, v := range program {
		r.mem[start+uint16(i)] = v
	}
	r.setWord(resetVector, start)
	r.setWord(irqVector, testIRQHandler)
	r.setWord(nmiVector, testNMIHandler)
	r.cpu.PowerUp()
	r.cpu.SetStatus(0x00)
}

func (r *cpuTestRig) setWord(addr, v uint16) {
	r.mem[addr] = uint8(v)
	r.mem[addr+1] = uint8(v >> 8)
}

// step runs n instructions and returns the cycles of the last one.
func (r *cpuTestRig) step(n int) int {
	cycles := 0
	for i := 0; i < n; i++ {
		cycles = r.cpu.Step()
	}
	return cycles
}

// stackTop returns the byte depth entries above the stack pointer.
func (r *cpuTestRig) stackTop(depth uint8) uint8 {
	return r.mem[stackBase|uint16(r.cpu.SP()+depth)]
}
