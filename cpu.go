// Package nes emulates the 2A03 instruction core of the NES together with
// the CPU memory bus, the cartridge loader and a small console driver.
package nes

// Memory is everything the CPU needs from the bus it is wired to.
type Memory interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, data uint8)
	// ReadWord reads a little-endian word from addr and addr+1.
	ReadWord(addr uint16) uint16
	// ReadWordPageWrapped reads the high byte from the start of the same page
	// when addr is the last byte of a page.
	ReadWordPageWrapped(addr uint16) uint16
}

type CPUFlag uint8

const (
	C = CPUFlag(1 << 0) // Carry
	Z = CPUFlag(1 << 1) // Zero
	I = CPUFlag(1 << 2) // Interrupt disable
	D = CPUFlag(1 << 3) // Decimal, no effect on the 2A03
	B = CPUFlag(1 << 4) // Break
	U = CPUFlag(1 << 5) // Unused, reads back as 1
	V = CPUFlag(1 << 6) // Overflow
	N = CPUFlag(1 << 7) // Negative
)

const (
	stackBase uint16 = 0x0100

	nmiVector   uint16 = 0xFFFA
	resetVector uint16 = 0xFFFC
	irqVector   uint16 = 0xFFFE

	powerUpStatus uint8 = 0x34
	powerUpStkp   uint8 = 0xFD

	interruptCycles = 7
)

// Registers is a raw snapshot of the register file.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  uint8
}

type CPU struct {
	accumulator uint8
	xRegister   uint8
	yRegister   uint8
	stkp        uint8
	pc          uint16
	status      uint8

	// state of the instruction being executed
	opcode  uint8
	mode    AddrMode
	addrAbs uint16
	fetched uint8
	extra   int

	cycles uint64

	nmiPending bool
	irqPending bool

	mem Memory
}

func NewCPU(mem Memory) *CPU {
	return &CPU{
		stkp:   powerUpStkp,
		status: powerUpStatus,
		mem:    mem,
	}
}

func (c *CPU) A() uint8          { return c.accumulator }
func (c *CPU) X() uint8          { return c.xRegister }
func (c *CPU) Y() uint8          { return c.yRegister }
func (c *CPU) SP() uint8         { return c.stkp }
func (c *CPU) PC() uint16        { return c.pc }
func (c *CPU) Cycles() uint64    { return c.cycles }
func (c *CPU) SetPC(addr uint16) { c.pc = addr }

// Status packs the flags into the processor status byte. The unused bit is
// always reported as set.
func (c *CPU) Status() uint8 {
	return c.status | uint8(U)
}

func (c *CPU) SetStatus(p uint8) {
	c.status = p | uint8(U)
}

func (c *CPU) Flag(flag CPUFlag) bool {
	return c.status&uint8(flag) != 0
}

func (c *CPU) SetFlag(flag CPUFlag, v bool) {
	if v {
		c.status |= uint8(flag)
	} else {
		c.status &^= uint8(flag)
	}
}

func (c *CPU) getFlag(flag CPUFlag) uint8 {
	if c.status&uint8(flag) != 0 {
		return 1
	}
	return 0
}

func (c *CPU) setZN(v uint8) {
	c.SetFlag(Z, v == 0x00)
	c.SetFlag(N, v&0x80 != 0)
}

func (c *CPU) Registers() Registers {
	return Registers{
		A:  c.accumulator,
		X:  c.xRegister,
		Y:  c.yRegister,
		SP: c.stkp,
		PC: c.pc,
		P:  c.Status(),
	}
}

func (c *CPU) SetRegisters(r Registers) {
	c.accumulator = r.A
	c.xRegister = r.X
	c.yRegister = r.Y
	c.stkp = r.SP
	c.pc = r.PC
	c.SetStatus(r.P)
}

// SetNMI asserts the non-maskable interrupt line. It is serviced at the start
// of the next Step.
func (c *CPU) SetNMI() { c.nmiPending = true }

// SetIRQ asserts the maskable interrupt line. It stays pending while the
// interrupt-disable flag is set.
func (c *CPU) SetIRQ() { c.irqPending = true }

func (c *CPU) NMIPending() bool { return c.nmiPending }
func (c *CPU) IRQPending() bool { return c.irqPending }

func (c *CPU) read(addr uint16) uint8 {
	return c.mem.ReadByte(addr)
}

func (c *CPU) write(addr uint16, data uint8) {
	c.mem.WriteByte(addr, data)
}

func (c *CPU) push(data uint8) {
	c.write(stackBase|uint16(c.stkp), data)
	c.stkp--
}

func (c *CPU) pull() uint8 {
	c.stkp++
	return c.read(stackBase | uint16(c.stkp))
}

func (c *CPU) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *CPU) pullWord() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

// interrupt pushes PC and status and jumps through vector. status is the
// byte to push, with or without the break bit.
func (c *CPU) interrupt(vector uint16, status uint8) {
	c.pushWord(c.pc)
	c.push(status | uint8(U))
	c.SetFlag(I, true)
	c.pc = c.mem.ReadWord(vector)
}

// PowerUp puts the chip in its power-on state and clears the APU registers.
// The fixed bring-up values are P=$34 and SP=$FD; PC is not fixed but taken
// from the RESET vector, and the cycle counter restarts at 7. RAM is left
// alone.
func (c *CPU) PowerUp() {
	c.accumulator = 0x00
	c.xRegister = 0x00
	c.yRegister = 0x00
	c.stkp = powerUpStkp
	c.status = powerUpStatus
	c.nmiPending = false
	c.irqPending = false

	c.write(0x4017, 0x00)
	c.write(0x4015, 0x00)
	for addr := uint16(0x4000); addr <= 0x400F; addr++ {
		c.write(addr, 0x00)
	}

	c.pc = c.mem.ReadWord(resetVector)
	c.cycles = interruptCycles
}

// Reset behaves like the console reset button: registers other than SP, P
// and PC keep their values and RAM is not cleared.
func (c *CPU) Reset() {
	c.stkp -= 3
	c.SetFlag(I, true)
	c.write(0x4015, 0x00)
	c.pc = c.mem.ReadWord(resetVector)
	c.cycles += interruptCycles
}

// Step services a pending interrupt or executes one instruction and returns
// the number of cycles it took.
func (c *CPU) Step() int {
	if c.nmiPending {
		c.nmiPending = false
		c.interrupt(nmiVector, c.status&^uint8(B))
		c.cycles += interruptCycles
		return interruptCycles
	}
	if c.irqPending && !c.Flag(I) {
		c.irqPending = false
		c.interrupt(irqVector, c.status&^uint8(B))
		c.cycles += interruptCycles
		return interruptCycles
	}

	c.opcode = c.read(c.pc)
	c.pc++

	inst := &lookup[c.opcode]
	c.mode = inst.Mode
	c.extra = 0

	crossed := c.resolve(inst.Mode)
	penalty := inst.op(c)

	n := int(inst.Cycles) + int(crossed&penalty) + c.extra
	c.cycles += uint64(n)
	return n
}
