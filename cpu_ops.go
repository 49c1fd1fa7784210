package nes

// Every operation receives the CPU after its addressing mode has been
// resolved and returns 1 when it pays the page-crossing penalty of its
// addressing mode.

func (c *CPU) fetch() uint8 {
	if c.mode == IMP || c.mode == ACC {
		c.fetched = c.accumulator
	} else {
		c.fetched = c.read(c.addrAbs)
	}
	return c.fetched
}

// store writes a read-modify-write result back to where it was fetched from.
func (c *CPU) store(v uint8) {
	if c.mode == ACC {
		c.accumulator = v
		return
	}
	c.write(c.addrAbs, v)
}

func (c *CPU) add(operand uint8) {
	a := uint16(c.accumulator)
	m := uint16(operand)
	temp := a + m + uint16(c.getFlag(C))
	c.SetFlag(C, temp > 0xFF)
	c.SetFlag(V, ^(a^m)&(a^temp)&0x80 != 0)
	c.accumulator = uint8(temp)
	c.setZN(c.accumulator)
}

func ADC(c *CPU) uint8 {
	c.add(c.fetch())
	return 1
}

// SBC is ADC of the one's complement, the carry acting as inverted borrow.
func SBC(c *CPU) uint8 {
	c.add(^c.fetch())
	return 1
}

func AND(c *CPU) uint8 {
	c.accumulator &= c.fetch()
	c.setZN(c.accumulator)
	return 1
}

func ORA(c *CPU) uint8 {
	c.accumulator |= c.fetch()
	c.setZN(c.accumulator)
	return 1
}

func EOR(c *CPU) uint8 {
	c.accumulator ^= c.fetch()
	c.setZN(c.accumulator)
	return 1
}

func ASL(c *CPU) uint8 {
	v := c.fetch()
	c.SetFlag(C, v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	c.store(v)
	return 0
}

func LSR(c *CPU) uint8 {
	v := c.fetch()
	c.SetFlag(C, v&0x01 != 0)
	v >>= 1
	c.setZN(v)
	c.store(v)
	return 0
}

func ROL(c *CPU) uint8 {
	v := c.fetch()
	carry := c.getFlag(C)
	c.SetFlag(C, v&0x80 != 0)
	v = v<<1 | carry
	c.setZN(v)
	c.store(v)
	return 0
}

func ROR(c *CPU) uint8 {
	v := c.fetch()
	carry := c.getFlag(C)
	c.SetFlag(C, v&0x01 != 0)
	v = v>>1 | carry<<7
	c.setZN(v)
	c.store(v)
	return 0
}

func BIT(c *CPU) uint8 {
	v := c.fetch()
	c.SetFlag(Z, c.accumulator&v == 0x00)
	c.SetFlag(N, v&(1<<7) != 0)
	c.SetFlag(V, v&(1<<6) != 0)
	return 0
}

func (c *CPU) branch(taken bool) {
	if !taken {
		return
	}
	c.extra++
	if pageCrossed(c.pc, c.addrAbs) {
		c.extra++
	}
	c.pc = c.addrAbs
}

func BCC(c *CPU) uint8 { c.branch(!c.Flag(C)); return 0 }
func BCS(c *CPU) uint8 { c.branch(c.Flag(C)); return 0 }
func BEQ(c *CPU) uint8 { c.branch(c.Flag(Z)); return 0 }
func BNE(c *CPU) uint8 { c.branch(!c.Flag(Z)); return 0 }
func BMI(c *CPU) uint8 { c.branch(c.Flag(N)); return 0 }
func BPL(c *CPU) uint8 { c.branch(!c.Flag(N)); return 0 }
func BVC(c *CPU) uint8 { c.branch(!c.Flag(V)); return 0 }
func BVS(c *CPU) uint8 { c.branch(c.Flag(V)); return 0 }

func JMP(c *CPU) uint8 {
	c.pc = c.addrAbs
	return 0
}

// JSR pushes the address of its own last byte.
func JSR(c *CPU) uint8 {
	c.pushWord(c.pc - 1)
	c.pc = c.addrAbs
	return 0
}

func RTS(c *CPU) uint8 {
	c.pc = c.pullWord() + 1
	return 0
}

// BRK skips a padding byte, so the pushed return address is BRK+2.
func BRK(c *CPU) uint8 {
	c.pc++
	c.interrupt(irqVector, c.status|uint8(B))
	return 0
}

func RTI(c *CPU) uint8 {
	c.SetStatus(c.pull())
	c.pc = c.pullWord()
	return 0
}

func PHA(c *CPU) uint8 {
	c.push(c.accumulator)
	return 0
}

func PHP(c *CPU) uint8 {
	c.push(c.status | uint8(B) | uint8(U))
	return 0
}

func PLA(c *CPU) uint8 {
	c.accumulator = c.pull()
	c.setZN(c.accumulator)
	return 0
}

func PLP(c *CPU) uint8 {
	c.SetStatus(c.pull())
	return 0
}

func CLC(c *CPU) uint8 { c.SetFlag(C, false); return 0 }
func CLD(c *CPU) uint8 { c.SetFlag(D, false); return 0 }
func CLI(c *CPU) uint8 { c.SetFlag(I, false); return 0 }
func CLV(c *CPU) uint8 { c.SetFlag(V, false); return 0 }
func SEC(c *CPU) uint8 { c.SetFlag(C, true); return 0 }
func SED(c *CPU) uint8 { c.SetFlag(D, true); return 0 }
func SEI(c *CPU) uint8 { c.SetFlag(I, true); return 0 }

func (c *CPU) compare(reg uint8) {
	v := c.fetch()
	c.SetFlag(C, reg >= v)
	c.setZN(reg - v)
}

func CMP(c *CPU) uint8 {
	c.compare(c.accumulator)
	return 1
}

func CPX(c *CPU) uint8 {
	c.compare(c.xRegister)
	return 0
}

func CPY(c *CPU) uint8 {
	c.compare(c.yRegister)
	return 0
}

func DEC(c *CPU) uint8 {
	v := c.fetch() - 1
	c.write(c.addrAbs, v)
	c.setZN(v)
	return 0
}

func INC(c *CPU) uint8 {
	v := c.fetch() + 1
	c.write(c.addrAbs, v)
	c.setZN(v)
	return 0
}

func DEX(c *CPU) uint8 {
	c.xRegister--
	c.setZN(c.xRegister)
	return 0
}

func DEY(c *CPU) uint8 {
	c.yRegister--
	c.setZN(c.yRegister)
	return 0
}

func INX(c *CPU) uint8 {
	c.xRegister++
	c.setZN(c.xRegister)
	return 0
}

func INY(c *CPU) uint8 {
	c.yRegister++
	c.setZN(c.yRegister)
	return 0
}

func LDA(c *CPU) uint8 {
	c.accumulator = c.fetch()
	c.setZN(c.accumulator)
	return 1
}

func LDX(c *CPU) uint8 {
	c.xRegister = c.fetch()
	c.setZN(c.xRegister)
	return 1
}

func LDY(c *CPU) uint8 {
	c.yRegister = c.fetch()
	c.setZN(c.yRegister)
	return 1
}

func STA(c *CPU) uint8 {
	c.write(c.addrAbs, c.accumulator)
	return 0
}

func STX(c *CPU) uint8 {
	c.write(c.addrAbs, c.xRegister)
	return 0
}

func STY(c *CPU) uint8 {
	c.write(c.addrAbs, c.yRegister)
	return 0
}

func TAX(c *CPU) uint8 {
	c.xRegister = c.accumulator
	c.setZN(c.xRegister)
	return 0
}

func TAY(c *CPU) uint8 {
	c.yRegister = c.accumulator
	c.setZN(c.yRegister)
	return 0
}

func TSX(c *CPU) uint8 {
	c.xRegister = c.stkp
	c.setZN(c.xRegister)
	return 0
}

func TXA(c *CPU) uint8 {
	c.accumulator = c.xRegister
	c.setZN(c.accumulator)
	return 0
}

// TXS is the only transfer that leaves the flags alone.
func TXS(c *CPU) uint8 {
	c.stkp = c.xRegister
	return 0
}

func TYA(c *CPU) uint8 {
	c.accumulator = c.yRegister
	c.setZN(c.accumulator)
	return 0
}

// NOP covers the official $EA and the unofficial no-ops; the absolute,X
// forms pay the page-crossing cycle.
func NOP(c *CPU) uint8 {
	if c.mode == ABX {
		return 1
	}
	return 0
}

// XXX stands in for the remaining unofficial opcodes: operand bytes are
// consumed and the base cycles charged, nothing else happens.
func XXX(c *CPU) uint8 {
	return 0
}
