package cpu

// eaFunc computes an operand's effective address for one addressing mode,
// returning it with any extra cycles that mode costs.
type eaFunc func() (ea uint16, extra int)

func (c *CPU) directMode() (uint16, int)   { return c.directEA(), 0 }
func (c *CPU) extendedMode() (uint16, int) { return c.extendedEA(), 0 }
func (c *CPU) indexedMode() (uint16, int)  { return c.indexedEA() }

// alu8read fetches the 8-bit operand for an ALU op at addressing mode
// selected by ea, charging baseCycles (already includes opcode fetch) plus
// any indexed extra.
func (c *CPU) alu8read(base int, ea eaFunc) uint8 {
	addr, extra := ea()
	c.addCycles(base + extra)
	return c.read8(addr)
}

func (c *CPU) alu8imm(base int) uint8 {
	v := c.fetch8()
	c.addCycles(base)
	return v
}

func (c *CPU) alu16read(base int, ea eaFunc) uint16 {
	addr, extra := ea()
	c.addCycles(base + extra)
	return c.read16(addr)
}

func (c *CPU) alu16imm(base int) uint16 {
	v := c.fetch16()
	c.addCycles(base)
	return v
}

// store8 writes an 8-bit value to the addressing mode's EA.
func (c *CPU) store8(base int, ea eaFunc, value uint8) {
	addr, extra := ea()
	c.addCycles(base + extra)
	c.write8(addr, value)
}

func (c *CPU) store16(base int, ea eaFunc, value uint16) {
	addr, extra := ea()
	c.addCycles(base + extra)
	c.write16(addr, value)
}

// rmw8 reads, transforms, and writes back an 8-bit memory operand (NEG,
// COM, LSR, ROR, ASR, ASL, ROL, DEC, INC, TST, CLR on direct/indexed/
// extended addressing).
func (c *CPU) rmw8(base int, ea eaFunc, f func(uint8) uint8) {
	addr, extra := ea()
	c.addCycles(base + extra)
	v := c.read8(addr)
	result := f(v)
	c.write8(addr, result)
}
