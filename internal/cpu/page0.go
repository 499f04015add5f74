package cpu

// executePage0 decodes and runs an unprefixed opcode, the base instruction
// set present on every 6809.
func (c *CPU) executePage0(opcode uint8) {
	switch opcode {

	// --- single-operand read-modify-write, direct/indexed/extended ---
	case 0x00:
		c.rmw8(6, c.directMode, c.negOp)
	case 0x03:
		c.rmw8(6, c.directMode, c.comOp)
	case 0x04:
		c.rmw8(6, c.directMode, c.lsrOp)
	case 0x06:
		c.rmw8(6, c.directMode, c.rorOp)
	case 0x07:
		c.rmw8(6, c.directMode, c.asrOp)
	case 0x08:
		c.rmw8(6, c.directMode, c.aslOp)
	case 0x09:
		c.rmw8(6, c.directMode, c.rolOp)
	case 0x0A:
		c.rmw8(6, c.directMode, c.decOp)
	case 0x0C:
		c.rmw8(6, c.directMode, c.incOp)
	case 0x0D:
		c.rmw8(6, c.directMode, c.tstOp)
	case 0x0E:
		ea, extra := c.directMode()
		c.addCycles(3 + extra)
		c.Reg.PC = ea
	case 0x0F:
		c.rmw8(6, c.directMode, c.clrOp)

	case 0x60:
		c.rmw8(6, c.indexedMode, c.negOp)
	case 0x63:
		c.rmw8(6, c.indexedMode, c.comOp)
	case 0x64:
		c.rmw8(6, c.indexedMode, c.lsrOp)
	case 0x66:
		c.rmw8(6, c.indexedMode, c.rorOp)
	case 0x67:
		c.rmw8(6, c.indexedMode, c.asrOp)
	case 0x68:
		c.rmw8(6, c.indexedMode, c.aslOp)
	case 0x69:
		c.rmw8(6, c.indexedMode, c.rolOp)
	case 0x6A:
		c.rmw8(6, c.indexedMode, c.decOp)
	case 0x6C:
		c.rmw8(6, c.indexedMode, c.incOp)
	case 0x6D:
		c.rmw8(6, c.indexedMode, c.tstOp)
	case 0x6E:
		ea, extra := c.indexedMode()
		c.addCycles(3 + extra)
		c.Reg.PC = ea
	case 0x6F:
		c.rmw8(6, c.indexedMode, c.clrOp)

	case 0x70:
		c.rmw8(7, c.extendedMode, c.negOp)
	case 0x73:
		c.rmw8(7, c.extendedMode, c.comOp)
	case 0x74:
		c.rmw8(7, c.extendedMode, c.lsrOp)
	case 0x76:
		c.rmw8(7, c.extendedMode, c.rorOp)
	case 0x77:
		c.rmw8(7, c.extendedMode, c.asrOp)
	case 0x78:
		c.rmw8(7, c.extendedMode, c.aslOp)
	case 0x79:
		c.rmw8(7, c.extendedMode, c.rolOp)
	case 0x7A:
		c.rmw8(7, c.extendedMode, c.decOp)
	case 0x7C:
		c.rmw8(7, c.extendedMode, c.incOp)
	case 0x7D:
		c.rmw8(7, c.extendedMode, c.tstOp)
	case 0x7E:
		ea, extra := c.extendedMode()
		c.addCycles(4 + extra)
		c.Reg.PC = ea
	case 0x7F:
		c.rmw8(7, c.extendedMode, c.clrOp)

	// --- inherent single-operand on A/B ---
	case 0x40:
		c.Reg.A = c.negOp(c.Reg.A)
		c.addCycles(2)
	case 0x43:
		c.Reg.A = c.comOp(c.Reg.A)
		c.addCycles(2)
	case 0x44:
		c.Reg.A = c.lsrOp(c.Reg.A)
		c.addCycles(2)
	case 0x46:
		c.Reg.A = c.rorOp(c.Reg.A)
		c.addCycles(2)
	case 0x47:
		c.Reg.A = c.asrOp(c.Reg.A)
		c.addCycles(2)
	case 0x48:
		c.Reg.A = c.aslOp(c.Reg.A)
		c.addCycles(2)
	case 0x49:
		c.Reg.A = c.rolOp(c.Reg.A)
		c.addCycles(2)
	case 0x4A:
		c.Reg.A = c.decOp(c.Reg.A)
		c.addCycles(2)
	case 0x4C:
		c.Reg.A = c.incOp(c.Reg.A)
		c.addCycles(2)
	case 0x4D:
		c.tstOp(c.Reg.A)
		c.addCycles(2)
	case 0x4F:
		c.Reg.A = c.clrOp(c.Reg.A)
		c.addCycles(2)

	case 0x50:
		c.Reg.B = c.negOp(c.Reg.B)
		c.addCycles(2)
	case 0x53:
		c.Reg.B = c.comOp(c.Reg.B)
		c.addCycles(2)
	case 0x54:
		c.Reg.B = c.lsrOp(c.Reg.B)
		c.addCycles(2)
	case 0x56:
		c.Reg.B = c.rorOp(c.Reg.B)
		c.addCycles(2)
	case 0x57:
		c.Reg.B = c.asrOp(c.Reg.B)
		c.addCycles(2)
	case 0x58:
		c.Reg.B = c.aslOp(c.Reg.B)
		c.addCycles(2)
	case 0x59:
		c.Reg.B = c.rolOp(c.Reg.B)
		c.addCycles(2)
	case 0x5A:
		c.Reg.B = c.decOp(c.Reg.B)
		c.addCycles(2)
	case 0x5C:
		c.Reg.B = c.incOp(c.Reg.B)
		c.addCycles(2)
	case 0x5D:
		c.tstOp(c.Reg.B)
		c.addCycles(2)
	case 0x5F:
		c.Reg.B = c.clrOp(c.Reg.B)
		c.addCycles(2)

	// --- other inherent ---
	case 0x12: // NOP
		c.addCycles(2)
	case 0x13: // SYNC
		c.waiting = true
		c.addCycles(2)
	case 0x16: // LBRA
		c.Reg.PC = c.relative16()
		c.addCycles(5)
	case 0x17: // LBSR
		target := c.relative16()
		c.pushReg16(stackS, c.Reg.PC)
		c.Reg.PC = target
		c.addCycles(9)
	case 0x19: // DAA
		c.execDAA()
		c.addCycles(2)
	case 0x1A: // ORCC
		c.Reg.CC |= c.fetch8()
		c.addCycles(3)
	case 0x1C: // ANDCC
		c.Reg.CC &= c.fetch8()
		c.addCycles(3)
	case 0x1D: // SEX
		c.Reg.A = 0
		if c.Reg.B&0x80 != 0 {
			c.Reg.A = 0xFF
		}
		c.Reg.setNZ16(c.Reg.D())
		c.addCycles(2)
	case 0x1E: // EXG
		c.execEXG(c.fetch8())
		c.addCycles(8)
	case 0x1F: // TFR
		c.execTFR(c.fetch8())
		c.addCycles(6)

	// --- short branches ---
	case 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27,
		0x28, 0x29, 0x2A, 0x2B, 0x2C, 0x2D, 0x2E, 0x2F:
		c.shortBranch(opcode & 0x0F)

	// --- LEA / stack ops ---
	case 0x30: // LEAX
		ea, extra := c.indexedMode()
		c.Reg.X = ea
		c.Reg.SetZero(ea == 0)
		c.addCycles(4 + extra)
	case 0x31: // LEAY
		ea, extra := c.indexedMode()
		c.Reg.Y = ea
		c.Reg.SetZero(ea == 0)
		c.addCycles(4 + extra)
	case 0x32: // LEAS
		ea, extra := c.indexedMode()
		c.Reg.S = ea
		c.addCycles(4 + extra)
	case 0x33: // LEAU
		ea, extra := c.indexedMode()
		c.Reg.U = ea
		c.addCycles(4 + extra)
	case 0x34: // PSHS
		n := c.pshPostbyte(stackS, c.fetch8())
		c.addCycles(5 + n)
	case 0x35: // PULS
		n := c.pulPostbyte(stackS, c.fetch8())
		c.addCycles(5 + n)
	case 0x36: // PSHU
		n := c.pshPostbyte(stackU, c.fetch8())
		c.addCycles(5 + n)
	case 0x37: // PULU
		n := c.pulPostbyte(stackU, c.fetch8())
		c.addCycles(5 + n)
	case 0x39: // RTS
		c.Reg.PC = c.pullReg16(stackS)
		c.addCycles(5)
	case 0x3A: // ABX
		c.Reg.X += uint16(c.Reg.B)
		c.addCycles(3)
	case 0x3B: // RTI
		c.popCCState()
		if c.Reg.Entire() {
			c.addCycles(15)
		} else {
			c.addCycles(6)
		}
	case 0x3C: // CWAI
		c.Reg.CC &= c.fetch8()
		c.pushCCState(true, stackS)
		c.waiting = true
		c.addCycles(20)
	case 0x3D: // MUL
		result := uint16(c.Reg.A) * uint16(c.Reg.B)
		c.Reg.SetD(result)
		c.Reg.SetZero(result == 0)
		c.Reg.SetCarry(result&0x80 != 0)
		c.addCycles(11)
	case 0x3F: // SWI
		c.pushCCState(true, stackS)
		c.Reg.SetIRQMask(true)
		c.Reg.SetFIRQMask(true)
		c.Reg.PC = c.read16(VectorSWI)
		c.addCycles(19)

	case 0x8D: // BSR
		target := c.relative8()
		c.pushReg16(stackS, c.Reg.PC)
		c.Reg.PC = target
		c.addCycles(7)

	case 0x9D: // JSR direct
		ea := c.directEA()
		c.pushReg16(stackS, c.Reg.PC)
		c.Reg.PC = ea
		c.addCycles(7)
	case 0xAD: // JSR indexed
		ea, extra := c.indexedEA()
		c.pushReg16(stackS, c.Reg.PC)
		c.Reg.PC = ea
		c.addCycles(7 + extra)
	case 0xBD: // JSR extended
		ea := c.extendedEA()
		c.pushReg16(stackS, c.Reg.PC)
		c.Reg.PC = ea
		c.addCycles(8)

	default:
		if opcode >= 0x80 {
			c.executeALU0(opcode)
		} else {
			c.errs.Undefined("cpu.executePage0", "illegal opcode $%02X", opcode)
			c.addCycles(2)
		}
	}
}

func (c *CPU) negOp(v uint8) uint8 { return c.applySub8(0, v, false) }

func (c *CPU) comOp(v uint8) uint8 {
	r := ^v
	c.logic8(r)
	c.Reg.SetCarry(true)
	return r
}

func (c *CPU) lsrOp(v uint8) uint8 {
	carry := v&0x01 != 0
	r := v >> 1
	c.Reg.SetCarry(carry)
	c.Reg.SetNegative(false)
	c.Reg.SetZero(r == 0)
	return r
}

func (c *CPU) rorOp(v uint8) uint8 {
	carryIn := uint8(0)
	if c.Reg.Carry() {
		carryIn = 0x80
	}
	carryOut := v&0x01 != 0
	r := (v >> 1) | carryIn
	c.Reg.SetCarry(carryOut)
	c.Reg.setNZ8(r)
	return r
}

func (c *CPU) asrOp(v uint8) uint8 {
	carry := v&0x01 != 0
	r := (v >> 1) | (v & 0x80)
	c.Reg.SetCarry(carry)
	c.Reg.setNZ8(r)
	return r
}

func (c *CPU) aslOp(v uint8) uint8 {
	carry := v&0x80 != 0
	r := v << 1
	overflow := (v^r)&0x80 != 0
	c.Reg.SetCarry(carry)
	c.Reg.SetOverflow(overflow)
	c.Reg.setNZ8(r)
	return r
}

func (c *CPU) rolOp(v uint8) uint8 {
	carryIn := uint8(0)
	if c.Reg.Carry() {
		carryIn = 0x01
	}
	carryOut := v&0x80 != 0
	r := (v << 1) | carryIn
	overflow := (v^r)&0x80 != 0
	c.Reg.SetCarry(carryOut)
	c.Reg.SetOverflow(overflow)
	c.Reg.setNZ8(r)
	return r
}

func (c *CPU) decOp(v uint8) uint8 {
	r := v - 1
	c.Reg.SetOverflow(v == 0x80)
	c.Reg.setNZ8(r)
	return r
}

func (c *CPU) incOp(v uint8) uint8 {
	r := v + 1
	c.Reg.SetOverflow(v == 0x7F)
	c.Reg.setNZ8(r)
	return r
}

func (c *CPU) tstOp(v uint8) uint8 {
	c.Reg.SetOverflow(false)
	c.Reg.setNZ8(v)
	return v
}

func (c *CPU) clrOp(uint8) uint8 {
	c.Reg.SetCarry(false)
	c.Reg.SetOverflow(false)
	c.Reg.SetZero(true)
	c.Reg.SetNegative(false)
	return 0
}

// execDAA adjusts A after a BCD addition, using C/H from the preceding
// ADD/ADC plus A's own nibbles to decide each nibble's correction.
func (c *CPU) execDAA() {
	a := c.Reg.A
	correction := uint8(0)
	carry := c.Reg.Carry()

	lowNibble := a & 0x0F
	if c.Reg.HalfCarry() || lowNibble > 9 {
		correction |= 0x06
	}
	highNibble := a >> 4
	if carry || highNibble > 9 || (highNibble >= 9 && lowNibble > 9) {
		correction |= 0x60
		carry = true
	}

	result := a + correction
	c.Reg.A = result
	c.Reg.SetCarry(carry)
	c.Reg.setNZ8(result)
}
