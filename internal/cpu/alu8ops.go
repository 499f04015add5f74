package cpu

// addrRow names which addressing-mode column an opcode's high nibble
// selects, for the four-row accumulator instruction layout ($8x/$9x/$Ax/
// $Bx and $Cx/$Dx/$Ex/$Fx both repeat immediate/direct/indexed/extended).
type addrRow int

const (
	rowImmediate addrRow = iota
	rowDirect
	rowIndexed
	rowExtended
)

func (c *CPU) rowEA(row addrRow) (uint16, int) {
	switch row {
	case rowDirect:
		return c.directMode()
	case rowIndexed:
		return c.indexedMode()
	default:
		return c.extendedMode()
	}
}

// executeALU0 covers the page-0 8-bit and 16-bit accumulator/index
// instructions: LD/ST/ADD/ADC/SUB/SBC/AND/OR/EOR/CMP/BIT on A and B,
// ADDD/SUBD/CMPX/LDD/STD/LDX/STX/LDU/STU, each across immediate (where
// applicable), direct, indexed, and extended addressing.
func (c *CPU) executeALU0(opcode uint8) {
	row := addrRow((opcode >> 4) & 0x03)
	col := opcode & 0x0F
	isA := opcode&0x40 == 0 // $8x-$Bx act on A/D/X, $Cx-$Fx act on B/D/U

	switch col {
	case 0x0: // SUBA/SUBB
		v := c.readOperand8(row)
		reg := c.accum(isA)
		*reg = c.applySub8(*reg, v, false)
	case 0x1: // CMPA/CMPB
		v := c.readOperand8(row)
		c.applySub8(*c.accum(isA), v, false)
	case 0x2: // SBCA/SBCB
		v := c.readOperand8(row)
		reg := c.accum(isA)
		*reg = c.applySub8(*reg, v, c.Reg.Carry())
	case 0x3: // SUBD (A row) / ADDD (B row)
		v := c.readOperand16(row)
		if isA {
			c.Reg.SetD(c.applySub16(c.Reg.D(), v, false))
		} else {
			c.Reg.SetD(c.applyAdd16(c.Reg.D(), v, false))
		}
	case 0x4: // ANDA/ANDB
		v := c.readOperand8(row)
		reg := c.accum(isA)
		*reg = c.logic8(*reg & v)
	case 0x5: // BITA/BITB
		v := c.readOperand8(row)
		c.logic8(*c.accum(isA) & v)
	case 0x6: // LDA/LDB
		v := c.readOperand8(row)
		*c.accum(isA) = v
		c.logic8c(v)
	case 0x7: // STA/STB (no immediate form)
		if row == rowImmediate {
			c.illegalOpcode(opcode)
			return
		}
		v := *c.accum(isA)
		c.writeOperand8(row, v)
		c.logic8c(v)
	case 0x8: // EORA/EORB
		v := c.readOperand8(row)
		reg := c.accum(isA)
		*reg = c.logic8(*reg ^ v)
	case 0x9: // ADCA/ADCB
		v := c.readOperand8(row)
		reg := c.accum(isA)
		*reg = c.applyAdd8(*reg, v, c.Reg.Carry())
	case 0xA: // ORA/ORB
		v := c.readOperand8(row)
		reg := c.accum(isA)
		*reg = c.logic8(*reg | v)
	case 0xB: // ADDA/ADDB
		v := c.readOperand8(row)
		reg := c.accum(isA)
		*reg = c.applyAdd8(*reg, v, false)
	case 0xC: // CMPX (A row) / LDD (B row)
		if isA {
			v := c.readOperand16(row)
			c.applySub16(c.Reg.X, v, false)
		} else {
			v := c.readOperand16(row)
			c.Reg.SetD(v)
			c.logic16c(v)
		}
	case 0xD: // BSR/JSR (A row) handled directly in executePage0; STD (B row)
		if isA {
			c.illegalOpcode(opcode)
			return
		}
		if row == rowImmediate {
			c.illegalOpcode(opcode)
			return
		}
		c.writeOperand16(row, c.Reg.D())
		c.logic16c(c.Reg.D())
	case 0xE: // LDX (A row) / LDU (B row)
		v := c.readOperand16(row)
		if isA {
			c.Reg.X = v
		} else {
			c.Reg.U = v
		}
		c.logic16c(v)
	case 0xF: // STX (A row) / STU (B row)
		if row == rowImmediate {
			c.illegalOpcode(opcode)
			return
		}
		var v uint16
		if isA {
			v = c.Reg.X
		} else {
			v = c.Reg.U
		}
		c.writeOperand16(row, v)
		c.logic16c(v)
	}
}

func (c *CPU) accum(isA bool) *uint8 {
	if isA {
		return &c.Reg.A
	}
	return &c.Reg.B
}

func (c *CPU) illegalOpcode(opcode uint8) {
	c.errs.Undefined("cpu.executeALU0", "illegal opcode $%02X", opcode)
	c.addCycles(2)
}

// logic8c applies LDA/LDB/STA/STB's flag rule: N/Z set, V cleared, C
// untouched.
func (c *CPU) logic8c(v uint8) {
	c.Reg.SetOverflow(false)
	c.Reg.setNZ8(v)
}

// logic16c applies LDD/LDX/LDU/STD/STX/STU's flag rule.
func (c *CPU) logic16c(v uint16) {
	c.Reg.SetOverflow(false)
	c.Reg.setNZ16(v)
}

func rowBase8(row addrRow) int {
	if row == rowExtended {
		return 5
	}
	return 4
}

func (c *CPU) readOperand8(row addrRow) uint8 {
	if row == rowImmediate {
		return c.alu8imm(2)
	}
	return c.alu8read(rowBase8(row), func() (uint16, int) { return c.rowEA(row) })
}

func (c *CPU) writeOperand8(row addrRow, v uint8) {
	c.store8(rowBase8(row), func() (uint16, int) { return c.rowEA(row) }, v)
}

// read16 base costs are one higher than write16's, since LDD/ADDD/SUBD/
// CMPX charge an extra cycle over STD/STX/STU at the same addressing mode.
func (c *CPU) readOperand16(row addrRow) uint16 {
	if row == rowImmediate {
		return c.alu16imm(4)
	}
	base := 6
	if row == rowExtended {
		base = 7
	}
	return c.alu16read(base, func() (uint16, int) { return c.rowEA(row) })
}

func (c *CPU) writeOperand16(row addrRow, v uint16) {
	base := 5
	if row == rowExtended {
		base = 6
	}
	c.store16(base, func() (uint16, int) { return c.rowEA(row) }, v)
}
