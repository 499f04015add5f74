package cpu

// executePage1 decodes an opcode prefixed by $10: the long conditional
// branches, SWI2, the Y/S register forms of LD/ST, and CMPD/CMPY.
func (c *CPU) executePage1(opcode uint8) {
	switch {
	case opcode >= 0x21 && opcode <= 0x2F:
		c.longBranch(opcode & 0x0F)
		return
	}

	switch opcode {
	case 0x3F: // SWI2
		c.pushCCState(true, stackS)
		c.Reg.PC = c.read16(VectorSWI2)
		c.addCycles(20)

	case 0x83: // CMPD immediate
		v := c.alu16imm(5)
		c.applySub16(c.Reg.D(), v, false)
	case 0x93: // CMPD direct
		v := c.alu16read(7, c.directMode)
		c.applySub16(c.Reg.D(), v, false)
	case 0xA3: // CMPD indexed
		v := c.alu16read(7, c.indexedMode)
		c.applySub16(c.Reg.D(), v, false)
	case 0xB3: // CMPD extended
		v := c.alu16read(8, c.extendedMode)
		c.applySub16(c.Reg.D(), v, false)

	case 0x8C: // CMPY immediate
		v := c.alu16imm(5)
		c.applySub16(c.Reg.Y, v, false)
	case 0x9C: // CMPY direct
		v := c.alu16read(7, c.directMode)
		c.applySub16(c.Reg.Y, v, false)
	case 0xAC: // CMPY indexed
		v := c.alu16read(7, c.indexedMode)
		c.applySub16(c.Reg.Y, v, false)
	case 0xBC: // CMPY extended
		v := c.alu16read(8, c.extendedMode)
		c.applySub16(c.Reg.Y, v, false)

	case 0x8E: // LDY immediate
		c.Reg.Y = c.alu16imm(4)
		c.logic16c(c.Reg.Y)
	case 0x9E: // LDY direct
		c.Reg.Y = c.alu16read(6, c.directMode)
		c.logic16c(c.Reg.Y)
	case 0xAE: // LDY indexed
		c.Reg.Y = c.alu16read(6, c.indexedMode)
		c.logic16c(c.Reg.Y)
	case 0xBE: // LDY extended
		c.Reg.Y = c.alu16read(7, c.extendedMode)
		c.logic16c(c.Reg.Y)
	case 0x9F: // STY direct
		c.store16(5, c.directMode, c.Reg.Y)
		c.logic16c(c.Reg.Y)
	case 0xAF: // STY indexed
		c.store16(5, c.indexedMode, c.Reg.Y)
		c.logic16c(c.Reg.Y)
	case 0xBF: // STY extended
		c.store16(6, c.extendedMode, c.Reg.Y)
		c.logic16c(c.Reg.Y)

	case 0xCE: // LDS immediate
		c.Reg.S = c.alu16imm(4)
		c.logic16c(c.Reg.S)
	case 0xDE: // LDS direct
		c.Reg.S = c.alu16read(6, c.directMode)
		c.logic16c(c.Reg.S)
	case 0xEE: // LDS indexed
		c.Reg.S = c.alu16read(6, c.indexedMode)
		c.logic16c(c.Reg.S)
	case 0xFE: // LDS extended
		c.Reg.S = c.alu16read(7, c.extendedMode)
		c.logic16c(c.Reg.S)
	case 0xDF: // STS direct
		c.store16(5, c.directMode, c.Reg.S)
		c.logic16c(c.Reg.S)
	case 0xEF: // STS indexed
		c.store16(5, c.indexedMode, c.Reg.S)
		c.logic16c(c.Reg.S)
	case 0xFF: // STS extended
		c.store16(6, c.extendedMode, c.Reg.S)
		c.logic16c(c.Reg.S)

	default:
		c.errs.Undefined("cpu.executePage1", "illegal opcode $10 $%02X", opcode)
		c.addCycles(3)
	}
}
