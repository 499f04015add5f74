package cpu

// executePage2 decodes an opcode prefixed by $11: SWI3 and the U/S-register
// forms of CMP.
func (c *CPU) executePage2(opcode uint8) {
	switch opcode {
	case 0x3F: // SWI3
		c.pushCCState(true, stackS)
		c.Reg.PC = c.read16(VectorSWI3)
		c.addCycles(20)

	case 0x83: // CMPU immediate
		v := c.alu16imm(5)
		c.applySub16(c.Reg.U, v, false)
	case 0x93: // CMPU direct
		v := c.alu16read(7, c.directMode)
		c.applySub16(c.Reg.U, v, false)
	case 0xA3: // CMPU indexed
		v := c.alu16read(7, c.indexedMode)
		c.applySub16(c.Reg.U, v, false)
	case 0xB3: // CMPU extended
		v := c.alu16read(8, c.extendedMode)
		c.applySub16(c.Reg.U, v, false)

	case 0x8C: // CMPS immediate
		v := c.alu16imm(5)
		c.applySub16(c.Reg.S, v, false)
	case 0x9C: // CMPS direct
		v := c.alu16read(7, c.directMode)
		c.applySub16(c.Reg.S, v, false)
	case 0xAC: // CMPS indexed
		v := c.alu16read(7, c.indexedMode)
		c.applySub16(c.Reg.S, v, false)
	case 0xBC: // CMPS extended
		v := c.alu16read(8, c.extendedMode)
		c.applySub16(c.Reg.S, v, false)

	default:
		c.errs.Undefined("cpu.executePage2", "illegal opcode $11 $%02X", opcode)
		c.addCycles(3)
	}
}
