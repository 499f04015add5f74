package cpu

// condition evaluates one of the 16 short/long branch conditions from the
// low nibble of a Bcc/LBcc opcode (0x2n / 0x10 0x2n share the same table).
func (c *CPU) condition(n uint8) bool {
	cc := &c.Reg
	switch n {
	case 0x0: // BRA
		return true
	case 0x1: // BRN
		return false
	case 0x2: // BHI
		return !cc.Carry() && !cc.Zero()
	case 0x3: // BLS
		return cc.Carry() || cc.Zero()
	case 0x4: // BHS/BCC
		return !cc.Carry()
	case 0x5: // BLO/BCS
		return cc.Carry()
	case 0x6: // BNE
		return !cc.Zero()
	case 0x7: // BEQ
		return cc.Zero()
	case 0x8: // BVC
		return !cc.Overflow()
	case 0x9: // BVS
		return cc.Overflow()
	case 0xA: // BPL
		return !cc.Negative()
	case 0xB: // BMI
		return cc.Negative()
	case 0xC: // BGE
		return cc.Negative() == cc.Overflow()
	case 0xD: // BLT
		return cc.Negative() != cc.Overflow()
	case 0xE: // BGT
		return !cc.Zero() && (cc.Negative() == cc.Overflow())
	default: // 0xF BLE
		return cc.Zero() || (cc.Negative() != cc.Overflow())
	}
}

// shortBranch handles an 8-bit-displacement conditional branch: the
// displacement is always fetched (and PC advanced past it) whether or not
// the branch is taken, so cost is a fixed 3 cycles.
func (c *CPU) shortBranch(n uint8) {
	target := c.relative8()
	if c.condition(n) {
		c.Reg.PC = target
	}
	c.addCycles(3)
}

// longBranch handles a 16-bit-displacement conditional branch (the $10
// 0x2n page). Not-taken costs 5 cycles; taken costs one more.
func (c *CPU) longBranch(n uint8) {
	target := c.relative16()
	taken := c.condition(n)
	if taken {
		c.Reg.PC = target
	}
	if taken {
		c.addCycles(6)
	} else {
		c.addCycles(5)
	}
}
