package cpu

func (c *CPU) applyAdd8(a, b uint8, carryIn bool) uint8 {
	r, carry, v, h, z, n := add8(a, b, carryIn)
	c.Reg.SetCarry(carry)
	c.Reg.SetOverflow(v)
	c.Reg.SetHalfCarry(h)
	c.Reg.SetZero(z)
	c.Reg.SetNegative(n)
	return r
}

func (c *CPU) applySub8(a, b uint8, borrowIn bool) uint8 {
	r, carry, v, z, n := sub8(a, b, borrowIn)
	c.Reg.SetCarry(carry)
	c.Reg.SetOverflow(v)
	c.Reg.SetZero(z)
	c.Reg.SetNegative(n)
	return r
}

func (c *CPU) applyAdd16(a, b uint16, carryIn bool) uint16 {
	r, carry, v, z, n := add16(a, b, carryIn)
	c.Reg.SetCarry(carry)
	c.Reg.SetOverflow(v)
	c.Reg.SetZero(z)
	c.Reg.SetNegative(n)
	return r
}

func (c *CPU) applySub16(a, b uint16, borrowIn bool) uint16 {
	r, carry, v, z, n := sub16(a, b, borrowIn)
	c.Reg.SetCarry(carry)
	c.Reg.SetOverflow(v)
	c.Reg.SetZero(z)
	c.Reg.SetNegative(n)
	return r
}

// logic8 applies a bitwise op, clearing V and setting N/Z from the result
// (AND/OR/EOR/COM share this).
func (c *CPU) logic8(result uint8) uint8 {
	c.Reg.SetOverflow(false)
	c.Reg.setNZ8(result)
	return result
}
