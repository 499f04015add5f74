package cpu

// pshPostbyte pushes the registers named by a PSHS/PSHU postbyte onto the
// stack named by on, in the fixed PC,other-stack,Y,X,DP,B,A,CC order (the
// same order interrupt entry uses for the registers present).
func (c *CPU) pshPostbyte(on stackSel, postbyte uint8) int {
	n := 0
	if postbyte&0x80 != 0 {
		c.pushReg16(on, c.Reg.PC)
		n += 2
	}
	if postbyte&0x40 != 0 {
		c.pushOtherStack16(on)
		n += 2
	}
	if postbyte&0x20 != 0 {
		c.pushReg16(on, c.Reg.Y)
		n += 2
	}
	if postbyte&0x10 != 0 {
		c.pushReg16(on, c.Reg.X)
		n += 2
	}
	if postbyte&0x08 != 0 {
		c.pushReg8(on, c.Reg.DP)
		n++
	}
	if postbyte&0x04 != 0 {
		c.pushReg8(on, c.Reg.B)
		n++
	}
	if postbyte&0x02 != 0 {
		c.pushReg8(on, c.Reg.A)
		n++
	}
	if postbyte&0x01 != 0 {
		c.pushReg8(on, c.Reg.CC)
		n++
	}
	return n
}

// pulPostbyte pulls registers in the reverse order pshPostbyte pushed them.
func (c *CPU) pulPostbyte(on stackSel, postbyte uint8) int {
	n := 0
	if postbyte&0x01 != 0 {
		c.Reg.CC = c.pullReg8(on)
		n++
	}
	if postbyte&0x02 != 0 {
		c.Reg.A = c.pullReg8(on)
		n++
	}
	if postbyte&0x04 != 0 {
		c.Reg.B = c.pullReg8(on)
		n++
	}
	if postbyte&0x08 != 0 {
		c.Reg.DP = c.pullReg8(on)
		n++
	}
	if postbyte&0x10 != 0 {
		c.Reg.X = c.pullReg16(on)
		n += 2
	}
	if postbyte&0x20 != 0 {
		c.Reg.Y = c.pullReg16(on)
		n += 2
	}
	if postbyte&0x40 != 0 {
		c.pullOtherStack16(on)
		n += 2
	}
	if postbyte&0x80 != 0 {
		c.Reg.PC = c.pullReg16(on)
		n += 2
	}
	return n
}

// tfrExgRead/tfrExgWrite implement the 4-bit TFR/EXG register codes: 0-5
// name 16-bit registers (D,X,Y,U,S,PC), 8-B name 8-bit registers
// (A,B,CC,DP); 6-7 are reserved.

func (c *CPU) tfrExgRead16(code uint8) uint16 {
	switch code {
	case 0x0:
		return c.Reg.D()
	case 0x1:
		return c.Reg.X
	case 0x2:
		return c.Reg.Y
	case 0x3:
		return c.Reg.U
	case 0x4:
		return c.Reg.S
	case 0x5:
		return c.Reg.PC
	default:
		c.errs.Unsupported("cpu.tfrExgRead16", "reserved TFR/EXG register code $%X", code)
		return 0
	}
}

func (c *CPU) tfrExgWrite16(code uint8, v uint16) {
	switch code {
	case 0x0:
		c.Reg.SetD(v)
	case 0x1:
		c.Reg.X = v
	case 0x2:
		c.Reg.Y = v
	case 0x3:
		c.Reg.U = v
	case 0x4:
		c.Reg.S = v
	case 0x5:
		c.Reg.PC = v
	default:
		c.errs.Unsupported("cpu.tfrExgWrite16", "reserved TFR/EXG register code $%X", code)
	}
}

func (c *CPU) tfrExgRead8(code uint8) uint8 {
	switch code {
	case 0x8:
		return c.Reg.A
	case 0x9:
		return c.Reg.B
	case 0xA:
		return c.Reg.CC
	case 0xB:
		return c.Reg.DP
	default:
		c.errs.Unsupported("cpu.tfrExgRead8", "reserved TFR/EXG register code $%X", code)
		return 0
	}
}

func (c *CPU) tfrExgWrite8(code uint8, v uint8) {
	switch code {
	case 0x8:
		c.Reg.A = v
	case 0x9:
		c.Reg.B = v
	case 0xA:
		c.Reg.CC = v
	case 0xB:
		c.Reg.DP = v
	default:
		c.errs.Unsupported("cpu.tfrExgWrite8", "reserved TFR/EXG register code $%X", code)
	}
}

func is16BitRegCode(code uint8) bool { return code <= 0x5 }

func (c *CPU) execTFR(postbyte uint8) {
	src, dst := postbyte>>4, postbyte&0x0F
	if is16BitRegCode(src) != is16BitRegCode(dst) {
		c.errs.Unsupported("cpu.execTFR", "mixed-width TFR %X->%X", src, dst)
		return
	}
	if is16BitRegCode(src) {
		c.tfrExgWrite16(dst, c.tfrExgRead16(src))
	} else {
		c.tfrExgWrite8(dst, c.tfrExgRead8(src))
	}
}

func (c *CPU) execEXG(postbyte uint8) {
	a, b := postbyte>>4, postbyte&0x0F
	if is16BitRegCode(a) != is16BitRegCode(b) {
		c.errs.Unsupported("cpu.execEXG", "mixed-width EXG %X<->%X", a, b)
		return
	}
	if is16BitRegCode(a) {
		va, vb := c.tfrExgRead16(a), c.tfrExgRead16(b)
		c.tfrExgWrite16(a, vb)
		c.tfrExgWrite16(b, va)
	} else {
		va, vb := c.tfrExgRead8(a), c.tfrExgRead8(b)
		c.tfrExgWrite8(a, vb)
		c.tfrExgWrite8(b, va)
	}
}
