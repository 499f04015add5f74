package cpu

import "vectrexcore/internal/debug"

// Hz is the 6809's clock rate as wired on the Vectrex; the frame loop uses
// it to convert a frame duration into a CPU-cycle budget.
const Hz = 1_500_000

// Interrupt vector addresses, read from the BIOS ROM.
const (
	VectorSWI2  uint16 = 0xFFF2
	VectorSWI3  uint16 = 0xFFF4
	VectorFIRQ  uint16 = 0xFFF6
	VectorIRQ   uint16 = 0xFFF8
	VectorSWI   uint16 = 0xFFFA
	VectorNMI   uint16 = 0xFFFC
	VectorReset uint16 = 0xFFFE
)

// stackSel names which of the two hardware stacks an operation acts on —
// an explicit enum standing in for the pointer-identity comparison the
// reference implementation used to pick "the other" stack for PSHS/PSHU.
type stackSel int

const (
	stackS stackSel = iota
	stackU
)

// CPU is the Motorola 6809 core. It holds no peripheral state; Bus is the
// only external dependency, given fresh for the CPU's lifetime.
type CPU struct {
	Reg Registers

	waiting bool // entered via CWAI or SYNC, leaves on a matching interrupt

	bus  Bus
	errs *debug.ErrorHandler

	cycles int // running total for the instruction in progress
}

// New creates a CPU driving bus, reporting recoverable quirks through errs.
func New(bus Bus, errs *debug.ErrorHandler) *CPU {
	return &CPU{bus: bus, errs: errs}
}

// Reset zeroes the general registers, masks both interrupt lines, and loads
// PC from the reset vector.
func (c *CPU) Reset() {
	c.Reg = Registers{}
	c.Reg.SetIRQMask(true)
	c.Reg.SetFIRQMask(true)
	c.Reg.PC = c.read16(VectorReset)
	c.waiting = false
}

// ExecuteInstruction fetches, decodes, and executes exactly one instruction
// (or one interrupt entry, or one CWAI/SYNC wake-up), returning the cycles
// consumed.
func (c *CPU) ExecuteInstruction(irqPending, firqPending bool) int {
	c.cycles = 0

	if c.waiting {
		switch {
		case firqPending && !c.Reg.FIRQMask():
			c.waiting = false
			c.Reg.SetFIRQMask(true)
			c.Reg.PC = c.read16(VectorFIRQ)
			c.addCycles(19)
			return c.cycles
		case irqPending && !c.Reg.IRQMask():
			c.waiting = false
			c.Reg.SetIRQMask(true)
			c.Reg.PC = c.read16(VectorIRQ)
			c.addCycles(19)
			return c.cycles
		}
		// Still waiting: consume a nominal cycle so the bus keeps advancing.
		c.addCycles(1)
		return c.cycles
	}

	if firqPending && !c.Reg.FIRQMask() {
		c.enterInterrupt(false, VectorFIRQ, 10)
		c.Reg.SetFIRQMask(true)
		c.Reg.SetIRQMask(true)
		return c.cycles
	}
	if irqPending && !c.Reg.IRQMask() {
		c.enterInterrupt(true, VectorIRQ, 19)
		c.Reg.SetIRQMask(true)
		return c.cycles
	}

	opcode := c.fetch8()
	switch opcode {
	case 0x10:
		page1 := c.fetch8()
		c.executePage1(page1)
	case 0x11:
		page2 := c.fetch8()
		c.executePage2(page2)
	default:
		c.executePage0(opcode)
	}
	return c.cycles
}

// enterInterrupt pushes the CC state (Entire=entire) onto S and vectors PC
// to vector, then charges the total hardware-entry cycle cost (19 for a
// full push, 10 for FIRQ's PC+CC-only push). Software interrupts (SWI/
// SWI2/SWI3) share pushCCState but account their own cycle costs alongside
// their opcode-fetch cost instead.
func (c *CPU) enterInterrupt(entire bool, vector uint16, totalCycles int) {
	c.pushCCState(entire, stackS)
	c.Reg.PC = c.read16(vector)
	c.addCycles(totalCycles)
}

// pushCCState pushes the interrupt-entry register set onto the named
// stack, in PC, other stack pointer (U on S, S on U), Y, X, DP, B, A, CC
// order (or just PC,CC when entire is
// false, as FIRQ does).
func (c *CPU) pushCCState(entire bool, on stackSel) {
	c.Reg.SetEntire(entire)
	if entire {
		c.pushReg16(on, c.Reg.PC)
		c.pushOtherStack16(on)
		c.pushReg16(on, c.Reg.Y)
		c.pushReg16(on, c.Reg.X)
		c.pushReg8(on, c.Reg.DP)
		c.pushReg8(on, c.Reg.B)
		c.pushReg8(on, c.Reg.A)
		c.pushReg8(on, c.Reg.CC)
	} else {
		c.pushReg16(on, c.Reg.PC)
		c.pushReg8(on, c.Reg.CC)
	}
}

// popCCState is RTI's inverse of pushCCState: pops CC first, then (if its
// Entire bit was set) the rest of the full state.
func (c *CPU) popCCState() {
	c.Reg.CC = c.pullReg8(stackS)
	if c.Reg.Entire() {
		c.Reg.A = c.pullReg8(stackS)
		c.Reg.B = c.pullReg8(stackS)
		c.Reg.DP = c.pullReg8(stackS)
		c.Reg.X = c.pullReg16(stackS)
		c.Reg.Y = c.pullReg16(stackS)
		c.pullOtherStack16(stackS)
		c.Reg.PC = c.pullReg16(stackS)
	} else {
		c.Reg.PC = c.pullReg16(stackS)
	}
}

func (c *CPU) stackPtr(on stackSel) *uint16 {
	if on == stackS {
		return &c.Reg.S
	}
	return &c.Reg.U
}

// pushOtherStack16 pushes the *other* stack pointer's current value, as
// part of a full interrupt/PSH push (U when pushing onto S and vice
// versa).
func (c *CPU) pushOtherStack16(on stackSel) {
	if on == stackS {
		c.pushReg16(on, c.Reg.U)
	} else {
		c.pushReg16(on, c.Reg.S)
	}
}

func (c *CPU) pullOtherStack16(on stackSel) {
	v := c.pullReg16(on)
	if on == stackS {
		c.Reg.U = v
	} else {
		c.Reg.S = v
	}
}

func (c *CPU) pushReg8(on stackSel, v uint8) {
	sp := c.stackPtr(on)
	*sp--
	c.write8(*sp, v)
}

func (c *CPU) pullReg8(on stackSel) uint8 {
	sp := c.stackPtr(on)
	v := c.read8(*sp)
	*sp++
	return v
}

func (c *CPU) pushReg16(on stackSel, v uint16) {
	c.pushReg8(on, uint8(v))
	c.pushReg8(on, uint8(v>>8))
}

func (c *CPU) pullReg16(on stackSel) uint16 {
	hi := c.pullReg8(on)
	lo := c.pullReg8(on)
	return uint16(hi)<<8 | uint16(lo)
}
