package cpu

import "testing"

// flatBus is a 64 KiB flat memory used as the CPU's Bus in tests; it
// ignores sync-cycle accounting since no sync-enabled device is under test.
type flatBus struct {
	mem [65536]uint8
}

func (b *flatBus) Read(addr uint16) uint8         { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, value uint8) { b.mem[addr] = value }
func (b *flatBus) AddSyncCycles(cycles int)       {}

func newTestCPU() (*CPU, *flatBus) {
	bus := &flatBus{}
	c := New(bus, nil)
	return c, bus
}

func loadAt(bus *flatBus, addr uint16, data ...uint8) {
	for i, b := range data {
		bus.mem[int(addr)+i] = b
	}
}

// TestLDAImmediateZeroFlag covers §8 scenario 1: LDA #$00 sets Z, clears
// N/V, costs 2 cycles.
func TestLDAImmediateZeroFlag(t *testing.T) {
	c, bus := newTestCPU()
	loadAt(bus, 0xFFFE, 0x00, 0x00) // reset vector -> $0000
	loadAt(bus, 0x0000, 0x86, 0x00) // LDA #$00
	c.Reset()

	cycles := c.ExecuteInstruction(false, false)

	if c.Reg.A != 0 {
		t.Errorf("A = $%02X, want $00", c.Reg.A)
	}
	if !c.Reg.Zero() || c.Reg.Negative() || c.Reg.Overflow() {
		t.Errorf("CC = $%02X: want Z=1 N=0 V=0", c.Reg.CC)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2", cycles)
	}
	if c.Reg.PC != 0x0002 {
		t.Errorf("PC = $%04X, want $0002", c.Reg.PC)
	}
}

// TestIndexedAutoIncrement covers §8 scenario 2: LDA ,X+ with X=$C800.
func TestIndexedAutoIncrement(t *testing.T) {
	c, bus := newTestCPU()
	loadAt(bus, 0xFFFE, 0x00, 0x00)
	loadAt(bus, 0x0000, 0xA6, 0x80) // LDA ,X+
	loadAt(bus, 0xC800, 0xDE, 0xAD)
	c.Reset()
	c.Reg.X = 0xC800

	cycles := c.ExecuteInstruction(false, false)

	if c.Reg.A != 0xDE {
		t.Errorf("A = $%02X, want $DE", c.Reg.A)
	}
	if c.Reg.X != 0xC801 {
		t.Errorf("X = $%04X, want $C801", c.Reg.X)
	}
	if cycles != 6 {
		t.Errorf("cycles = %d, want 6", cycles)
	}
}

// TestIndexedIndirect covers §8 scenario 3: LDA [,X] with X=$C800.
func TestIndexedIndirect(t *testing.T) {
	c, bus := newTestCPU()
	loadAt(bus, 0xFFFE, 0x00, 0x00)
	loadAt(bus, 0x0000, 0xA6, 0x94) // LDA [,X]
	loadAt(bus, 0xC800, 0xC8, 0x04)
	loadAt(bus, 0xC804, 0x42)
	c.Reset()
	c.Reg.X = 0xC800

	cycles := c.ExecuteInstruction(false, false)

	if c.Reg.A != 0x42 {
		t.Errorf("A = $%02X, want $42", c.Reg.A)
	}
	if c.Reg.X != 0xC800 {
		t.Errorf("X = $%04X, want $C800 (unchanged)", c.Reg.X)
	}
	if cycles != 7 {
		t.Errorf("cycles = %d, want 7", cycles)
	}
}

// TestBranchEqualTaken covers §8 scenario 4: BEQ taken.
func TestBranchEqualTaken(t *testing.T) {
	c, bus := newTestCPU()
	loadAt(bus, 0xFFFE, 0x10, 0x00) // reset vector -> $1000
	loadAt(bus, 0x1000, 0x27, 0x10) // BEQ +16
	c.Reset()
	c.Reg.SetZero(true)

	cycles := c.ExecuteInstruction(false, false)

	if c.Reg.PC != 0x1012 {
		t.Errorf("PC = $%04X, want $1012", c.Reg.PC)
	}
	if cycles != 3 {
		t.Errorf("cycles = %d, want 3", cycles)
	}
}

// TestTransferThenExchange covers §8 scenario 5: TFR A,B then EXG A,B.
func TestTransferThenExchange(t *testing.T) {
	c, bus := newTestCPU()
	loadAt(bus, 0xFFFE, 0x00, 0x00)
	loadAt(bus, 0x0000, 0x1F, 0x89) // TFR A,B
	c.Reset()
	c.Reg.A, c.Reg.B = 0x12, 0x34

	c.ExecuteInstruction(false, false)

	if c.Reg.A != 0x12 || c.Reg.B != 0x12 {
		t.Errorf("after TFR A,B: A=$%02X B=$%02X, want A=$12 B=$12", c.Reg.A, c.Reg.B)
	}

	c2, bus2 := newTestCPU()
	loadAt(bus2, 0xFFFE, 0x00, 0x00)
	loadAt(bus2, 0x0000, 0x1E, 0x89) // EXG A,B
	c2.Reset()
	c2.Reg.A, c2.Reg.B = 0x12, 0x34

	c2.ExecuteInstruction(false, false)

	if c2.Reg.A != 0x34 || c2.Reg.B != 0x12 {
		t.Errorf("after EXG A,B: A=$%02X B=$%02X, want A=$34 B=$12", c2.Reg.A, c2.Reg.B)
	}
}

// TestPushPullIdentity covers §8 scenario 6: PSHS A,B,X then PULS A,B,X
// restores all three registers, including S.
func TestPushPullIdentity(t *testing.T) {
	c, bus := newTestCPU()
	loadAt(bus, 0xFFFE, 0x00, 0x00)
	loadAt(bus, 0x0000, 0x34, 0x16) // PSHS A,B,X
	loadAt(bus, 0x0002, 0x35, 0x16) // PULS A,B,X
	c.Reset()
	c.Reg.S = 0xCBEA
	c.Reg.A, c.Reg.B, c.Reg.X = 0x11, 0x22, 0x3344

	c.ExecuteInstruction(false, false)
	c.ExecuteInstruction(false, false)

	if c.Reg.A != 0x11 {
		t.Errorf("A = $%02X, want $11", c.Reg.A)
	}
	if c.Reg.B != 0x22 {
		t.Errorf("B = $%02X, want $22", c.Reg.B)
	}
	if c.Reg.X != 0x3344 {
		t.Errorf("X = $%04X, want $3344", c.Reg.X)
	}
	if c.Reg.S != 0xCBEA {
		t.Errorf("S = $%04X, want $CBEA", c.Reg.S)
	}
}

// TestResetVector checks the Reset invariant: PC loads from $FFFE and both
// interrupt masks are set.
func TestResetVector(t *testing.T) {
	c, bus := newTestCPU()
	loadAt(bus, 0xFFFE, 0x12, 0x34)
	c.Reset()

	if c.Reg.PC != 0x1234 {
		t.Errorf("PC = $%04X, want $1234", c.Reg.PC)
	}
	if !c.Reg.IRQMask() || !c.Reg.FIRQMask() {
		t.Errorf("CC = $%02X: want I=1 F=1 after reset", c.Reg.CC)
	}
}

// TestEXGRoundTrip checks the idempotence law: EXG of two registers twice
// is identity.
func TestEXGRoundTrip(t *testing.T) {
	c, bus := newTestCPU()
	loadAt(bus, 0xFFFE, 0x00, 0x00)
	loadAt(bus, 0x0000, 0x1E, 0x89) // EXG A,B
	loadAt(bus, 0x0002, 0x1E, 0x89) // EXG A,B again
	c.Reset()
	c.Reg.A, c.Reg.B = 0xAA, 0xBB

	c.ExecuteInstruction(false, false)
	c.ExecuteInstruction(false, false)

	if c.Reg.A != 0xAA || c.Reg.B != 0xBB {
		t.Errorf("after EXG A,B twice: A=$%02X B=$%02X, want A=$AA B=$BB", c.Reg.A, c.Reg.B)
	}
}

// TestTFRSelfIsIdentity checks the idempotence law: TFR R,R is identity.
func TestTFRSelfIsIdentity(t *testing.T) {
	c, bus := newTestCPU()
	loadAt(bus, 0xFFFE, 0x00, 0x00)
	loadAt(bus, 0x0000, 0x1F, 0x11) // TFR X,X
	c.Reset()
	c.Reg.X = 0xBEEF

	c.ExecuteInstruction(false, false)

	if c.Reg.X != 0xBEEF {
		t.Errorf("X = $%04X, want $BEEF", c.Reg.X)
	}
}
