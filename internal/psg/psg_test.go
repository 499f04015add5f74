package psg

import (
	"testing"

	"vectrexcore/internal/debug"
)

func newTestPsg() *Psg {
	return New(debug.NewErrorHandler(nil, debug.PolicyIgnore))
}

// latchWriteRead drives the BC1/BDIR bus protocol to latch addr, write
// value, then read it back, mirroring how the VIA sequences the pins.
func latchWriteRead(p *Psg, addr, value uint8) uint8 {
	p.SetBC1(false)
	p.SetBDIR(false)
	p.Clock()

	p.WriteDA(addr)
	p.SetBC1(true)
	p.SetBDIR(true)
	p.Clock()
	p.SetBC1(false)
	p.SetBDIR(false)
	p.Clock()

	p.WriteDA(value)
	p.SetBDIR(true)
	p.Clock()
	p.SetBDIR(false)
	p.Clock()

	p.SetBC1(true)
	p.Clock()
	result := p.ReadDA()
	p.SetBC1(false)
	p.Clock()
	return result
}

func TestRegisterWriteReadRoundTrip(t *testing.T) {
	p := newTestPsg()
	got := latchWriteRead(p, regToneALow, 0x3C)
	if got != 0x3C {
		t.Errorf("tone A low readback = $%02X, want $3C", got)
	}
}

func TestToneGeneratorTogglesAtHalfPeriod(t *testing.T) {
	var g toneGenerator
	g.setPeriodHigh(0)
	g.setPeriodLow(4) // period 4 -> duty 2

	initial := g.value
	for i := 0; i < 2; i++ {
		g.clock()
	}
	if g.value == initial {
		t.Errorf("tone value did not toggle after one half-period")
	}
}

func TestToneGeneratorZeroPeriodDisabled(t *testing.T) {
	var g toneGenerator
	if g.enabled() {
		t.Errorf("zero-period tone generator reports enabled")
	}
}

func TestNoiseGeneratorAlwaysEnabled(t *testing.T) {
	g := newNoiseGenerator()
	g.setPeriod(0)
	if !g.enabled() {
		t.Errorf("noise generator must report enabled even at period 0")
	}
}

// TestEnvelopeShapeConvergesToZero covers §8: shape 0b1001 (continue=1,
// attack=0, alternate=0, hold=1) decays once then holds at 0.
func TestEnvelopeShapeConvergesToZero(t *testing.T) {
	e := newEnvelopeGenerator()
	e.setShape(0b1001)

	shape := envelopeShapeTable[0b1001]
	for i := 0; i < len(shape)*2; i++ {
		e.updateValue()
	}
	if e.value32() != 0 {
		t.Errorf("shape 0b1001 value = %d, want 0 after convergence", e.value32())
	}
}

// TestEnvelopeShapeConvergesToFifteen covers §8: shape 0b1011 (continue=1,
// attack=0, alternate=1, hold=1) ramps down once then holds at 15 via the
// alternate bit flipping the held level.
func TestEnvelopeShapeConvergesToFifteen(t *testing.T) {
	e := newEnvelopeGenerator()
	e.setShape(0b1011)

	shape := envelopeShapeTable[0b1011]
	for i := 0; i < len(shape)*2; i++ {
		e.updateValue()
	}
	if e.value32() != 15 {
		t.Errorf("shape 0b1011 value = %d, want 15 after convergence", e.value32())
	}
}

func TestVolumeOneTreatedAsSilent(t *testing.T) {
	c := channel{fixedVolume: 1}
	if c.volume() != 0 {
		t.Errorf("volume(1) = %v, want 0 (BIOS reset quirk)", c.volume())
	}
}

func TestVolumeMaxIsNonzero(t *testing.T) {
	c := channel{fixedVolume: 15}
	if c.volume() <= 0 {
		t.Errorf("volume(15) = %v, want > 0", c.volume())
	}
}

func TestClockTimerFiresAtPeriod(t *testing.T) {
	var ct clockTimer
	ct.setPeriod(3)
	if ct.clock() || ct.clock() {
		t.Fatalf("clockTimer fired before reaching its period")
	}
	if !ct.clock() {
		t.Errorf("clockTimer did not fire on the 3rd cycle")
	}
}

func TestClockTimerZeroPeriodNeverFires(t *testing.T) {
	var ct clockTimer
	for i := 0; i < 100; i++ {
		if ct.clock() {
			t.Fatalf("zero-period clockTimer fired")
		}
	}
}
