package psg

// toneGenerator is one of the PSG's three square-wave channels: a 12-bit
// period (low byte + high nibble) whose half-period drives a timer that
// toggles a single-bit output.
type toneGenerator struct {
	timer  clockTimer
	period uint16 // 12-bit value
	value  uint32 // 0 or 1
}

func (g *toneGenerator) setPeriodLow(low uint8) {
	g.period = g.period&0xFF00 | uint16(low)
	g.onPeriodUpdated()
}

func (g *toneGenerator) setPeriodHigh(high uint8) {
	g.period = uint16(high&0x0F)<<8 | g.period&0x00FF
	g.onPeriodUpdated()
}

func (g *toneGenerator) periodLow() uint8  { return uint8(g.period) }
func (g *toneGenerator) periodHigh() uint8 { return uint8(g.period >> 8) }

func (g *toneGenerator) onPeriodUpdated() {
	duty := uint32(g.period) / 2
	if duty < 1 {
		duty = 1
	}
	g.timer.setPeriod(duty)
}

// enabled reports whether the channel produces sound at all; a period of
// zero silences the tone generator entirely.
func (g *toneGenerator) enabled() bool { return g.period > 0 }

func (g *toneGenerator) clock() {
	if g.timer.clock() {
		if g.value == 0 {
			g.value = 1
		} else {
			g.value = 0
		}
	}
}

// noiseGenerator is the PSG's single shared noise channel: a 5-bit period
// clocking a 17-bit linear-feedback shift register seeded non-zero.
type noiseGenerator struct {
	timer        clockTimer
	period       uint8
	shiftRegister uint32
	value        uint32
}

func newNoiseGenerator() *noiseGenerator {
	return &noiseGenerator{shiftRegister: 1}
}

func (g *noiseGenerator) setPeriod(period uint8) {
	g.period = period & 0x1F
	t := uint32(g.period)
	if t < 1 {
		t = 1
	}
	g.timer.setPeriod(t)
}

// enabled is always true: the real chip keeps clocking the LFSR even with
// a zero period (the period is simply clamped to 1 above).
func (g *noiseGenerator) enabled() bool { return true }

func (g *noiseGenerator) clock() {
	if g.timer.clock() {
		g.clockShiftRegister()
	}
}

func (g *noiseGenerator) clockShiftRegister() {
	bit0 := g.shiftRegister & 0x1
	bit3 := (g.shiftRegister >> 3) & 0x1
	g.value ^= bit0
	newBit := bit0 ^ bit3
	g.shiftRegister = (g.shiftRegister >> 1) | (newBit << 16)
}

// envelopeShapeTable holds the 16 4-bit shape patterns (bit3=continue,
// bit2=attack, bit1=alternate, bit0=hold), each rendered out as two
// 16-step ramp cycles.
var envelopeShapeTable = [16][32]uint32{
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// envelopeGenerator produces the amplitude ramp that AmplitudeA/B/C can
// select instead of a fixed volume level.
type envelopeGenerator struct {
	divider  clockTimer // further divides by 16
	timer    clockTimer
	period   uint16
	shape    uint8
	index    uint8
	value    uint32
}

func newEnvelopeGenerator() *envelopeGenerator {
	e := &envelopeGenerator{}
	e.divider.setPeriod(16)
	return e
}

func (e *envelopeGenerator) setPeriodLow(low uint8) {
	e.period = e.period&0xFF00 | uint16(low)
	e.onPeriodUpdated()
}

func (e *envelopeGenerator) setPeriodHigh(high uint8) {
	e.period = uint16(high)<<8 | e.period&0x00FF
	e.onPeriodUpdated()
}

func (e *envelopeGenerator) periodLow() uint8  { return uint8(e.period) }
func (e *envelopeGenerator) periodHigh() uint8 { return uint8(e.period >> 8) }

func (e *envelopeGenerator) setShape(shape uint8) {
	e.shape = shape & 0x0F
	e.index = 0
	e.updateValue()
}

func (e *envelopeGenerator) shapeByte() uint8 { return e.shape }

func (e *envelopeGenerator) onPeriodUpdated() {
	t := uint32(e.period) / 16
	if t < 1 {
		t = 1
	}
	e.timer.setPeriod(t)
	e.updateValue()
}

func (e *envelopeGenerator) clock() {
	if e.divider.clock() && e.timer.clock() {
		e.updateValue()
	}
}

func (e *envelopeGenerator) value32() uint32 { return e.value }

func (e *envelopeGenerator) updateValue() {
	shape := envelopeShapeTable[e.shape]
	e.value = shape[e.index]

	holdCurrentIndex := false
	if int(e.index) >= len(shape)-1 {
		continuePattern := e.shape&0b1000 != 0
		if !continuePattern {
			holdCurrentIndex = true
		} else {
			holdCurrentIndex = e.shape&0b0001 != 0
		}
	}

	if !holdCurrentIndex {
		e.index = uint8((int(e.index) + 1) % len(shape))
	}
}
