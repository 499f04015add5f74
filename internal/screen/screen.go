// Package screen models the Vectrex's analog vector-beam subsystem: the
// X/Y integrator pair, the ramp-enable state machine, and line emission.
package screen

// Vector2 is a beam position, velocity, or offset in screen space.
type Vector2 struct {
	X, Y float64
}

// Line is one beam stroke from p0 to p1 at the given normalized brightness,
// emitted into a frame's RenderContext.
type Line struct {
	P0, P1     Vector2
	Brightness float64
}

// RampPhase is the beam-enable state machine driven by the VIA's /RAMP
// line.
type RampPhase int

const (
	RampOff RampPhase = iota
	RampUp
	RampOn
	RampDown
)

const (
	rampUpDelay    = 5
	rampDownDelay  = 10
	velocityXDelay = 6
)

// delayedValue models the one-sided analog delay line the X-axis velocity
// channel passes through: a value set now only becomes visible to Update
// after velocityXDelay cycles have elapsed.
type delayedValue struct {
	value, pending float64
	counter        int
}

func (d *delayedValue) set(v float64) { d.pending = v; d.counter = 0 }

func (d *delayedValue) update(cycles int) {
	d.counter += cycles
	for d.counter >= velocityXDelay {
		d.counter -= velocityXDelay
		d.value = d.pending
	}
}

// Screen is the vector-beam model. Lines are appended to a caller-supplied
// sink each Update call via emit.
type Screen struct {
	pos Vector2

	velocityX delayedValue
	velocityY float64
	xyOffset  float64
	brightness float64
	blank      bool

	integratorsEnabled bool
	rampPhase          RampPhase
	rampDelay          int
}

// New creates a Screen with the beam parked at the origin, ramp off.
func New() *Screen {
	return &Screen{}
}

// SetIntegratorX feeds the X-axis DAC value (always driven regardless of
// MUX selection).
func (s *Screen) SetIntegratorX(v int8) { s.velocityX.set(float64(v)) }

// SetIntegratorY feeds the Y-axis DAC value (MUX channel 0).
func (s *Screen) SetIntegratorY(v int8) { s.velocityY = float64(v) }

// SetIntegratorXYOffset feeds the combined X/Y offset DAC value (MUX
// channel 1).
func (s *Screen) SetIntegratorXYOffset(v int8) { s.xyOffset = float64(v) }

// SetBrightness feeds the Z-axis (vector brightness) DAC value (MUX
// channel 2), an unsigned 0-255 level.
func (s *Screen) SetBrightness(v uint8) { s.brightness = float64(v) }

// SetBlankEnabled drives /BLANK, sourced from either the shift register's
// CB2 signal or PeriphCntl's CB2 bits.
func (s *Screen) SetBlankEnabled(blank bool) { s.blank = blank }

// SetIntegratorsEnabled drives /RAMP (active meaning integrators enabled).
func (s *Screen) SetIntegratorsEnabled(enabled bool) { s.integratorsEnabled = enabled }

// ZeroBeam immediately resets the beam position to the origin.
func (s *Screen) ZeroBeam() { s.pos = Vector2{} }

// Update advances the beam by cycles cycles, emitting a Line via emit if
// drawing is enabled and the beam moved.
func (s *Screen) Update(cycles int, emit func(Line)) {
	s.velocityX.update(cycles)

	switch s.rampPhase {
	case RampOff, RampDown:
		if s.integratorsEnabled {
			s.rampPhase = RampUp
			s.rampDelay = rampUpDelay
		}
	case RampOn, RampUp:
		if !s.integratorsEnabled {
			s.rampPhase = RampDown
			s.rampDelay = rampDownDelay
		}
	}

	switch s.rampPhase {
	case RampUp:
		s.rampDelay--
		if s.rampDelay <= 0 {
			s.rampPhase = RampOn
		}
	case RampDown:
		s.rampDelay--
		if s.rampDelay <= 0 {
			s.rampPhase = RampOff
		}
	}

	lastPos := s.pos

	switch s.rampPhase {
	case RampOn, RampDown:
		velocity := Vector2{X: s.velocityX.value, Y: s.velocityY}
		offset := Vector2{X: s.xyOffset, Y: s.xyOffset}
		delta := Vector2{
			X: (velocity.X + offset.X) / 128 * float64(cycles),
			Y: (velocity.Y + offset.Y) / 128 * float64(cycles),
		}
		s.pos.X = clamp(s.pos.X+delta.X, -128, 127)
		s.pos.Y = clamp(s.pos.Y+delta.Y, -128, 127)
	}

	// Drawing can happen even with integrators disabled (e.g. drawing dots).
	drawingEnabled := !s.blank && s.brightness > 0 && s.brightness <= 128
	if drawingEnabled && emit != nil {
		emit(Line{P0: lastPos, P1: s.pos, Brightness: s.brightness / 128})
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
