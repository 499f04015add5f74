package screen

import "testing"

// driveRampUp brings the beam from RampOff to RampOn, running the fixed
// rampUpDelay cycles needed for the state machine to settle.
func driveRampUp(s *Screen) {
	s.SetIntegratorsEnabled(true)
	for i := 0; i < rampUpDelay+1; i++ {
		s.Update(1, nil)
	}
}

func TestRampPhaseReachesOnAfterDelay(t *testing.T) {
	s := New()
	driveRampUp(s)
	if s.rampPhase != RampOn {
		t.Errorf("rampPhase = %v, want RampOn after %d cycles", s.rampPhase, rampUpDelay+1)
	}
}

func TestRampPhaseReturnsToOffAfterDelay(t *testing.T) {
	s := New()
	driveRampUp(s)

	s.SetIntegratorsEnabled(false)
	for i := 0; i < rampDownDelay+1; i++ {
		s.Update(1, nil)
	}
	if s.rampPhase != RampOff {
		t.Errorf("rampPhase = %v, want RampOff after ramp-down delay", s.rampPhase)
	}
}

// TestBeamPositionStaysClamped covers §8: pos stays within [-128,127]^2
// after any sequence of steps, even when driven hard against a rail.
func TestBeamPositionStaysClamped(t *testing.T) {
	s := New()
	driveRampUp(s)
	s.SetIntegratorY(127)
	s.SetIntegratorX(127)

	for i := 0; i < 10000; i++ {
		s.Update(1, nil)
		if s.pos.X < -128 || s.pos.X > 127 || s.pos.Y < -128 || s.pos.Y > 127 {
			t.Fatalf("pos = %+v out of [-128,127] bounds at step %d", s.pos, i)
		}
	}
}

func TestLineEmittedWhenUnblankedAndBright(t *testing.T) {
	s := New()
	driveRampUp(s)
	s.SetBrightness(100)
	s.SetIntegratorY(10)

	var lines []Line
	s.Update(1, func(l Line) { lines = append(lines, l) })

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Brightness != 100.0/128 {
		t.Errorf("brightness = %v, want %v", lines[0].Brightness, 100.0/128)
	}
}

func TestNoLineWhenBlanked(t *testing.T) {
	s := New()
	driveRampUp(s)
	s.SetBrightness(100)
	s.SetBlankEnabled(true)

	var lines []Line
	s.Update(1, func(l Line) { lines = append(lines, l) })
	if len(lines) != 0 {
		t.Errorf("got %d lines while blanked, want 0", len(lines))
	}
}

func TestNoLineAtZeroBrightness(t *testing.T) {
	s := New()
	driveRampUp(s)
	s.SetBrightness(0)

	var lines []Line
	s.Update(1, func(l Line) { lines = append(lines, l) })
	if len(lines) != 0 {
		t.Errorf("got %d lines at zero brightness, want 0", len(lines))
	}
}

func TestZeroBeamResetsPosition(t *testing.T) {
	s := New()
	driveRampUp(s)
	s.SetIntegratorY(127)
	s.Update(5, nil)
	if s.pos == (Vector2{}) {
		t.Fatalf("test setup did not move the beam")
	}

	s.ZeroBeam()
	if s.pos != (Vector2{}) {
		t.Errorf("pos = %+v after ZeroBeam, want origin", s.pos)
	}
}

func TestDelayedValueHoldsUntilThreshold(t *testing.T) {
	var d delayedValue
	d.set(42)
	d.update(velocityXDelay - 1)
	if d.value != 0 {
		t.Errorf("value = %v before delay elapsed, want 0", d.value)
	}
	d.update(1)
	if d.value != 42 {
		t.Errorf("value = %v after delay elapsed, want 42", d.value)
	}
}
