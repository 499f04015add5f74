// Package input models the Vectrex controller snapshot the host hands the
// emulator once per frame: two four-button joysticks and four analog axes.
package input

// Button names a joystick's four buttons, matching the bit order the VIA
// reads them in (bit 0 is button 1).
type Button int

const (
	Button1 Button = iota
	Button2
	Button3
	Button4
)

// Joystick is 0 or 1, selecting the first or second controller.
type Joystick int

const (
	Joystick1 Joystick = iota
	Joystick2
)

// State is one frame's worth of controller input: a packed button mask
// (bit `b + joy*4` clear when pressed, matching the active-low wiring the
// VIA sees on PortA) and four signed analog axes.
type State struct {
	buttons uint8
	X0, Y0  int8
	X1, Y1  int8
}

// NewState returns a neutral snapshot: no buttons held, axes centered.
func NewState() State {
	return State{buttons: 0xFF}
}

// SetButton marks joy's button as held (down) or released.
func (s *State) SetButton(joy Joystick, b Button, down bool) {
	bit := uint8(1) << (uint(b) + uint(joy)*4)
	if down {
		s.buttons &^= bit
	} else {
		s.buttons |= bit
	}
}

// IsButtonDown reports whether joy's button b is currently held.
func (s State) IsButtonDown(joy Joystick, b Button) bool {
	bit := uint8(1) << (uint(b) + uint(joy)*4)
	return s.buttons&bit == 0
}

// ButtonStateMask returns the packed active-low button byte as the VIA
// presents it on PortA while the PSG is in read mode.
func (s State) ButtonStateMask() uint8 { return s.buttons }

// SetAnalogAxisX/SetAnalogAxisY set one joystick's pot position.
func (s *State) SetAnalogAxisX(joy Joystick, v int8) {
	if joy == Joystick1 {
		s.X0 = v
	} else {
		s.X1 = v
	}
}

func (s *State) SetAnalogAxisY(joy Joystick, v int8) {
	if joy == Joystick1 {
		s.Y0 = v
	} else {
		s.Y1 = v
	}
}

// AnalogAxisX/AnalogAxisY read back a joystick's pot position — this is
// what the VIA samples against PortA when the MUX selects a joystick
// channel and compares it to the DAC output for the comparator bit.
func (s State) AnalogAxisX(joy Joystick) int8 {
	if joy == Joystick1 {
		return s.X0
	}
	return s.X1
}

func (s State) AnalogAxisY(joy Joystick) int8 {
	if joy == Joystick1 {
		return s.Y0
	}
	return s.Y1
}

// AnalogStateMask indexes the four analog axes as {X0,Y0,X1,Y1} — the
// layout the VIA's MUX selector addresses directly by index.
func (s State) AnalogStateMask(joyAxis int) int8 {
	switch joyAxis {
	case 0:
		return s.X0
	case 1:
		return s.Y0
	case 2:
		return s.X1
	default:
		return s.Y1
	}
}
