// Package via implements the 6522 Versatile Interface Adapter as wired on
// the Vectrex: two parallel ports, two timers, a shift register, composite
// IRQ/FIRQ logic, and the glue routing PortA/PortB traffic to the PSG, the
// vector screen, and joystick input.
package via

import (
	"vectrexcore/internal/debug"
	"vectrexcore/internal/input"
	"vectrexcore/internal/psg"
	"vectrexcore/internal/render"
	"vectrexcore/internal/screen"
)

// sampleAccumulator is a running mean of values added since the last reset,
// used to downsample the PSG's per-cycle output and the direct-audio tap
// to one value per audio sample.
type sampleAccumulator struct {
	sum   float64
	count int
}

func (a *sampleAccumulator) add(v float64) {
	a.sum += v
	a.count++
}

func (a *sampleAccumulator) averageAndReset() float64 {
	if a.count == 0 {
		return 0
	}
	avg := a.sum / float64(a.count)
	a.sum, a.count = 0, 0
	return avg
}

// Via is the 6522 VIA. Create with New and Connect it to the bus as a
// sync-enabled device; the bus advances it by elapsed CPU cycles on every
// access it services.
type Via struct {
	errs   *debug.ErrorHandler
	psg    *psg.Psg
	screen *screen.Screen

	portB, portA       uint8
	dataDirB, dataDirA uint8
	periphCntl         uint8
	interruptEnable    uint8

	timer1 timer1
	timer2 timer2
	shift  shiftRegister

	joystickButtonState uint8
	joystickPot         int8

	ca1Enabled       bool
	ca1InterruptFlag bool
	firqEnabled      bool

	elapsedAudioCycles float64
	psgSamples         sampleAccumulator
	directSamples      sampleAccumulator

	// syncInput/syncRender/syncAudio are the current instruction's sync
	// context, set by the Emulator immediately before it drives the CPU —
	// the one public entry point these parameters flow through, per
	// SetSyncContext's doc comment. Sync itself takes only a cycle count so
	// the VIA can satisfy memory.SyncDevice.
	syncInput input.State
	syncRender *render.Context
	syncAudio  *render.AudioContext
}

// New creates a Via driving psg and screen, reporting recoverable quirks
// through errs.
func New(psg *psg.Psg, screen *screen.Screen, errs *debug.ErrorHandler) *Via {
	v := &Via{psg: psg, screen: screen, errs: errs}
	v.Reset()
	return v
}

// Reset returns every register and sub-device to its power-on state. /RAMP
// starts disabled (integrators off).
func (v *Via) Reset() {
	v.portB, v.portA = 0, 0
	v.dataDirB, v.dataDirA = 0, 0
	v.periphCntl = 0
	v.interruptEnable = 0

	v.timer1 = timer1{}
	v.timer2 = timer2{}
	v.shift = shiftRegister{}

	v.psg.Reset()
	*v.screen = *screen.New()

	v.joystickButtonState = 0
	v.joystickPot = 0
	v.ca1Enabled = false
	v.ca1InterruptFlag = false
	v.firqEnabled = false
	v.elapsedAudioCycles = 0
	v.psgSamples = sampleAccumulator{}
	v.directSamples = sampleAccumulator{}

	v.portB |= portBRampDisabled
}

// SetSyncContext installs the input/render/audio references the next
// batch of Sync calls (i.e. everything that happens inside one
// CPU.ExecuteInstruction call) should use. The Emulator calls this once per
// instruction, immediately before driving the CPU.
func (v *Via) SetSyncContext(in input.State, render *render.Context, audio *render.AudioContext) {
	v.syncInput = in
	v.syncRender = render
	v.syncAudio = audio
}

// Sync satisfies memory.SyncDevice: the bus calls this with the cycles
// elapsed since the previous sync-enabled access, just before servicing a
// new one.
func (v *Via) Sync(cycles int) {
	v.doSync(cycles, v.syncInput, v.syncRender, v.syncAudio)
}

func (v *Via) doSync(cycles int, in input.State, renderCtx *render.Context, audioCtx *render.AudioContext) {
	v.joystickButtonState = in.ButtonStateMask()

	// Pot value keeps its last sampled reading while the MUX is disabled.
	if v.muxEnabled() {
		v.joystickPot = in.AnalogStateMask(int(v.muxSelect()))
	}

	ca1Prev := v.ca1Enabled
	v.ca1Enabled = in.IsButtonDown(input.Joystick2, input.Button4)
	if !ca1Prev && v.ca1Enabled {
		v.ca1InterruptFlag = true
	}

	v.firqEnabled = in.IsButtonDown(input.Joystick1, input.Button4)

	for i := 0; i < cycles; i++ {
		v.psg.Clock()
		v.psgSamples.add(v.psg.Sample())

		v.elapsedAudioCycles++
		if audioCtx != nil && v.elapsedAudioCycles >= audioCtx.CpuCyclesPerAudioSample {
			v.elapsedAudioCycles -= audioCtx.CpuCyclesPerAudioSample

			psgSample := v.psgSamples.averageAndReset()
			directSample := v.directSamples.averageAndReset()

			target := psgSample
			if directSample != 0 {
				target = directSample
			}
			audioCtx.Samples = append(audioCtx.Samples, float32(target))
		}
	}

	for i := 0; i < cycles; i++ {
		v.timer1.update(1)
		v.timer2.update(1)
		v.shift.update(1)

		if v.shift.getMode() == shiftOutUnderPhi2 {
			v.screen.SetBlankEnabled(v.shift.cb2IsActive())
		}

		if v.timer1.pb7FlagSet() {
			v.setPortBBit(portBRampDisabled, !v.timer1.pb7SignalIsLow())
		}

		if periphZeroEnabled(v.periphCntl) {
			v.screen.ZeroBeam()
		}

		v.screen.SetIntegratorsEnabled(v.portB&portBRampDisabled == 0)

		var emit func(screen.Line)
		if renderCtx != nil {
			emit = func(l screen.Line) { renderCtx.Lines = append(renderCtx.Lines, l) }
		}
		v.screen.Update(1, emit)
	}
}

func (v *Via) muxEnabled() bool { return v.portB&portBMuxDisabled == 0 }
func (v *Via) muxSelect() uint8 {
	return (v.portB & portBMuxSelMask) >> portBMuxSelShift
}

func (v *Via) setPortBBit(mask uint8, set bool) {
	if set {
		v.portB |= mask
	} else {
		v.portB &^= mask
	}
}

// IrqEnabled reports the VIA's composite level-sensitive IRQ line.
func (v *Via) IrqEnabled() bool {
	return v.interruptFlagValue()&ifIrq != 0
}

// FirqEnabled reports the FIRQ line, driven directly off joystick 1 button
// 4 with no latching.
func (v *Via) FirqEnabled() bool { return v.firqEnabled }

func (v *Via) interruptFlagValue() uint8 {
	var result uint8
	setBit(&result, ifCA1, v.ca1InterruptFlag)
	setBit(&result, ifShift, v.shift.interruptFlagSet())
	setBit(&result, ifTimer2, v.timer2.interruptFlagSet())
	setBit(&result, ifTimer1, v.timer1.interruptFlagSet())
	setBit(&result, ifIrq, (result&v.interruptEnable)&0x7F != 0)
	return result
}

func setBit(v *uint8, mask uint8, set bool) {
	if set {
		*v |= mask
	} else {
		*v &^= mask
	}
}
