// Package emulator composes the bus, CPU, VIA, memory devices, and ROM
// loaders into the runnable core: the one type a host front end drives.
package emulator

import (
	"bytes"
	"fmt"
	"os"

	"vectrexcore/internal/cpu"
	"vectrexcore/internal/debug"
	"vectrexcore/internal/input"
	"vectrexcore/internal/memory"
	"vectrexcore/internal/psg"
	"vectrexcore/internal/render"
	"vectrexcore/internal/screen"
	"vectrexcore/internal/via"
)

// Memory map, fixed by the hardware.
const (
	addrCartridgeStart uint16 = 0x0000
	addrCartridgeEnd   uint16 = 0x7FFF
	addrUnmappedStart  uint16 = 0x8000
	addrUnmappedEnd    uint16 = 0xC7FF
	addrRamStart       uint16 = 0xC800
	addrRamEnd         uint16 = 0xCFFF
	addrIllegalStart   uint16 = 0xD800
	addrIllegalEnd     uint16 = 0xDFFF
	addrViaStart       uint16 = 0xD000
	addrViaEnd         uint16 = 0xD7FF
	addrBiosStart      uint16 = 0xE000
	addrBiosEnd        uint16 = 0xFFFF

	biosSize = 8192
)

// cartridgeHeaderPrefix is the copyright string every Vectrex cartridge's
// title/copyright block is supposed to begin with.
var cartridgeHeaderPrefix = []byte("g GCE")

// EmuEvent is a host-issued request to act on the core outside of normal
// instruction stepping, collected per frame.
type EmuEvent struct {
	BreakIntoDebugger bool
	Reset             bool
	OpenRomFile       *string // nil if not requested, else a path (empty means "prompt")
	OpenBiosRomFile   string  // empty if not requested
}

// Emulator owns every core device and the bus wiring between them.
type Emulator struct {
	Bus *memory.Bus
	CPU *cpu.CPU
	Via *via.Via

	Ram       *memory.Ram
	BiosRom   *memory.BiosRom
	Cartridge *memory.Cartridge
	Screen    *screen.Screen
	Psg       *psg.Psg
	Errs      *debug.ErrorHandler

	// Debugger is the non-core collaborator a host can drive through
	// EmuEvent.BreakIntoDebugger; it observes bus traffic via the bus's
	// read/write callbacks but never participates in instruction stepping.
	Debugger *debug.Debugger

	cyclesRemaining float64
}

// New wires a fresh Emulator: every device connected to the bus, reporting
// recoverable hardware quirks through errs (a nil errs is invalid — pass
// debug.NewErrorHandler(nil, debug.PolicyIgnore) for a silent default).
func New(errs *debug.ErrorHandler) (*Emulator, error) {
	e := &Emulator{Errs: errs}

	e.Bus = memory.NewBus()
	e.Ram = memory.NewRam()
	e.BiosRom = memory.NewBiosRom(errs)
	e.Cartridge = memory.NewCartridge(errs)
	e.Screen = screen.New()
	e.Psg = psg.New(errs)
	e.Via = via.New(e.Psg, e.Screen, errs)
	e.CPU = cpu.New(e.Bus, errs)
	e.Debugger = debug.NewDebugger()
	e.Bus.RegisterCallbacks(e.Debugger.OnBusAccess, e.Debugger.OnBusAccess)

	unmapped := memory.NewUnmappedRange(errs)
	illegal := memory.NewIllegalRange(errs)

	// RAM is 1 KiB physically but shadowed twice across $C800-$CFFF.
	if err := e.Bus.Connect(e.Cartridge, addrCartridgeStart, addrCartridgeEnd, 1, false); err != nil {
		return nil, err
	}
	if err := e.Bus.Connect(unmapped, addrUnmappedStart, addrUnmappedEnd, 1, false); err != nil {
		return nil, err
	}
	if err := e.Bus.Connect(e.Ram, addrRamStart, addrRamEnd, 2, false); err != nil {
		return nil, err
	}
	if err := e.Bus.Connect(e.Via, addrViaStart, addrViaEnd, 128, true); err != nil {
		return nil, err
	}
	if err := e.Bus.Connect(illegal, addrIllegalStart, addrIllegalEnd, 1, false); err != nil {
		return nil, err
	}
	if err := e.Bus.Connect(e.BiosRom, addrBiosStart, addrBiosEnd, 1, false); err != nil {
		return nil, err
	}

	return e, nil
}

// Reset resets every device and reloads PC from the reset vector.
func (e *Emulator) Reset() {
	e.Via.Reset()
	e.CPU.Reset()
}

// LoadBiosRom installs an 8192-byte BIOS image. Any other size is a
// structural configuration error and is refused.
func (e *Emulator) LoadBiosRom(data []byte) error {
	if len(data) != biosSize {
		return fmt.Errorf("emulator: bios rom must be exactly %d bytes, got %d", biosSize, len(data))
	}
	return e.BiosRom.Load(data)
}

// LoadRom checks that the image starts with the "g GCE" copyright prefix and
// installs the whole image, header included, as cartridge ROM at $0000. A
// missing prefix is reported through Errs.Undefined and the image still
// loads; the 0x80-terminated title block after the prefix is not validated.
func (e *Emulator) LoadRom(data []byte) error {
	if !bytes.HasPrefix(data, cartridgeHeaderPrefix) {
		e.Errs.Undefined("Emulator.LoadRom", "cartridge header missing %q copyright prefix", cartridgeHeaderPrefix)
	}
	e.Cartridge.LoadRaw(data)
	return nil
}

// ApplyEvents processes one frame's worth of host-issued EmuEvents, in
// order: Reset, BreakIntoDebugger (pauses the Debugger collaborator), then
// any ROM (re)load requests. An OpenRomFile with a nil or empty path is
// treated as "nothing to do" — the host is expected to resolve a prompt
// before setting it.
func (e *Emulator) ApplyEvents(events []EmuEvent) error {
	for _, ev := range events {
		if ev.Reset {
			e.Reset()
		}
		if ev.BreakIntoDebugger {
			e.Debugger.Pause()
		}
		if ev.OpenBiosRomFile != "" {
			data, err := os.ReadFile(ev.OpenBiosRomFile)
			if err != nil {
				return fmt.Errorf("emulator: opening bios rom: %w", err)
			}
			if err := e.LoadBiosRom(data); err != nil {
				return err
			}
		}
		if ev.OpenRomFile != nil && *ev.OpenRomFile != "" {
			data, err := os.ReadFile(*ev.OpenRomFile)
			if err != nil {
				return fmt.Errorf("emulator: opening cartridge rom: %w", err)
			}
			if err := e.LoadRom(data); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExecuteInstruction sets the VIA's per-call sync context and steps the CPU
// through exactly one instruction (or interrupt entry), returning the
// cycles consumed.
func (e *Emulator) ExecuteInstruction(in input.State, renderCtx *render.Context, audioCtx *render.AudioContext) int {
	e.Via.SetSyncContext(in, renderCtx, audioCtx)
	return e.CPU.ExecuteInstruction(e.Via.IrqEnabled(), e.Via.FirqEnabled())
}

// FrameUpdate runs instructions until the cycle budget for a frame of
// duration deltaSeconds is exhausted, carrying any negative remainder into
// the next frame's budget.
func (e *Emulator) FrameUpdate(deltaSeconds float64, in input.State, renderCtx *render.Context, audioCtx *render.AudioContext) {
	e.cyclesRemaining += deltaSeconds * cpu.Hz
	for e.cyclesRemaining > 0 {
		e.cyclesRemaining -= float64(e.ExecuteInstruction(in, renderCtx, audioCtx))
	}
}
