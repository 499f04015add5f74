package emulator

import (
	"os"
	"testing"

	"vectrexcore/internal/debug"
	"vectrexcore/internal/input"
	"vectrexcore/internal/render"
)

func newTestEmulator(t *testing.T) *Emulator {
	t.Helper()
	errs := debug.NewErrorHandler(nil, debug.PolicyIgnore)
	e, err := New(errs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// TestRamShadowAliasing covers §8: Read(a) == Read(a ^ 0x0400) after any
// sequence of writes limited to the RAM range, since the physical 2 KiB
// window is a 1 KiB device shadowed twice.
func TestRamShadowAliasing(t *testing.T) {
	e := newTestEmulator(t)

	for _, addr := range []uint16{0xC800, 0xC900, 0xCBEA, 0xCFFF} {
		e.Bus.Write(addr, uint8(addr))
	}

	for _, addr := range []uint16{0xC800, 0xC900, 0xCBEA, 0xCFFF} {
		mirror := addr ^ 0x0400
		got, want := e.Bus.Read(mirror), e.Bus.Read(addr)
		if got != want {
			t.Errorf("Read($%04X) = $%02X, want $%02X (mirror of $%04X)", mirror, got, want, addr)
		}
	}
}

func TestLoadBiosRomRejectsWrongSize(t *testing.T) {
	e := newTestEmulator(t)
	if err := e.LoadBiosRom(make([]byte, 100)); err == nil {
		t.Errorf("LoadBiosRom accepted a 100-byte image, want error")
	}
}

func TestLoadBiosRomAcceptsExactSize(t *testing.T) {
	e := newTestEmulator(t)
	data := make([]byte, biosSize)
	data[0x1FFE] = 0x12
	data[0x1FFF] = 0x34 // reset vector low byte at end of the 8 KiB image
	if err := e.LoadBiosRom(data); err != nil {
		t.Fatalf("LoadBiosRom: %v", err)
	}
	if e.Bus.Read(0xFFFE) != 0x12 || e.Bus.Read(0xFFFF) != 0x34 {
		t.Errorf("reset vector bytes not visible through the bus after loading")
	}
}

func TestLoadRomWithoutHeaderStillLoads(t *testing.T) {
	e := newTestEmulator(t)
	if err := e.LoadRom([]byte{0xAA, 0xBB, 0xCC}); err != nil {
		t.Fatalf("LoadRom: %v", err)
	}
	if e.Bus.Read(0x0000) != 0xAA {
		t.Errorf("cartridge byte 0 = $%02X, want $AA", e.Bus.Read(0x0000))
	}
}

func TestResetLoadsPCFromVector(t *testing.T) {
	e := newTestEmulator(t)
	data := make([]byte, biosSize)
	data[len(data)-2] = 0xE0
	data[len(data)-1] = 0x10
	if err := e.LoadBiosRom(data); err != nil {
		t.Fatalf("LoadBiosRom: %v", err)
	}
	e.Reset()
	if e.CPU.Reg.PC != 0xE010 {
		t.Errorf("PC = $%04X after Reset, want $E010", e.CPU.Reg.PC)
	}
}

// TestFrameUpdateCarriesRemainder ensures a fractional leftover cycle
// budget is preserved across frames rather than discarded.
func TestFrameUpdateCarriesRemainder(t *testing.T) {
	e := newTestEmulator(t)
	// NOPs ($12) everywhere: a flat instruction stream so cycle accounting
	// doesn't depend on program content.
	data := make([]byte, biosSize)
	for i := range data {
		data[i] = 0x12
	}
	data[len(data)-2] = 0xE0
	data[len(data)-1] = 0x00
	if err := e.LoadBiosRom(data); err != nil {
		t.Fatalf("LoadBiosRom: %v", err)
	}
	e.Reset()

	var renderCtx render.Context
	audioCtx := render.AudioContext{CpuCyclesPerAudioSample: 34}
	in := input.NewState()

	// Seed a 1-cycle budget: NOP costs 2, so the frame must overshoot by
	// exactly 1 cycle and carry that negative remainder forward.
	e.cyclesRemaining = 1
	e.FrameUpdate(0, in, &renderCtx, &audioCtx)
	if e.cyclesRemaining != -1 {
		t.Errorf("cyclesRemaining = %v after FrameUpdate, want -1 (overshoot carried forward)", e.cyclesRemaining)
	}
}

func TestApplyEventsBreakIntoDebugger(t *testing.T) {
	e := newTestEmulator(t)
	if e.Debugger.IsPaused() {
		t.Fatalf("debugger starts paused, want running")
	}

	if err := e.ApplyEvents([]EmuEvent{{BreakIntoDebugger: true}}); err != nil {
		t.Fatalf("ApplyEvents: %v", err)
	}
	if !e.Debugger.IsPaused() {
		t.Errorf("debugger not paused after a BreakIntoDebugger event")
	}
}

func TestApplyEventsReset(t *testing.T) {
	e := newTestEmulator(t)
	data := make([]byte, biosSize)
	data[len(data)-2] = 0x12
	data[len(data)-1] = 0x34
	if err := e.LoadBiosRom(data); err != nil {
		t.Fatalf("LoadBiosRom: %v", err)
	}
	e.CPU.Reg.PC = 0x0000

	if err := e.ApplyEvents([]EmuEvent{{Reset: true}}); err != nil {
		t.Fatalf("ApplyEvents: %v", err)
	}
	if e.CPU.Reg.PC != 0x1234 {
		t.Errorf("PC = $%04X after a Reset event, want $1234", e.CPU.Reg.PC)
	}
}

func TestApplyEventsOpenRomFile(t *testing.T) {
	e := newTestEmulator(t)
	path := t.TempDir() + "/cart.bin"
	if err := os.WriteFile(path, []byte{0xAA, 0xBB}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := e.ApplyEvents([]EmuEvent{{OpenRomFile: &path}}); err != nil {
		t.Fatalf("ApplyEvents: %v", err)
	}
	if e.Bus.Read(0x0000) != 0xAA {
		t.Errorf("cartridge byte 0 = $%02X after OpenRomFile, want $AA", e.Bus.Read(0x0000))
	}
}
