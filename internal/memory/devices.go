package memory

import (
	"fmt"

	"vectrexcore/internal/debug"
)

// Ram is the Vectrex's 1 KiB of work RAM, shadowed twice over $C800-$CFFF.
// $C800-$C87F and $CBEA-$CBFE are used by the BIOS for housekeeping;
// $C880-$CBE9 (including the system stack) is free for cartridge use — the
// bus doesn't need to know that, the memory is flat either way.
type Ram struct {
	data [1024]uint8
}

func NewRam() *Ram { return &Ram{} }

func (r *Ram) Read(addr uint16) uint8        { return r.data[addr] }
func (r *Ram) Write(addr uint16, value uint8) { r.data[addr] = value }

// BiosRom is the fixed 8 KiB system ROM mapped at $E000-$FFFF, holding the
// interrupt vector table in its last 16 bytes.
type BiosRom struct {
	data [8192]uint8
	errs *debug.ErrorHandler
}

func NewBiosRom(errs *debug.ErrorHandler) *BiosRom {
	return &BiosRom{errs: errs}
}

// Load installs BIOS ROM contents. A BIOS of the wrong size is a structural
// configuration error (§7 category 2): fatal, returned as a plain error
// rather than routed through the recoverable-quirk ErrorHandler.
func (r *BiosRom) Load(data []byte) error {
	if len(data) != len(r.data) {
		return fmt.Errorf("memory: bios rom must be exactly %d bytes, got %d", len(r.data), len(data))
	}
	copy(r.data[:], data)
	return nil
}

func (r *BiosRom) Read(addr uint16) uint8 { return r.data[addr] }

func (r *BiosRom) Write(addr uint16, value uint8) {
	if r.errs != nil {
		r.errs.Undefined("BiosRom.Write", "write to BIOS ROM at offset $%04X ignored", addr)
	}
}

// Cartridge is the 32 KiB flat ROM cartridge mapped at $0000-$7FFF.
type Cartridge struct {
	data []uint8
	errs *debug.ErrorHandler
}

func NewCartridge(errs *debug.ErrorHandler) *Cartridge {
	return &Cartridge{errs: errs}
}

// LoadRaw installs the cartridge's ROM payload (everything after the
// title/copyright header has already been validated by the loader in the
// emulator package). The payload may be shorter than 32 KiB; out-of-range
// reads are handled like real hardware (see Read below).
func (c *Cartridge) LoadRaw(data []uint8) {
	c.data = data
}

func (c *Cartridge) Read(addr uint16) uint8 {
	if int(addr) >= len(c.data) {
		if c.errs != nil {
			c.errs.Undefined("Cartridge.Read", "out-of-range read at $%04X", addr)
		}
		// Some ROMs erroneously access cartridge space past their own size
		// while drawing vector lists (e.g. Mine Storm, Polar Rescue); real
		// hardware is unlikely to return 0 here, so $01 helps those titles
		// along instead of breaking on it.
		return 1
	}
	return c.data[addr]
}

func (c *Cartridge) Write(addr uint16, value uint8) {
	if c.errs != nil {
		c.errs.Undefined("Cartridge.Write", "write to cartridge ROM at $%04X ignored", addr)
	}
}

// UnmappedRange models $8000-$C7FF: reads return 0, writes are reported and
// ignored.
type UnmappedRange struct {
	errs *debug.ErrorHandler
}

func NewUnmappedRange(errs *debug.ErrorHandler) *UnmappedRange {
	return &UnmappedRange{errs: errs}
}

func (u *UnmappedRange) Read(addr uint16) uint8 {
	if u.errs != nil {
		u.errs.Undefined("UnmappedRange.Read", "read from unmapped address $%04X", addr)
	}
	return 0
}

func (u *UnmappedRange) Write(addr uint16, value uint8) {
	if u.errs != nil {
		u.errs.Undefined("UnmappedRange.Write", "write to unmapped address $%04X ignored", addr)
	}
}

// IllegalRange models $D800-$DFFF, where both RAM and VIA select
// simultaneously on real hardware; behavior is undefined and only ever
// observed by buggy code, so it is treated like Unmapped.
type IllegalRange struct {
	errs *debug.ErrorHandler
}

func NewIllegalRange(errs *debug.ErrorHandler) *IllegalRange {
	return &IllegalRange{errs: errs}
}

func (i *IllegalRange) Read(addr uint16) uint8 {
	if i.errs != nil {
		i.errs.Undefined("IllegalRange.Read", "read from illegal (RAM+VIA) address $%04X", addr)
	}
	return 0
}

func (i *IllegalRange) Write(addr uint16, value uint8) {
	if i.errs != nil {
		i.errs.Undefined("IllegalRange.Write", "write to illegal (RAM+VIA) address $%04X ignored", addr)
	}
}
