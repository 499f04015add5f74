// Package memory implements the Vectrex's 16-bit address bus: address
// decoding, device routing, shadow-mask aliasing, and the sync-on-access
// mechanism that advances the VIA (and through it the PSG and Screen) at
// the exact point of each CPU bus touch rather than every cycle.
package memory

import "fmt"

// Device is anything that can be plugged into the bus at a fixed address
// range: Cartridge/BiosRom/Ram and the Illegal/Unmapped sentinels.
type Device interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// SyncDevice is a Device that also needs to be advanced by elapsed CPU
// cycles before it services an access — the VIA, specifically. Only one
// sync-enabled device exists on the real hardware (the VIA occupies
// $D000-$D7FF) but the bus does not assume there is exactly one.
type SyncDevice interface {
	Device
	Sync(cycles int)
}

type entry struct {
	start, end uint16
	device     Device
	sync       SyncDevice // non-nil iff device implements SyncDevice
	shadowMask uint16
}

// Bus is the Vectrex's shared 16-bit memory bus.
type Bus struct {
	entries []entry

	pendingSyncCycles int

	onRead, onWrite   func(addr uint16, value uint8)
	callbacksEnabled  bool
}

// NewBus creates an empty bus. Devices are registered with Connect.
func NewBus() *Bus {
	return &Bus{callbacksEnabled: true}
}

// Connect registers device at [start, end] (inclusive). shadowDivisor must
// be 1 or a power of two dividing (end-start+1); the physical range is then
// aliased down to a logical window of size (end-start+1)/shadowDivisor, and
// any address in range is mapped to that window via addr & shadowMask.
// Connect fails (a structural configuration error, §7 category 2) if range
// overlaps an already-connected device, or if shadowDivisor does not evenly
// divide the range's physical size.
func (b *Bus) Connect(device Device, start, end uint16, shadowDivisor int, syncEnabled bool) error {
	if end < start {
		return fmt.Errorf("memory: invalid range $%04X..$%04X", start, end)
	}
	physicalSize := int(end-start) + 1
	if shadowDivisor < 1 || physicalSize%shadowDivisor != 0 {
		return fmt.Errorf("memory: shadow divisor %d does not divide range size %d", shadowDivisor, physicalSize)
	}
	for _, e := range b.entries {
		if start <= e.end && e.start <= end {
			return fmt.Errorf("memory: range $%04X..$%04X overlaps existing $%04X..$%04X", start, end, e.start, e.end)
		}
	}

	logicalSize := physicalSize / shadowDivisor
	var shadowMask uint16
	if logicalSize > 1 {
		shadowMask = uint16(logicalSize - 1)
	} else {
		shadowMask = 0xFFFF
	}

	e := entry{start: start, end: end, device: device, shadowMask: shadowMask}
	if syncEnabled {
		sd, ok := device.(SyncDevice)
		if !ok {
			return fmt.Errorf("memory: device at $%04X..$%04X marked sync-enabled but does not implement Sync", start, end)
		}
		e.sync = sd
	}
	b.entries = append(b.entries, e)
	return nil
}

// find locates the entry owning addr. Returns nil if unmapped — a
// structural bug if it happens after Connect has covered the full address
// space (the Emulator guarantees full coverage at init).
func (b *Bus) find(addr uint16) *entry {
	for i := range b.entries {
		e := &b.entries[i]
		if addr >= e.start && addr <= e.end {
			return e
		}
	}
	return nil
}

func mapAddr(addr uint16, e *entry) uint16 {
	offset := addr - e.start
	return offset & e.shadowMask
}

// Read reads one byte from the bus.
func (b *Bus) Read(addr uint16) uint8 {
	e := b.find(addr)
	if e == nil {
		return 0
	}
	if e.sync != nil {
		e.sync.Sync(b.pendingSyncCycles)
		b.pendingSyncCycles = 0
	}
	value := e.device.Read(mapAddr(addr, e))
	if b.callbacksEnabled && b.onRead != nil {
		b.onRead(addr, value)
	}
	return value
}

// Write writes one byte to the bus.
func (b *Bus) Write(addr uint16, value uint8) {
	e := b.find(addr)
	if e == nil {
		return
	}
	if e.sync != nil {
		e.sync.Sync(b.pendingSyncCycles)
		b.pendingSyncCycles = 0
	}
	e.device.Write(mapAddr(addr, e), value)
	if b.callbacksEnabled && b.onWrite != nil {
		b.onWrite(addr, value)
	}
}

// Read16 reads a big-endian 16-bit value (6809 is big-endian throughout).
func (b *Bus) Read16(addr uint16) uint16 {
	hi := b.Read(addr)
	lo := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes a big-endian 16-bit value.
func (b *Bus) Write16(addr uint16, value uint16) {
	b.Write(addr, uint8(value>>8))
	b.Write(addr+1, uint8(value))
}

// AddSyncCycles accumulates cycles consumed by the CPU since the last sync
// on any sync-enabled device; the next Read/Write that touches a
// sync-enabled device drains this counter via its Sync call.
func (b *Bus) AddSyncCycles(cycles int) {
	b.pendingSyncCycles += cycles
}

// RegisterCallbacks installs tracer/watchpoint observer hooks, fired after
// every completed access while callbacks are enabled.
func (b *Bus) RegisterCallbacks(onRead, onWrite func(addr uint16, value uint8)) {
	b.onRead = onRead
	b.onWrite = onWrite
}

// SetCallbacksEnabled toggles the observer hooks so a tracer's own internal
// reads (e.g. disassembling ahead of PC) do not recurse into itself.
func (b *Bus) SetCallbacksEnabled(enabled bool) {
	b.callbacksEnabled = enabled
}
