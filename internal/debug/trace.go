package debug

import "sync"

// MemoryAccess records one bus touch made while executing a traced
// instruction.
type MemoryAccess struct {
	Addr    uint16
	Value   uint8
	IsWrite bool
}

// RegisterSnapshot is a point-in-time copy of the CPU's visible register
// file. Field names mirror the CPU package's own register names so a caller
// can build one from either pre- or post-instruction state without any
// CPU-package import here (avoids a debug <-> cpu import cycle).
type RegisterSnapshot struct {
	A, B, DP, CC   uint8
	X, Y, U, S, PC uint16
}

// InstructionTrace is one entry of the instruction trace ring buffer: the
// register file before and after, the raw opcode bytes fetched, which
// opcode page it came from, the cycle count consumed, and every bus access
// the instruction made.
type InstructionTrace struct {
	Pre, Post     RegisterSnapshot
	OpcodeBytes   []uint8
	Page          int
	Cycles        int
	MemoryAccesses []MemoryAccess
}

// Tracer is a fixed-capacity circular buffer of InstructionTrace entries.
// It is produced by the driver surrounding the CPU (the emulator or a
// debugger collaborator), never by the CPU itself, matching the CPU's
// contract of returning only a cycle count from ExecuteInstruction.
type Tracer struct {
	mu      sync.Mutex
	entries []InstructionTrace
	cursor  int // index the next Push will write to
	count   int // number of valid entries, saturates at len(entries)
}

// NewTracer creates a ring buffer holding up to capacity entries.
func NewTracer(capacity int) *Tracer {
	if capacity < 1 {
		capacity = 1
	}
	return &Tracer{entries: make([]InstructionTrace, capacity)}
}

// Push records a new trace entry, overwriting the oldest one once the
// buffer is full.
func (t *Tracer) Push(entry InstructionTrace) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[t.cursor] = entry
	t.cursor = (t.cursor + 1) % len(t.entries)
	if t.count < len(t.entries) {
		t.count++
	}
}

// Len returns the number of valid entries currently held.
func (t *Tracer) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// PeekBack returns the entry n instructions ago (n=0 is the most recently
// pushed entry) without disturbing the buffer. Index arithmetic from the
// write cursor, not pop-then-push.
func (t *Tracer) PeekBack(n int) (InstructionTrace, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n < 0 || n >= t.count {
		return InstructionTrace{}, false
	}
	capacity := len(t.entries)
	idx := (t.cursor - 1 - n%capacity + capacity) % capacity
	return t.entries[idx], true
}

// Recent returns the most recent count entries, oldest first.
func (t *Tracer) Recent(count int) []InstructionTrace {
	t.mu.Lock()
	n := t.count
	t.mu.Unlock()
	if count > n {
		count = n
	}
	out := make([]InstructionTrace, count)
	for i := 0; i < count; i++ {
		entry, _ := t.PeekBack(count - 1 - i)
		out[i] = entry
	}
	return out
}

// Clear discards all entries.
func (t *Tracer) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor = 0
	t.count = 0
}
