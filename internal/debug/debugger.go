package debug

import "sync"

// Breakpoint represents a breakpoint at a CPU program-counter address.
type Breakpoint struct {
	PC       uint16
	Enabled  bool
	HitCount int
}

// WatchExpression represents a watched memory address, evaluated by the
// caller (the debugger collaborator reads the bus itself; this type only
// tracks the last-seen value for change detection).
type WatchExpression struct {
	Addr      uint16
	Value     uint8
	LastValue uint8
}

// CallFrame represents one JSR/BSR call-stack entry. Frames are recorded
// only through PushCallFrame and PopCallFrame; bus traffic is not inspected
// for calls or returns.
type CallFrame struct {
	ReturnPC uint16
}

// Debugger is the non-core collaborator described in the concurrency model:
// ShouldBreak checks breakpoints against a PC for whatever loop drives
// instruction stepping, and OnBusAccess serves as the bus's read/write
// callback for watchpoints. It never participates in core
// execution itself.
type Debugger struct {
	breakpoints   map[uint16]*Breakpoint
	breakpointsMu sync.RWMutex

	watches   []*WatchExpression
	watchesMu sync.RWMutex

	paused    bool
	stepping  bool
	stepCount int
	stateMu   sync.RWMutex

	callStack []CallFrame
	stackMu   sync.RWMutex
}

// NewDebugger creates a new debugger instance.
func NewDebugger() *Debugger {
	return &Debugger{
		breakpoints: make(map[uint16]*Breakpoint),
		watches:     make([]*WatchExpression, 0),
		callStack:   make([]CallFrame, 0),
	}
}

// SetBreakpoint sets a breakpoint at the specified PC.
func (d *Debugger) SetBreakpoint(pc uint16) {
	d.breakpointsMu.Lock()
	defer d.breakpointsMu.Unlock()
	d.breakpoints[pc] = &Breakpoint{PC: pc, Enabled: true}
}

// RemoveBreakpoint removes a breakpoint.
func (d *Debugger) RemoveBreakpoint(pc uint16) bool {
	d.breakpointsMu.Lock()
	defer d.breakpointsMu.Unlock()
	if _, exists := d.breakpoints[pc]; exists {
		delete(d.breakpoints, pc)
		return true
	}
	return false
}

// GetBreakpoint returns a breakpoint by PC.
func (d *Debugger) GetBreakpoint(pc uint16) (*Breakpoint, bool) {
	d.breakpointsMu.RLock()
	defer d.breakpointsMu.RUnlock()
	bp, exists := d.breakpoints[pc]
	return bp, exists
}

// GetAllBreakpoints returns all breakpoints.
func (d *Debugger) GetAllBreakpoints() map[uint16]*Breakpoint {
	d.breakpointsMu.RLock()
	defer d.breakpointsMu.RUnlock()
	result := make(map[uint16]*Breakpoint, len(d.breakpoints))
	for k, v := range d.breakpoints {
		result[k] = v
	}
	return result
}

// EnableBreakpoint enables a breakpoint.
func (d *Debugger) EnableBreakpoint(pc uint16) bool {
	d.breakpointsMu.Lock()
	defer d.breakpointsMu.Unlock()
	if bp, exists := d.breakpoints[pc]; exists {
		bp.Enabled = true
		return true
	}
	return false
}

// DisableBreakpoint disables a breakpoint.
func (d *Debugger) DisableBreakpoint(pc uint16) bool {
	d.breakpointsMu.Lock()
	defer d.breakpointsMu.Unlock()
	if bp, exists := d.breakpoints[pc]; exists {
		bp.Enabled = false
		return true
	}
	return false
}

// AddWatch starts watching a memory address.
func (d *Debugger) AddWatch(addr uint16) {
	d.watchesMu.Lock()
	defer d.watchesMu.Unlock()
	d.watches = append(d.watches, &WatchExpression{Addr: addr})
}

// RemoveWatch removes a watch by index.
func (d *Debugger) RemoveWatch(index int) bool {
	d.watchesMu.Lock()
	defer d.watchesMu.Unlock()
	if index >= 0 && index < len(d.watches) {
		d.watches = append(d.watches[:index], d.watches[index+1:]...)
		return true
	}
	return false
}

// GetWatches returns all watch expressions.
func (d *Debugger) GetWatches() []*WatchExpression {
	d.watchesMu.RLock()
	defer d.watchesMu.RUnlock()
	result := make([]*WatchExpression, len(d.watches))
	copy(result, d.watches)
	return result
}

// OnBusAccess is the bus read/write callback hook (§4.1's RegisterCallbacks
// consumer): updates any watch matching addr.
func (d *Debugger) OnBusAccess(addr uint16, value uint8) {
	d.watchesMu.Lock()
	defer d.watchesMu.Unlock()
	for _, w := range d.watches {
		if w.Addr == addr {
			w.LastValue = w.Value
			w.Value = value
		}
	}
}

// Pause pauses execution.
func (d *Debugger) Pause() {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	d.paused = true
	d.stepping = false
}

// Resume resumes execution.
func (d *Debugger) Resume() {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	d.paused = false
	d.stepping = false
}

// Step arms single/multi-step mode for count instructions.
func (d *Debugger) Step(count int) {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	d.stepping = true
	d.stepCount = count
	d.paused = false
}

// IsPaused returns whether execution is paused.
func (d *Debugger) IsPaused() bool {
	d.stateMu.RLock()
	defer d.stateMu.RUnlock()
	return d.paused
}

// ShouldBreak checks if execution should break before the instruction at pc
// runs (breakpoint hit or stepping exhausted).
func (d *Debugger) ShouldBreak(pc uint16) bool {
	d.stateMu.RLock()
	stepping := d.stepping
	stepCount := d.stepCount
	d.stateMu.RUnlock()

	if stepping {
		if stepCount > 0 {
			d.stateMu.Lock()
			d.stepCount--
			if d.stepCount <= 0 {
				d.stepping = false
				d.paused = true
			}
			d.stateMu.Unlock()
			return true
		}
	}

	d.breakpointsMu.RLock()
	bp, exists := d.breakpoints[pc]
	d.breakpointsMu.RUnlock()
	if exists && bp.Enabled {
		d.breakpointsMu.Lock()
		bp.HitCount++
		d.breakpointsMu.Unlock()
		return true
	}
	return false
}

// PushCallFrame records a JSR/BSR return address.
func (d *Debugger) PushCallFrame(returnPC uint16) {
	d.stackMu.Lock()
	defer d.stackMu.Unlock()
	d.callStack = append(d.callStack, CallFrame{ReturnPC: returnPC})
}

// PopCallFrame pops the most recent call frame (on RTS).
func (d *Debugger) PopCallFrame() (CallFrame, bool) {
	d.stackMu.Lock()
	defer d.stackMu.Unlock()
	if len(d.callStack) == 0 {
		return CallFrame{}, false
	}
	frame := d.callStack[len(d.callStack)-1]
	d.callStack = d.callStack[:len(d.callStack)-1]
	return frame, true
}

// GetCallStack returns a copy of the current call stack.
func (d *Debugger) GetCallStack() []CallFrame {
	d.stackMu.RLock()
	defer d.stackMu.RUnlock()
	result := make([]CallFrame, len(d.callStack))
	copy(result, d.callStack)
	return result
}
