package debug

import (
	"fmt"
	"sync"

	"github.com/davecgh/go-spew/spew"
)

// Policy selects how a recoverable hardware quirk is reported.
type Policy int

const (
	PolicyIgnore Policy = iota
	PolicyLog
	PolicyLogOnce
	PolicyFail
)

// Category distinguishes real-hardware-variable behavior from an
// emulator-side limitation.
type Category string

const (
	CategoryUndefined   Category = "Undefined"
	CategoryUnsupported Category = "Unsupported"
)

// ErrorHandler implements the recoverable-hardware-quirk reporting policy:
// writes to ROM, unmapped/illegal bus accesses, reserved indexed postbytes,
// and PSG port writes all funnel through here rather than panicking.
// Structural configuration errors (§7 category 2) and host-surface errors
// (category 3) are plain Go errors returned by their respective calls and
// never pass through this type.
type ErrorHandler struct {
	logger *Logger
	policy Policy

	mu   sync.Mutex
	once map[string]struct{} // call sites already reported under PolicyLogOnce
}

// NewErrorHandler wires error reporting to logger under the given default
// policy. A nil logger is valid: Log/LogOnce policies become no-ops and Fail
// still panics.
func NewErrorHandler(logger *Logger, policy Policy) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
		policy: policy,
		once:   make(map[string]struct{}),
	}
}

// SetPolicy changes the default reporting policy.
func (e *ErrorHandler) SetPolicy(p Policy) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.policy = p
}

// Undefined reports a condition whose real-hardware behavior varies (e.g. a
// cartridge read past loaded ROM size, a write to ROM).
func (e *ErrorHandler) Undefined(site, format string, args ...interface{}) {
	e.report(CategoryUndefined, site, format, args...)
}

// Unsupported reports an emulator-side limitation (e.g. VIA free-running
// timer mode, an indexed postbyte form marked illegal).
func (e *ErrorHandler) Unsupported(site, format string, args ...interface{}) {
	e.report(CategoryUnsupported, site, format, args...)
}

func (e *ErrorHandler) report(cat Category, site, format string, args ...interface{}) {
	e.mu.Lock()
	policy := e.policy
	_, seen := e.once[site]
	e.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	switch policy {
	case PolicyIgnore:
		return
	case PolicyLogOnce:
		if seen {
			return
		}
		e.mu.Lock()
		e.once[site] = struct{}{}
		e.mu.Unlock()
		fallthrough
	case PolicyLog:
		if e.logger != nil {
			e.logger.LogCategory(ComponentSystem, LogLevelWarning, cat, fmt.Sprintf("%s: %s", site, msg))
		}
	case PolicyFail:
		panic(fmt.Sprintf("[%s] %s: %s", cat, site, msg))
	}
}

// DumpState renders an arbitrary piece of state (e.g. a register snapshot)
// with spew for inclusion in a Fail-policy panic message or a Trace-level
// log line; used sparingly since it allocates.
func DumpState(v interface{}) string {
	return spew.Sdump(v)
}
