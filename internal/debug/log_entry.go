package debug

import (
	"fmt"
	"time"
)

// LogLevel is the severity of a log entry, ordered so a numeric comparison
// against a minimum threshold works directly.
type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelNone:
		return "NONE"
	case LogLevelError:
		return "ERROR"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelInfo:
		return "INFO"
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Component names the core subsystem a log entry originated from. These
// mirror the devices an Emulator wires together, not a generic console's
// PPU/APU/UI split.
type Component string

const (
	ComponentCPU    Component = "CPU"
	ComponentMemory Component = "Memory"
	ComponentVIA    Component = "VIA"
	ComponentPSG    Component = "PSG"
	ComponentScreen Component = "Screen"
	ComponentInput  Component = "Input"
	ComponentSystem Component = "System"
)

// LogEntry is a single record in the Logger's ring buffer. Category is set
// only for entries routed through an ErrorHandler (§7's Undefined/
// Unsupported quirk reporting); it is empty for ordinary component logging.
type LogEntry struct {
	Timestamp time.Time
	Component Component
	Category  Category
	Level     LogLevel
	Message   string
	Data      map[string]interface{}
}

// Format renders the entry as a single line suitable for a terminal or log
// file. A non-empty Category is folded in ahead of the message, matching how
// ErrorHandler.report used to bake it into the message string by hand.
func (e *LogEntry) Format() string {
	timestamp := e.Timestamp.Format("15:04:05.000")
	if e.Category != "" {
		return fmt.Sprintf("[%s] [%s] %s: [%s] %s", timestamp, e.Component, e.Level, e.Category, e.Message)
	}
	return fmt.Sprintf("[%s] [%s] %s: %s", timestamp, e.Component, e.Level, e.Message)
}
