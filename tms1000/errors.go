package tms1000

import "fmt"

// InvalidState represents a load-time or construction-time error: the
// engine is never partially constructed (spec.md §7 "Load errors").
type InvalidState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidState) Error() string {
	return fmt.Sprintf("invalid TMS1000 state: %s", e.Reason)
}

// UndefinedRead is raised (as a log ALERT, not a returned error; see
// Chip.Log) when A or a RAM cell that has not been written since
// power-on is consumed as an operand. Execution continues per spec.md §7.
type UndefinedRead struct {
	Register string
}

// Error implements the error interface, used only for formatting the
// ALERT log line.
func (e UndefinedRead) Error() string {
	return fmt.Sprintf("ALERT: undefined read of %s", e.Register)
}

// NestedCall is raised (as a log ALERT) when a CALL executes while
// CL==1. SR is a single register so the original return address is
// lost; this is documented hardware-undefined behavior, not a fatal
// error (spec.md §4.6, §7).
type NestedCall struct{}

// Error implements the error interface.
func (e NestedCall) Error() string {
	return "ALERT: nested CALL, return address corrupted"
}
