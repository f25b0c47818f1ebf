package target

import "errors"

var (
	// ErrUnknownScript is returned when no compiled script carries the
	// requested name for the loaded MCU.
	ErrUnknownScript = errors.New("target: no such script")

	// ErrScriptExhausted is returned when a script has no instructions
	// left; the sequence completed.
	ErrScriptExhausted = errors.New("target: end of script")

	// ErrParamAbsent is returned when formatting needs a runtime
	// parameter the caller marked absent. The caller should skip the
	// single instruction and continue.
	ErrParamAbsent = errors.New("target: runtime parameter not available")

	// ErrNotLoaded is returned when replay continuation is requested
	// while the cursor is unbound: before any script ran, or after the
	// session was cleared.
	ErrNotLoaded = errors.New("target: no script bound")
)
