package target

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceSWO/pkg/device"
	"github.com/OpenTraceLab/OpenTraceSWO/pkg/script"
)

// Session owns the definition database for one loaded MCU: the resolved
// register table, the compiled scripts, and the replay cursor. Loading for a
// different MCU tears the database down first; there is no process-wide
// state, so independent sessions can coexist.
type Session struct {
	compiler *script.Compiler

	overlayPath string
	overlayText string

	mcu     string // empty until Load succeeds
	archTag string // "[M0]" form, empty when no architecture was given

	regs     *RegisterSet
	registry *registry
	warnings []string

	// single-cursor replay façade
	bound  *Cursor
	sticky string // name the cursor is bound to
}

// Option configures a Session.
type Option func(*Session)

// WithOverlayFile sets the path of the user overlay file read on every load.
// A missing or unreadable file degrades to built-ins only.
func WithOverlayFile(path string) Option {
	return func(s *Session) { s.overlayPath = path }
}

// WithOverlaySource supplies overlay text directly instead of a file.
func WithOverlaySource(text string) Option {
	return func(s *Session) { s.overlayText = text }
}

// NewSession creates an empty session. No MCU is loaded yet.
func NewSession(opts ...Option) (*Session, error) {
	compiler, err := script.NewCompiler()
	if err != nil {
		return nil, err
	}
	s := &Session{compiler: compiler}
	for _, opt := range opts {
		opt(s)
	}
	s.Clear()
	return s, nil
}

// MCU returns the currently loaded MCU family name, or "" when nothing is
// loaded.
func (s *Session) MCU() string {
	return s.mcu
}

// Warnings returns the diagnostics collected while loading the overlay:
// malformed lines, unterminated blocks, scripts referencing unknown
// registers. They are informational; the load itself succeeded.
func (s *Session) Warnings() []string {
	return s.warnings
}

// Registers returns the live register table for the loaded MCU.
func (s *Session) Registers() []Register {
	return s.regs.All()
}

// ScriptNames returns the distinct names of the compiled scripts, sorted.
func (s *Session) ScriptNames() []string {
	return s.registry.names()
}

// Load resolves the register table and compiles every applicable script for
// the given MCU family and optional core architecture. It returns the number
// of compiled scripts. Loading the same MCU again is a no-op that keeps the
// replay cursor intact; loading a different MCU clears the session first.
func (s *Session) Load(mcu, arch string) (int, error) {
	if s.mcu != "" && s.mcu == mcu {
		return s.registry.len(), nil
	}
	s.Clear()

	if arch != "" {
		s.archTag = "[" + arch + "]"
	}

	// registers: built-in catalog first
	for _, def := range device.Registers() {
		if device.Match(mcu, def.MCUList) {
			s.regs.Define(def.Name, def.Address, def.Size)
		}
	}

	// then the overlay's register records, in file order
	overlay, haveOverlay := s.readOverlay()
	var stmts []overlayLine
	if haveOverlay {
		stmts = s.scanOverlay(overlay)
		s.applyOverlayRegisters(stmts, mcu)
	}

	// scripts: built-ins matching the MCU family or the architecture tag
	for _, def := range device.Scripts() {
		if !s.scriptApplies(mcu, def.MCUList) {
			continue
		}
		sc, err := s.compiler.CompileBody(def.Name, def.Body, s.regs)
		if err != nil {
			// a built-in script referencing an unknown register is a
			// catalog inconsistency, not a user input problem
			s.Clear()
			return 0, fmt.Errorf("target: built-in %w", err)
		}
		s.registry.add(sc, tierBuiltin)
	}

	// overlay scripts land in the higher tier and win name collisions
	if haveOverlay {
		s.applyOverlayScripts(stmts, mcu)
	}

	s.mcu = mcu
	return s.registry.len(), nil
}

// Clear releases the register table, every compiled script, and the replay
// cursor. It is safe to call when nothing is loaded.
func (s *Session) Clear() {
	s.mcu = ""
	s.archTag = ""
	s.regs = NewRegisterSet()
	s.registry = newRegistry()
	s.warnings = nil
	s.ResetCursor()
}

// scriptApplies reports whether a script applicability list selects the
// loaded MCU or the architecture tag.
func (s *Session) scriptApplies(mcu, list string) bool {
	if device.Match(mcu, list) {
		return true
	}
	return s.archTag != "" && device.Match(s.archTag, list)
}

// Cursor returns a fresh iterator over the named script, looked up
// case-insensitively with overlay-over-builtin precedence.
func (s *Session) Cursor(name string) (*Cursor, error) {
	sc, ok := s.registry.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScript, name)
	}
	return &Cursor{sc: sc}, nil
}

// Next pulls the next instruction through the session's single replay
// cursor. Calling it with the exact name the cursor is bound to continues
// the sequence; any other name rebinds the cursor at position 0 (the lookup
// itself is case-insensitive, the continue decision is not); an empty name
// reuses the bound script. The instruction stream ends with
// ErrScriptExhausted; replaying the same name from the start requires
// ResetCursor (or binding a different script in between).
func (s *Session) Next(name string) (script.Instruction, error) {
	if name == "" {
		if s.bound == nil {
			return script.Instruction{}, ErrNotLoaded
		}
	} else if s.bound == nil || name != s.sticky {
		cur, err := s.Cursor(name)
		if err != nil {
			return script.Instruction{}, err
		}
		s.bound = cur
		s.sticky = name
	}
	return s.bound.Next()
}

// ResetCursor unbinds the replay cursor so the same script can be replayed
// from its first instruction. The compiled scripts are untouched.
func (s *Session) ResetCursor() {
	s.bound = nil
	s.sticky = ""
}

func (s *Session) readOverlay() (string, bool) {
	if s.overlayText != "" {
		return s.overlayText, true
	}
	if s.overlayPath == "" {
		return "", false
	}
	data, err := os.ReadFile(s.overlayPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.warn("overlay %s: %v", s.overlayPath, err)
		}
		return "", false
	}
	return string(data), true
}

func (s *Session) warn(format string, args ...interface{}) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}
