package target

import (
	"strings"

	"github.com/OpenTraceLab/OpenTraceSWO/pkg/device"
	"github.com/OpenTraceLab/OpenTraceSWO/pkg/script"
)

// The overlay file is line-oriented: '#' starts a comment, a
// "define NAME [LIST] = ADDRESS" line overrides or adds a register, and a
// "define NAME [LIST]" line opens a script block that runs until "end".
// Register records anywhere in the file are applied before any script is
// compiled, so a script may reference a register defined further down.

// overlayLine is one scanned line: its parsed statement or, for malformed
// lines, the parse error.
type overlayLine struct {
	no   int
	stmt *script.Statement
	bad  bool
}

// scanOverlay strips comments, drops blank lines and parses every remaining
// line. Malformed lines are kept (flagged bad) so that the script pass can
// report them in context, and are skipped by both passes.
func (s *Session) scanOverlay(text string) []overlayLine {
	var out []overlayLine
	for i, raw := range strings.Split(text, "\n") {
		line := raw
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		stmt, err := s.compiler.Parser().ParseStatement(line)
		if err != nil {
			s.warn("overlay line %d: %v", i+1, err)
			out = append(out, overlayLine{no: i + 1, bad: true})
			continue
		}
		out = append(out, overlayLine{no: i + 1, stmt: stmt})
	}
	return out
}

// applyOverlayRegisters applies every register record whose applicability
// list matches the MCU, in file order. A name collision replaces the
// existing register's address and size in place.
func (s *Session) applyOverlayRegisters(lines []overlayLine, mcu string) {
	for _, ln := range lines {
		if ln.bad || ln.stmt.Define == nil || ln.stmt.Define.Address == nil {
			continue
		}
		def := ln.stmt.Define
		if !device.Match(mcu, listBody(def.List)) {
			continue
		}
		addr, size, err := def.Address.Resolve()
		if err != nil {
			s.warn("overlay line %d: %v", ln.no, err)
			continue
		}
		s.regs.Define(def.Name, addr, size)
	}
}

// applyOverlayScripts compiles every script block whose applicability list
// matches the MCU or the architecture tag and registers it in the overlay
// tier. A block referencing an unknown register is reported and dropped as a
// whole; the rest of the file still loads.
func (s *Session) applyOverlayScripts(lines []overlayLine, mcu string) {
	var (
		inBlock  bool
		selected bool
		name     string
		startLn  int
		instrs   []script.Instruction
		broken   bool
	)
	flush := func() {
		if selected && !broken {
			s.registry.add(&script.Script{Name: name, Instructions: instrs}, tierOverlay)
		}
		inBlock, selected, broken = false, false, false
		instrs = nil
	}

	for _, ln := range lines {
		switch {
		case ln.bad:
			// already reported by the scanner

		case ln.stmt.Define != nil && ln.stmt.Define.Address == nil:
			if inBlock {
				s.warn("overlay line %d: script %q has no \"end\"", startLn, name)
				broken = true
				flush()
			}
			inBlock = true
			name = ln.stmt.Define.Name
			startLn = ln.no
			selected = s.scriptApplies(mcu, listBody(ln.stmt.Define.List))

		case ln.stmt.End:
			if inBlock {
				flush()
			}

		case ln.stmt.Instr != nil:
			if !inBlock || !selected || broken {
				continue
			}
			ins, err := script.CompileLine(ln.stmt.Instr, s.regs)
			if err != nil {
				s.warn("overlay line %d: script %q: %v", ln.no, name, err)
				broken = true
				continue
			}
			instrs = append(instrs, ins)

		case ln.stmt.Define != nil:
			// register record, handled by the register pass
		}
	}
	if inBlock {
		s.warn("overlay line %d: script %q has no \"end\"", startLn, name)
	}
}

// listBody strips the brackets off an applicability list token.
func listBody(list string) string {
	return strings.TrimSuffix(strings.TrimPrefix(list, "["), "]")
}
