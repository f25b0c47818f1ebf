package script

import (
	"fmt"
	"strconv"
)

// RegisterResolver resolves a symbolic register name to its address and
// operand size. Lookups are case-sensitive.
type RegisterResolver interface {
	ResolveRegister(name string) (address uint32, size uint8, ok bool)
}

// UnknownRegisterError reports an instruction referencing a register name
// absent from the active register table.
type UnknownRegisterError struct {
	Register string
}

func (e *UnknownRegisterError) Error() string {
	return fmt.Sprintf("script: unknown register %q", e.Register)
}

// Compiler lowers parsed script text into instruction sequences.
type Compiler struct {
	parser *Parser
}

// NewCompiler creates a compiler with its own parser instance.
func NewCompiler() (*Compiler, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	return &Compiler{parser: parser}, nil
}

// Parser exposes the underlying parser, for callers that scan overlay files
// statement by statement.
func (c *Compiler) Parser() *Parser {
	return c.parser
}

// CompileBody parses and lowers a complete script body.
func (c *Compiler) CompileBody(name, body string, regs RegisterResolver) (*Script, error) {
	seq, err := c.parser.ParseBody(body)
	if err != nil {
		return nil, err
	}
	sc := &Script{Name: name}
	for _, line := range seq.Lines {
		ins, err := CompileLine(line, regs)
		if err != nil {
			return nil, fmt.Errorf("script %q: %w", name, err)
		}
		sc.Instructions = append(sc.Instructions, ins)
	}
	return sc, nil
}

// CompileLine lowers one parsed instruction line. Literal operands are
// complemented in place when the invert flag ends up set; an inverted
// parameter operand is only valid with the clear-bits operator and is
// re-tagged for complementing at format time.
func CompileLine(line *InstrLine, regs RegisterResolver) (Instruction, error) {
	var ins Instruction

	switch {
	case line.Dest.Number != nil:
		addr, err := parseNumber(*line.Dest.Number)
		if err != nil {
			return ins, err
		}
		ins.Dest = Literal(addr)
		ins.Size = 4
	case line.Dest.Param != nil:
		ins.Dest = Param(paramIndex(*line.Dest.Param))
		ins.Size = 4
	default:
		name := *line.Dest.Register
		addr, size, ok := regs.ResolveRegister(name)
		if !ok {
			return ins, &UnknownRegisterError{Register: name}
		}
		ins.Dest = Register(addr)
		ins.Size = size
	}

	invert := line.Invert
	switch line.Op {
	case "=":
		ins.Op = OpAssign
	case "|", "|=":
		ins.Op = OpSet
	case "&", "&=":
		ins.Op = OpClear
	case "~=":
		// "a ~= b" means "a &= ~b"; a further '~' before the operand
		// cancels the double negative
		ins.Op = OpClear
		invert = !invert
	default:
		return ins, fmt.Errorf("script: invalid operator %q", line.Op)
	}

	switch {
	case line.Operand.Number != nil:
		v, err := parseNumber(*line.Operand.Number)
		if err != nil {
			return ins, err
		}
		if invert {
			v = ^v
		}
		ins.Value = Literal(v)
	default:
		if invert {
			if ins.Op != OpClear {
				return ins, fmt.Errorf("script: inverted parameter requires the clear-bits operator")
			}
			ins.Op = OpClearInvParam
		}
		ins.Value = Param(paramIndex(*line.Operand.Param))
	}

	return ins, nil
}

func parseNumber(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("script: invalid number %q: %w", s, err)
	}
	return uint32(v), nil
}

func paramIndex(token string) int {
	// the lexer guarantees the shape "$N"
	return int(token[1] - '0')
}
