package script

import "fmt"

// OperandKind tags the variant held by an Operand.
type OperandKind uint8

const (
	// KindLiteral is a numeric literal: a raw memory address when used as
	// a destination, a plain value when used as an operand.
	KindLiteral OperandKind = iota
	// KindRegister is a register resolved at compile time; Value holds
	// the register's address.
	KindRegister
	// KindParam is a runtime parameter placeholder ($N), substituted at
	// format time; Index holds N.
	KindParam
)

// Operand is a compiled instruction operand. The tag keeps parameter
// placeholders distinct from literal values, so any 32-bit literal is
// representable.
type Operand struct {
	Kind  OperandKind
	Value uint32
	Index int
}

// Literal returns a literal operand.
func Literal(v uint32) Operand { return Operand{Kind: KindLiteral, Value: v} }

// Register returns a resolved register operand.
func Register(address uint32) Operand { return Operand{Kind: KindRegister, Value: address} }

// Param returns a runtime parameter operand.
func Param(index int) Operand { return Operand{Kind: KindParam, Index: index} }

// Operator is the read-modify-write operation applied to the destination.
type Operator uint8

const (
	// OpAssign stores the operand: dest = value.
	OpAssign Operator = iota
	// OpSet sets bits: dest |= value.
	OpSet
	// OpClear clears bits: dest &= value. For a literal operand the
	// complement is already applied at compile time.
	OpClear
	// OpClearInvParam clears bits of a parameter that must be
	// complemented at format time: dest &= ~$N.
	OpClearInvParam
)

// String renders the operator the way the remote protocol expects it.
func (op Operator) String() string {
	switch op {
	case OpAssign:
		return "="
	case OpSet:
		return "|="
	case OpClear:
		return "&="
	case OpClearInvParam:
		return "&="
	default:
		return fmt.Sprintf("Operator(%d)", uint8(op))
	}
}

// Instruction is one compiled register operation.
type Instruction struct {
	Dest  Operand
	Op    Operator
	Value Operand
	Size  uint8 // operand size in bytes: 1, 2 or 4
}

// Script is a compiled script: its instructions in declaration order.
type Script struct {
	Name         string
	Instructions []Instruction
}
