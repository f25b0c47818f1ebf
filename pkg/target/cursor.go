package target

import (
	"github.com/OpenTraceLab/OpenTraceSWO/pkg/script"
)

// Cursor is a forward-only iterator over one compiled script. Obtain a fresh
// cursor whenever restart semantics are wanted; a cursor never outlives the
// session load it was created from.
type Cursor struct {
	sc  *script.Script
	pos int
}

// Name returns the name of the script being iterated.
func (c *Cursor) Name() string {
	return c.sc.Name
}

// Len returns the number of instructions in the script.
func (c *Cursor) Len() int {
	return len(c.sc.Instructions)
}

// Next returns the instruction at the current position and advances by one.
// It returns ErrScriptExhausted once the sequence completed.
func (c *Cursor) Next() (script.Instruction, error) {
	if c.pos >= len(c.sc.Instructions) {
		return script.Instruction{}, ErrScriptExhausted
	}
	ins := c.sc.Instructions[c.pos]
	c.pos++
	return ins, nil
}
