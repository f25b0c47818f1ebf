package target

// Register is one entry of the live register table: a built-in definition
// that matched the loaded MCU, or an overlay definition applied on top.
type Register struct {
	Name    string
	Address uint32
	Size    uint8
}

// RegisterSet is the register table assembled for the loaded MCU. Names are
// unique; defining an existing name replaces its address and size in place.
type RegisterSet struct {
	regs  []Register
	index map[string]int
}

// NewRegisterSet creates an empty register table.
func NewRegisterSet() *RegisterSet {
	return &RegisterSet{index: make(map[string]int)}
}

// Define adds a register or, when the name already exists, replaces its
// address and size while keeping the original table position.
func (rs *RegisterSet) Define(name string, address uint32, size uint8) {
	if i, ok := rs.index[name]; ok {
		rs.regs[i].Address = address
		rs.regs[i].Size = size
		return
	}
	rs.index[name] = len(rs.regs)
	rs.regs = append(rs.regs, Register{Name: name, Address: address, Size: size})
}

// ResolveRegister implements script.RegisterResolver. Lookups are
// case-sensitive.
func (rs *RegisterSet) ResolveRegister(name string) (uint32, uint8, bool) {
	i, ok := rs.index[name]
	if !ok {
		return 0, 0, false
	}
	return rs.regs[i].Address, rs.regs[i].Size, true
}

// All returns the table in definition order.
func (rs *RegisterSet) All() []Register {
	return rs.regs
}

// Len returns the number of defined registers.
func (rs *RegisterSet) Len() int {
	return len(rs.regs)
}
