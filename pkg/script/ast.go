package script

// Statement represents one line of an overlay file: a register definition,
// a script header, a script terminator, or an instruction.
type Statement struct {
	Define *DefineStmt `parser:"  @@"`
	End    bool        `parser:"| @KwEnd"`
	Instr  *InstrLine  `parser:"| @@"`
}

// DefineStmt covers both overlay record shapes. With an address it defines
// (or overrides) a register:
//
//	define RCC_AHB1ENR [STM32F4*] = 0x40023830
//
// Without one it opens a script block that runs until "end":
//
//	define swo_device [STM32F4*]
type DefineStmt struct {
	Name    string       `parser:"KwDefine @Ident"`
	List    string       `parser:"@List"`
	Address *AddressSpec `parser:"( Assign @@ )?"`
}

// AddressSpec is a register address with an optional size tag.
// The default operand size is 4 bytes ({int}); {short} selects 2 and
// {byte}/{char} select 1.
type AddressSpec struct {
	Size  string `parser:"@SizeTag?"`
	Value string `parser:"@Number"`
}

// Resolve returns the numeric address and the operand size the tag selects.
func (a *AddressSpec) Resolve() (address uint32, size uint8, err error) {
	address, err = parseNumber(a.Value)
	if err != nil {
		return 0, 0, err
	}
	switch a.Size {
	case "{byte}", "{char}":
		size = 1
	case "{short}":
		size = 2
	default:
		size = 4
	}
	return address, size, nil
}

// InstrLine is a single register operation. The leading "set" keyword is
// accepted and ignored.
type InstrLine struct {
	Dest    *DestSpec  `parser:"KwSet? @@"`
	Op      string     `parser:"@( OpClearAssign | OpOr | OpAnd | Assign )"`
	Invert  bool       `parser:"@Tilde?"`
	Operand *ValueSpec `parser:"@@"`
}

// DestSpec is the destination of an instruction: a raw memory address, a
// runtime parameter, or a symbolic register name.
type DestSpec struct {
	Number   *string `parser:"  @Number"`
	Param    *string `parser:"| @Param"`
	Register *string `parser:"| @Ident"`
}

// ValueSpec is the operand of an instruction: a literal or a runtime
// parameter.
type ValueSpec struct {
	Number *string `parser:"  @Number"`
	Param  *string `parser:"| @Param"`
}

// Sequence is a full script body: instructions in declaration order.
// Built-in catalog bodies are parsed in one piece through this rule.
type Sequence struct {
	Lines []*InstrLine `parser:"@@*"`
}
