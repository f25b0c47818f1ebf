package device

// RegisterDef describes one memory-mapped register in the built-in catalog.
// The same symbolic name may appear more than once with different addresses,
// scoped to different MCU families through the applicability list.
type RegisterDef struct {
	Name    string // symbolic name, case-sensitive ("TPIU_ACPR")
	Address uint32
	Size    uint8  // operand size in bytes: 1, 2 or 4
	MCUList string // comma-separated applicability patterns
}

// ScriptDef describes one built-in initialization script. Body is raw DSL
// text, one instruction per line. A bracketed entry in the applicability
// list (e.g. "[M0]") matches a core architecture rather than an MCU family.
type ScriptDef struct {
	Name    string
	MCUList string
	Body    string
}
