package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer defines the lexical structure for device initialization
// scripts and overlay files. The language is line-oriented: every statement
// is one register operation, one "define" record header, or "end".
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from '#' to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace (statements are split per line before parsing, so
	// newlines carry no meaning at this level)
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords
	{Name: "KwDefine", Pattern: `\bdefine\b`},
	{Name: "KwSet", Pattern: `\bset\b`},
	{Name: "KwEnd", Pattern: `\bend\b`},

	// Bracketed applicability list (e.g. [STM32F4*,STM32F7*] or [M0])
	{Name: "List", Pattern: `\[[^\]\n]*\]`},

	// Runtime parameter placeholder ($0 .. $9)
	{Name: "Param", Pattern: `\$[0-9]`},

	// Operand size tag preceding an address literal
	{Name: "SizeTag", Pattern: `\{(?:byte|char|short|int)\}`},

	// Operators; '~=' must win over a lone '~'
	{Name: "OpClearAssign", Pattern: `~=`},
	{Name: "OpOr", Pattern: `\|=?`},
	{Name: "OpAnd", Pattern: `&=?`},
	{Name: "Assign", Pattern: `=`},
	{Name: "Tilde", Pattern: `~`},

	// Numbers (hex or decimal)
	{Name: "Number", Pattern: `0[xX][0-9A-Fa-f]+|[0-9]+`},

	// Register names (must come after keywords)
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
})
