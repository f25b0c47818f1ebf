package script

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// Parser parses device script text: whole script bodies or single overlay
// statements.
type Parser struct {
	sequence  *participle.Parser[Sequence]
	statement *participle.Parser[Statement]
}

// NewParser creates a new script parser instance.
func NewParser() (*Parser, error) {
	sequence, err := participle.Build[Sequence](
		participle.Lexer(ScriptLexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("script: failed to build parser: %w", err)
	}
	statement, err := participle.Build[Statement](
		participle.Lexer(ScriptLexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("script: failed to build parser: %w", err)
	}
	return &Parser{sequence: sequence, statement: statement}, nil
}

// ParseBody parses a complete script body (a sequence of instruction lines).
func (p *Parser) ParseBody(input string) (*Sequence, error) {
	seq, err := p.sequence.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("script: parse error: %w", err)
	}
	return seq, nil
}

// ParseStatement parses one overlay file line. Blank and comment-only lines
// must be filtered out by the caller before parsing.
func (p *Parser) ParseStatement(line string) (*Statement, error) {
	stmt, err := p.statement.ParseString("", line)
	if err != nil {
		return nil, fmt.Errorf("script: parse error: %w", err)
	}
	return stmt, nil
}
