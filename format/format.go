// Package format renders lexer and parser output for display: the token
// table used by lex mode, the AST as JSON, and the AST printed back as
// NanoCalc source.
package format

import (
	"encoding"

	"github.com/dhamidi/nanocalc/nano/parser"
)

// Encoder renders a parsed program to a writer.
type Encoder interface {
	encoding.TextMarshaler
	Encode(prog *parser.Program) error
}
