package parser

import "fmt"

type LexErrorKind int

const (
	UnterminatedBlockComment LexErrorKind = iota
	UnterminatedString
	InvalidCharacter
)

// LexError is raised when the lexer finds an invalid or malformed token.
// Line and Column point at the first character of the offending construct
// (the opening quote of an unterminated string, the "/*" of an unterminated
// block comment).
type LexError struct {
	Kind   LexErrorKind
	Line   int
	Column int
	Char   rune // offending character, InvalidCharacter only
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnterminatedBlockComment:
		return fmt.Sprintf("Erro léxico na linha %d, coluna %d: comentário de bloco não terminado", e.Line, e.Column)
	case UnterminatedString:
		return fmt.Sprintf("Erro léxico na linha %d, coluna %d: string não terminada", e.Line, e.Column)
	default:
		return fmt.Sprintf("Erro léxico na linha %d, coluna %d: caractere inválido %q", e.Line, e.Column, e.Char)
	}
}

type SyntaxErrorKind int

const (
	UnexpectedToken SyntaxErrorKind = iota
	UnterminatedBlock
	InvalidPrimary
)

// SyntaxError is raised on the first grammar mismatch. Line and Column are
// those of the lookahead token that triggered it.
type SyntaxError struct {
	Kind     SyntaxErrorKind
	Expected TokenKind // UnexpectedToken only
	Found    TokenKind
	Line     int
	Column   int
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnterminatedBlock:
		return fmt.Sprintf("Erro sintático: bloco não terminado (esperado '}') na linha %d, coluna %d", e.Line, e.Column)
	case InvalidPrimary:
		return fmt.Sprintf("Erro sintático: expressão inválida perto de %s na linha %d, coluna %d", e.Found, e.Line, e.Column)
	default:
		return fmt.Sprintf("Erro sintático: esperado %s, encontrado %s na linha %d, coluna %d", e.Expected, e.Found, e.Line, e.Column)
	}
}
