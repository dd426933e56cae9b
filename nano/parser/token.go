package parser

import "fmt"

type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Literals
	TokenNumber
	TokenString
	TokenIdent

	// Keywords
	TokenLet
	TokenFn
	TokenReturn
	TokenIf
	TokenElse
	TokenFor
	TokenWhile
	TokenIn
	TokenTrue
	TokenFalse

	// Two-character operators
	TokenEQ
	TokenNEQ
	TokenLE
	TokenGE
	TokenAnd
	TokenOr

	// One-character operators
	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide
	TokenPow
	TokenMod
	TokenAssign
	TokenLT
	TokenGT
	TokenNot

	// Delimiters
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace
	TokenComma
	TokenColon
	TokenSemicolon
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:       "EOF",
	TokenNumber:    "NUMBER",
	TokenString:    "STRING",
	TokenIdent:     "ID",
	TokenLet:       "KW_LET",
	TokenFn:        "KW_FN",
	TokenReturn:    "KW_RETURN",
	TokenIf:        "KW_IF",
	TokenElse:      "KW_ELSE",
	TokenFor:       "KW_FOR",
	TokenWhile:     "KW_WHILE",
	TokenIn:        "KW_IN",
	TokenTrue:      "KW_TRUE",
	TokenFalse:     "KW_FALSE",
	TokenEQ:        "EQ",
	TokenNEQ:       "NEQ",
	TokenLE:        "LE",
	TokenGE:        "GE",
	TokenAnd:       "AND",
	TokenOr:        "OR",
	TokenPlus:      "PLUS",
	TokenMinus:     "MINUS",
	TokenMultiply:  "MULTIPLY",
	TokenDivide:    "DIVIDE",
	TokenPow:       "POW",
	TokenMod:       "MOD",
	TokenAssign:    "ASSIGN",
	TokenLT:        "LT",
	TokenGT:        "GT",
	TokenNot:       "NOT",
	TokenLParen:    "LPAREN",
	TokenRParen:    "RPAREN",
	TokenLBracket:  "LBRACKET",
	TokenRBracket:  "RBRACKET",
	TokenLBrace:    "LBRACE",
	TokenRBrace:    "RBRACE",
	TokenComma:     "COMMA",
	TokenColon:     "COLON",
	TokenSemicolon: "SEMICOLON",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a single lexical unit. Line and Column are 1-based and describe
// the position of the token's first character.
type Token struct {
	Kind    TokenKind
	Literal string
	Line    int
	Column  int
}

// String renders the token the way the lex table displays it:
// kind padded to 12 columns, literal padded to 20, then the position.
func (t Token) String() string {
	return fmt.Sprintf("%-12s %-20s @ (%d,%d)", t.Kind, t.Literal, t.Line, t.Column)
}

var keywords = map[string]TokenKind{
	"let":    TokenLet,
	"fn":     TokenFn,
	"return": TokenReturn,
	"if":     TokenIf,
	"else":   TokenElse,
	"for":    TokenFor,
	"while":  TokenWhile,
	"in":     TokenIn,
	"true":   TokenTrue,
	"false":  TokenFalse,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
