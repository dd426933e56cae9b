package parser

import "strings"

// Two-character operators are matched before one-character ones so that
// "==" never splits into two ASSIGN tokens.
var operators2 = map[string]TokenKind{
	"==": TokenEQ,
	"!=": TokenNEQ,
	"<=": TokenLE,
	">=": TokenGE,
	"&&": TokenAnd,
	"||": TokenOr,
}

var operators1 = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMultiply,
	'/': TokenDivide,
	'^': TokenPow,
	'%': TokenMod,
	'=': TokenAssign,
	'<': TokenLT,
	'>': TokenGT,
	'!': TokenNot,
	'(': TokenLParen,
	')': TokenRParen,
	'[': TokenLBracket,
	']': TokenRBracket,
	'{': TokenLBrace,
	'}': TokenRBrace,
	',': TokenComma,
	':': TokenColon,
	';': TokenSemicolon,
}

// Lexer turns NanoCalc source text into tokens using maximal munch. It is
// single-use: one buffer, one linear pass, ending in exactly one EOF token.
type Lexer struct {
	buf    *InputBuffer
	line   int
	column int
}

func NewLexer(buf *InputBuffer) *Lexer {
	return &Lexer{buf: buf, line: 1, column: 1}
}

func (l *Lexer) peek() rune {
	return l.peekN(0)
}

func (l *Lexer) peekN(n int) rune {
	s := []rune(l.buf.Peek(n + 1))
	if len(s) <= n {
		return 0
	}
	return s[n]
}

func (l *Lexer) advance() rune {
	s := l.buf.Advance(1)
	if s == "" {
		return 0
	}
	ch := []rune(s)[0]
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// NextToken skips whitespace and comments, then classifies exactly one
// token. Classification order is fixed: string literal, two-character
// operator, one-character operator or delimiter, number, identifier or
// keyword, invalid character.
func (l *Lexer) NextToken() (Token, error) {
	for !l.buf.EOF() {
		line, column := l.line, l.column
		ch := l.peek()

		if isWhitespace(ch) {
			l.advance()
			continue
		}
		if ch == '#' {
			for l.peek() != 0 && l.peek() != '\n' {
				l.advance()
			}
			continue
		}
		if ch == '/' && l.peekN(1) == '*' {
			if err := l.skipBlockComment(line, column); err != nil {
				return Token{}, err
			}
			continue
		}

		if ch == '\'' || ch == '"' {
			return l.scanString(line, column)
		}

		if two := l.buf.Peek(2); len([]rune(two)) == 2 {
			if kind, ok := operators2[two]; ok {
				l.advanceN(2)
				return Token{Kind: kind, Literal: two, Line: line, Column: column}, nil
			}
		}
		if kind, ok := operators1[ch]; ok {
			l.advance()
			return Token{Kind: kind, Literal: string(ch), Line: line, Column: column}, nil
		}

		if isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))) {
			return l.scanNumber(line, column), nil
		}

		if isIdentStart(ch) {
			return l.scanIdentOrKeyword(line, column), nil
		}

		return Token{}, &LexError{Kind: InvalidCharacter, Line: line, Column: column, Char: ch}
	}
	return Token{Kind: TokenEOF, Line: l.line, Column: l.column}, nil
}

// Tokenize drains the lexer into a slice ending with the EOF token. On a
// lexical error it returns the tokens produced so far along with the error.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) skipBlockComment(line, column int) error {
	l.advanceN(2)
	for {
		if l.buf.EOF() {
			return &LexError{Kind: UnterminatedBlockComment, Line: line, Column: column}
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			return nil
		}
		l.advance()
	}
}

// scanString accepts single- or double-quoted strings with no literal
// newline inside. A backslash escapes the following character
// unconditionally; the escape is recognized, not interpreted.
func (l *Lexer) scanString(line, column int) (Token, error) {
	var sb strings.Builder
	quote := l.advance()
	sb.WriteRune(quote)
	for {
		ch := l.peek()
		if ch == 0 || ch == '\n' {
			return Token{}, &LexError{Kind: UnterminatedString, Line: line, Column: column}
		}
		if ch == '\\' {
			sb.WriteRune(l.advance())
			esc := l.advance()
			if esc == 0 {
				return Token{}, &LexError{Kind: UnterminatedString, Line: line, Column: column}
			}
			sb.WriteRune(esc)
			continue
		}
		sb.WriteRune(l.advance())
		if ch == quote {
			return Token{Kind: TokenString, Literal: sb.String(), Line: line, Column: column}, nil
		}
	}
}

// scanNumber matches integers, decimals (including "3." and ".5") and
// scientific notation. The exponent is only consumed when a digit run
// follows it, so "1e" lexes as NUMBER "1" and identifier "e".
func (l *Lexer) scanNumber(line, column int) Token {
	var sb strings.Builder
	for isDigit(l.peek()) {
		sb.WriteRune(l.advance())
	}
	if l.peek() == '.' {
		sb.WriteRune(l.advance())
		for isDigit(l.peek()) {
			sb.WriteRune(l.advance())
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		after := 1
		if l.peekN(1) == '+' || l.peekN(1) == '-' {
			after = 2
		}
		if isDigit(l.peekN(after)) {
			for i := 0; i < after; i++ {
				sb.WriteRune(l.advance())
			}
			for isDigit(l.peek()) {
				sb.WriteRune(l.advance())
			}
		}
	}
	return Token{Kind: TokenNumber, Literal: sb.String(), Line: line, Column: column}
}

func (l *Lexer) scanIdentOrKeyword(line, column int) Token {
	var sb strings.Builder
	for isIdentPart(l.peek()) {
		sb.WriteRune(l.advance())
	}
	literal := sb.String()
	return Token{Kind: LookupKeyword(literal), Literal: literal, Line: line, Column: column}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
