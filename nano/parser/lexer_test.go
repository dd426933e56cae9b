package parser

import (
	"errors"
	"testing"
)

func lex(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := NewLexer(NewInputBuffer(input)).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", input, err)
	}
	return tokens
}

func TestLexerKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"let", []TokenKind{TokenLet, TokenEOF}},
		{"let x = 1;", []TokenKind{TokenLet, TokenIdent, TokenAssign, TokenNumber, TokenSemicolon, TokenEOF}},
		{"+ - * / ^ %", []TokenKind{TokenPlus, TokenMinus, TokenMultiply, TokenDivide, TokenPow, TokenMod, TokenEOF}},
		{"== != < <= > >=", []TokenKind{TokenEQ, TokenNEQ, TokenLT, TokenLE, TokenGT, TokenGE, TokenEOF}},
		{"&& || !", []TokenKind{TokenAnd, TokenOr, TokenNot, TokenEOF}},
		{"( ) [ ] { } , : ;", []TokenKind{TokenLParen, TokenRParen, TokenLBracket, TokenRBracket, TokenLBrace, TokenRBrace, TokenComma, TokenColon, TokenSemicolon, TokenEOF}},
		{"\"hello\"", []TokenKind{TokenString, TokenEOF}},
		{"'hello'", []TokenKind{TokenString, TokenEOF}},
		{"# comment\nx", []TokenKind{TokenIdent, TokenEOF}},
		{"/* block */ x", []TokenKind{TokenIdent, TokenEOF}},
		{"fn f(a, b) { return }", []TokenKind{TokenFn, TokenIdent, TokenLParen, TokenIdent, TokenComma, TokenIdent, TokenRParen, TokenLBrace, TokenReturn, TokenRBrace, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lex(t, tt.input)
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tt.expected))
			}
			for i := range tokens {
				if tokens[i].Kind != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, tokens[i].Kind, tt.expected[i])
				}
			}
		})
	}
}

func TestLexerBlankInputs(t *testing.T) {
	// Whitespace and comments alone produce exactly [EOF]
	tests := []string{
		"",
		"   \t\r\n\f  ",
		"# only a comment",
		"# one\n# two\n",
		"/* block */",
		"/* multi\nline\nblock */",
		" \n # mixed \n /* and */ \t",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tokens := lex(t, input)
			if len(tokens) != 1 || tokens[0].Kind != TokenEOF {
				t.Errorf("got %v, want exactly [EOF]", tokens)
			}
		})
	}
}

func TestLexerMaximalMunch(t *testing.T) {
	tests := []struct {
		input    string
		kind     TokenKind
		literal  string
		trailing TokenKind
	}{
		{"==", TokenEQ, "==", TokenEOF},
		{"<=", TokenLE, "<=", TokenEOF},
		{"==1", TokenEQ, "==", TokenNumber},
		{"<=x", TokenLE, "<=", TokenIdent},
		{"=<", TokenAssign, "=", TokenLT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lex(t, tt.input)
			if tokens[0].Kind != tt.kind || tokens[0].Literal != tt.literal {
				t.Errorf("first token = %v %q, want %v %q", tokens[0].Kind, tokens[0].Literal, tt.kind, tt.literal)
			}
			if tokens[1].Kind != tt.trailing {
				t.Errorf("second token = %v, want %v", tokens[1].Kind, tt.trailing)
			}
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"3", "3"},
		{"42", "42"},
		{"3.14", "3.14"},
		{"3.", "3."},
		{".5", ".5"},
		{"1e10", "1e10"},
		{"2.5E-3", "2.5E-3"},
		{"1E+2", "1E+2"},
		{".5e2", ".5e2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lex(t, tt.input)
			if len(tokens) != 2 {
				t.Fatalf("got %d tokens, want NUMBER + EOF", len(tokens))
			}
			if tokens[0].Kind != TokenNumber || tokens[0].Literal != tt.literal {
				t.Errorf("got %v %q, want NUMBER %q", tokens[0].Kind, tokens[0].Literal, tt.literal)
			}
		})
	}
}

func TestLexerNumberBoundaries(t *testing.T) {
	// "1e" must not swallow the exponent marker without digits
	tokens := lex(t, "1e")
	if tokens[0].Kind != TokenNumber || tokens[0].Literal != "1" {
		t.Errorf("first token = %v %q, want NUMBER \"1\"", tokens[0].Kind, tokens[0].Literal)
	}
	if tokens[1].Kind != TokenIdent || tokens[1].Literal != "e" {
		t.Errorf("second token = %v %q, want ID \"e\"", tokens[1].Kind, tokens[1].Literal)
	}

	// The exponent digit run cannot cross a dot: "1e+2.5" is two numbers
	tokens = lex(t, "1e+2.5")
	if tokens[0].Kind != TokenNumber || tokens[0].Literal != "1e+2" {
		t.Errorf("first token = %v %q, want NUMBER \"1e+2\"", tokens[0].Kind, tokens[0].Literal)
	}
	if tokens[1].Kind != TokenNumber || tokens[1].Literal != ".5" {
		t.Errorf("second token = %v %q, want NUMBER \".5\"", tokens[1].Kind, tokens[1].Literal)
	}
}

func TestLexerKeywordVsIdentifier(t *testing.T) {
	tokens := lex(t, "let letx")
	if tokens[0].Kind != TokenLet {
		t.Errorf("token 0 = %v, want KW_LET", tokens[0].Kind)
	}
	if tokens[1].Kind != TokenIdent || tokens[1].Literal != "letx" {
		t.Errorf("token 1 = %v %q, want ID \"letx\"", tokens[1].Kind, tokens[1].Literal)
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"abc"`, `"abc"`},
		{`'abc'`, `'abc'`},
		{`"say 'hi'"`, `"say 'hi'"`},
		{`'say "hi"'`, `'say "hi"'`},
		{`"a\"b"`, `"a\"b"`},
		{`"a\nb"`, `"a\nb"`},
		{`"\\"`, `"\\"`},
		{`""`, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lex(t, tt.input)
			if tokens[0].Kind != TokenString || tokens[0].Literal != tt.literal {
				t.Errorf("got %v %q, want STRING %q", tokens[0].Kind, tokens[0].Literal, tt.literal)
			}
		})
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	tests := []struct {
		input  string
		line   int
		column int
	}{
		{`"abc`, 1, 1},
		{`'abc`, 1, 1},
		{"\"ab\nc\"", 1, 1},
		{"x = \"oops", 1, 5},
		{"let a = 1\nlet b = 'нет", 2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewLexer(NewInputBuffer(tt.input)).Tokenize()
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("err = %v, want *LexError", err)
			}
			if lexErr.Kind != UnterminatedString {
				t.Errorf("Kind = %v, want UnterminatedString", lexErr.Kind)
			}
			if lexErr.Line != tt.line || lexErr.Column != tt.column {
				t.Errorf("position = (%d,%d), want (%d,%d)", lexErr.Line, lexErr.Column, tt.line, tt.column)
			}
		})
	}
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	_, err := NewLexer(NewInputBuffer("x\n  /* never closed")).Tokenize()
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("err = %v, want *LexError", err)
	}
	if lexErr.Kind != UnterminatedBlockComment {
		t.Errorf("Kind = %v, want UnterminatedBlockComment", lexErr.Kind)
	}
	if lexErr.Line != 2 || lexErr.Column != 3 {
		t.Errorf("position = (%d,%d), want (2,3)", lexErr.Line, lexErr.Column)
	}
}

func TestLexerInvalidCharacter(t *testing.T) {
	_, err := NewLexer(NewInputBuffer("let x = 1 @ 2")).Tokenize()
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("err = %v, want *LexError", err)
	}
	if lexErr.Kind != InvalidCharacter || lexErr.Char != '@' {
		t.Errorf("got kind %v char %q, want InvalidCharacter '@'", lexErr.Kind, lexErr.Char)
	}
	if lexErr.Line != 1 || lexErr.Column != 11 {
		t.Errorf("position = (%d,%d), want (1,11)", lexErr.Line, lexErr.Column)
	}
	want := "Erro léxico na linha 1, coluna 11: caractere inválido '@'"
	if got := lexErr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestLexerPositions(t *testing.T) {
	input := "let x = 1\nx = x + 2"
	tokens := lex(t, input)

	positions := []struct {
		line, column int
	}{
		{1, 1},  // let
		{1, 5},  // x
		{1, 7},  // =
		{1, 9},  // 1
		{2, 1},  // x
		{2, 3},  // =
		{2, 5},  // x
		{2, 7},  // +
		{2, 9},  // 2
		{2, 10}, // EOF
	}

	if len(tokens) != len(positions) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(positions))
	}
	for i, want := range positions {
		if tokens[i].Line != want.line || tokens[i].Column != want.column {
			t.Errorf("token %d (%s): position = (%d,%d), want (%d,%d)",
				i, tokens[i].Literal, tokens[i].Line, tokens[i].Column, want.line, want.column)
		}
	}
}

func TestLexerPositionsAcrossBlockComment(t *testing.T) {
	// Column resets after each embedded newline; the first token after the
	// comment reports the post-comment position.
	input := "a /* first\nsecond\nthird */ b"
	tokens := lex(t, input)

	if tokens[0].Literal != "a" || tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Errorf("token a at (%d,%d), want (1,1)", tokens[0].Line, tokens[0].Column)
	}
	if tokens[1].Literal != "b" || tokens[1].Line != 3 || tokens[1].Column != 10 {
		t.Errorf("token b at (%d,%d), want (3,10)", tokens[1].Line, tokens[1].Column)
	}
}

func TestLexerSingleEOF(t *testing.T) {
	lexer := NewLexer(NewInputBuffer("x"))
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	eofs := 0
	for _, tok := range tokens {
		if tok.Kind == TokenEOF {
			eofs++
		}
	}
	if eofs != 1 || tokens[len(tokens)-1].Kind != TokenEOF {
		t.Errorf("want exactly one EOF as the terminal token, got %v", tokens)
	}
}
