package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/nanocalc/nano/parser"
)

// TokenTableEncoder writes the lex-mode table: a header, a rule and one
// rendered token per line.
type TokenTableEncoder struct {
	w      io.Writer
	tokens []parser.Token
}

func NewTokenTableEncoder(w io.Writer) *TokenTableEncoder {
	return &TokenTableEncoder{w: w}
}

func (e *TokenTableEncoder) Encode(tokens []parser.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

// Header writes only the table header, so a caller streaming tokens one at
// a time can still produce the full table.
func (e *TokenTableEncoder) Header() error {
	_, err := io.WriteString(e.w, tokenTableHeader())
	return err
}

// Row writes a single token line.
func (e *TokenTableEncoder) Row(tok parser.Token) error {
	_, err := fmt.Fprintln(e.w, tok)
	return err
}

func (e *TokenTableEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(tokenTableHeader())
	for _, tok := range e.tokens {
		fmt.Fprintln(&sb, tok)
	}
	return []byte(sb.String()), nil
}

func tokenTableHeader() string {
	return fmt.Sprintf("%-12s %-20s @ (line,col)\n%s\n", "TYPE", "VALUE", strings.Repeat("-", 60))
}
