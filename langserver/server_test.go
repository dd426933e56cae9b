package langserver

import (
	"strings"
	"testing"

	"github.com/dhamidi/nanocalc/nano/parser"
)

func TestToDiagnostic(t *testing.T) {
	tests := []struct {
		src       string
		line      uint32 // 0-based
		character uint32
		contains  string
	}{
		{"let x = 'oops", 0, 8, "string não terminada"},
		{"if (x { }", 0, 6, "esperado RPAREN"},
		{"let a = 1\nlet = 2", 1, 4, "esperado ID"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := parser.Parse(tt.src)
			if err == nil {
				t.Fatal("expected a parse error")
			}
			diag := toDiagnostic(err)
			if diag.Range.Start.Line != tt.line || diag.Range.Start.Character != tt.character {
				t.Errorf("start = (%d,%d), want (%d,%d)",
					diag.Range.Start.Line, diag.Range.Start.Character, tt.line, tt.character)
			}
			if !strings.Contains(diag.Message, tt.contains) {
				t.Errorf("message = %q, want it to contain %q", diag.Message, tt.contains)
			}
			if diag.Source == nil || *diag.Source != "nanocalc" {
				t.Errorf("source = %v, want nanocalc", diag.Source)
			}
		})
	}
}
