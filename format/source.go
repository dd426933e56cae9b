package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/nanocalc/nano/parser"
)

// SourceEncoder prints the syntax tree back as NanoCalc source with
// canonical spacing and four-space indentation. Parentheses are inserted
// only where precedence requires them, so re-parsing the output yields the
// same tree shape.
type SourceEncoder struct {
	w    io.Writer
	prog *parser.Program
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(prog *parser.Program) error {
	e.prog = prog
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SourceEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, stmt := range e.prog.Stmts {
		writeStmt(&sb, stmt, 0)
	}
	return []byte(sb.String()), nil
}

const indentStr = "    "

func writeStmt(sb *strings.Builder, s parser.Stmt, indent int) {
	prefix := strings.Repeat(indentStr, indent)
	switch s := s.(type) {
	case *parser.LetStmt:
		fmt.Fprintf(sb, "%slet %s = %s\n", prefix, s.Name, exprText(s.Value, 0))
	case *parser.FnDecl:
		fmt.Fprintf(sb, "%sfn %s(%s) ", prefix, s.Name, strings.Join(s.Params, ", "))
		writeBlock(sb, s.Body, indent)
		sb.WriteString("\n")
	case *parser.IfStmt:
		fmt.Fprintf(sb, "%sif (%s) ", prefix, exprText(s.Cond, 0))
		writeBlock(sb, s.Then, indent)
		if s.Else != nil {
			sb.WriteString(" else ")
			writeBlock(sb, s.Else, indent)
		}
		sb.WriteString("\n")
	case *parser.WhileStmt:
		fmt.Fprintf(sb, "%swhile (%s) ", prefix, exprText(s.Cond, 0))
		writeBlock(sb, s.Body, indent)
		sb.WriteString("\n")
	case *parser.ForStmt:
		fmt.Fprintf(sb, "%sfor (%s; %s; %s) ", prefix, forInitText(s.Init), exprText(s.Cond, 0), exprText(s.Post, 0))
		writeBlock(sb, s.Body, indent)
		sb.WriteString("\n")
	case *parser.AssignStmt:
		fmt.Fprintf(sb, "%s%s = %s\n", prefix, s.Name, exprText(s.Value, 0))
	case *parser.CallStmt:
		fmt.Fprintf(sb, "%s%s\n", prefix, exprText(s.Call, 0))
	case *parser.ExprStmt:
		fmt.Fprintf(sb, "%s%s\n", prefix, exprText(s.X, 0))
	case *parser.Block:
		sb.WriteString(prefix)
		writeBlock(sb, s, indent)
		sb.WriteString("\n")
	}
}

func writeBlock(sb *strings.Builder, b *parser.Block, indent int) {
	if len(b.Stmts) == 0 {
		sb.WriteString("{}")
		return
	}
	sb.WriteString("{\n")
	for _, stmt := range b.Stmts {
		writeStmt(sb, stmt, indent+1)
	}
	sb.WriteString(strings.Repeat(indentStr, indent))
	sb.WriteString("}")
}

// forInitText renders the init clause inline, without a trailing newline.
func forInitText(s parser.Stmt) string {
	switch s := s.(type) {
	case nil:
		return ""
	case *parser.LetStmt:
		return fmt.Sprintf("let %s = %s", s.Name, exprText(s.Value, 0))
	case *parser.AssignStmt:
		return fmt.Sprintf("%s = %s", s.Name, exprText(s.Value, 0))
	case *parser.ExprStmt:
		return exprText(s.X, 0)
	default:
		return ""
	}
}

var opText = map[parser.TokenKind]string{
	parser.TokenOr:       "||",
	parser.TokenAnd:      "&&",
	parser.TokenEQ:       "==",
	parser.TokenNEQ:      "!=",
	parser.TokenLT:       "<",
	parser.TokenLE:       "<=",
	parser.TokenGT:       ">",
	parser.TokenGE:       ">=",
	parser.TokenPlus:     "+",
	parser.TokenMinus:    "-",
	parser.TokenMultiply: "*",
	parser.TokenDivide:   "/",
	parser.TokenMod:      "%",
	parser.TokenNot:      "!",
}

var opPrec = map[parser.TokenKind]int{
	parser.TokenOr:       1,
	parser.TokenAnd:      2,
	parser.TokenEQ:       3,
	parser.TokenNEQ:      3,
	parser.TokenLT:       4,
	parser.TokenLE:       4,
	parser.TokenGT:       4,
	parser.TokenGE:       4,
	parser.TokenPlus:     5,
	parser.TokenMinus:    5,
	parser.TokenMultiply: 6,
	parser.TokenDivide:   6,
	parser.TokenMod:      6,
}

const unaryPrec = 7

// exprText renders e, parenthesizing when its precedence is below the
// context's. Binary operators are left-associative, so the right operand is
// rendered one level tighter.
func exprText(e parser.Expr, contextPrec int) string {
	switch e := e.(type) {
	case *parser.BinaryExpr:
		prec := opPrec[e.Op]
		s := exprText(e.Left, prec) + " " + opText[e.Op] + " " + exprText(e.Right, prec+1)
		if prec < contextPrec {
			return "(" + s + ")"
		}
		return s
	case *parser.UnaryExpr:
		return opText[e.Op] + exprText(e.Operand, unaryPrec)
	case *parser.NumberLit:
		return e.Value
	case *parser.StringLit:
		return e.Value
	case *parser.BoolLit:
		if e.Value {
			return "true"
		}
		return "false"
	case *parser.Identifier:
		return e.Name
	case *parser.CallExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = exprText(arg, 0)
		}
		return e.Callee + "(" + strings.Join(args, ", ") + ")"
	default:
		return ""
	}
}
