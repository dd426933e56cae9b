package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/nanocalc/nano/parser"
)

// ASTJSONEncoder writes the syntax tree as indented JSON.
type ASTJSONEncoder struct {
	w    io.Writer
	prog *parser.Program
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(prog *parser.Program) error {
	e.prog = prog
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *ASTJSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(programToJSON(e.prog), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Name     string         `json:"name,omitempty"`
	Value    string         `json:"value,omitempty"`
	Op       string         `json:"op,omitempty"`
	Params   []string       `json:"params,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

func programToJSON(p *parser.Program) *astJSONNode {
	n := &astJSONNode{Kind: "Program"}
	for _, stmt := range p.Stmts {
		n.Children = append(n.Children, stmtToJSON(stmt))
	}
	return n
}

func blockToJSON(b *parser.Block) *astJSONNode {
	n := &astJSONNode{Kind: "Block"}
	for _, stmt := range b.Stmts {
		n.Children = append(n.Children, stmtToJSON(stmt))
	}
	return n
}

func stmtToJSON(s parser.Stmt) *astJSONNode {
	switch s := s.(type) {
	case *parser.LetStmt:
		return &astJSONNode{Kind: "Let", Name: s.Name, Children: []*astJSONNode{exprToJSON(s.Value)}}
	case *parser.FnDecl:
		return &astJSONNode{Kind: "Fn", Name: s.Name, Params: s.Params, Children: []*astJSONNode{blockToJSON(s.Body)}}
	case *parser.IfStmt:
		n := &astJSONNode{Kind: "If", Children: []*astJSONNode{exprToJSON(s.Cond), blockToJSON(s.Then)}}
		if s.Else != nil {
			n.Children = append(n.Children, blockToJSON(s.Else))
		}
		return n
	case *parser.WhileStmt:
		return &astJSONNode{Kind: "While", Children: []*astJSONNode{exprToJSON(s.Cond), blockToJSON(s.Body)}}
	case *parser.ForStmt:
		n := &astJSONNode{Kind: "For"}
		if s.Init != nil {
			n.Children = append(n.Children, stmtToJSON(s.Init))
		}
		n.Children = append(n.Children, exprToJSON(s.Cond), exprToJSON(s.Post), blockToJSON(s.Body))
		return n
	case *parser.AssignStmt:
		return &astJSONNode{Kind: "Assign", Name: s.Name, Children: []*astJSONNode{exprToJSON(s.Value)}}
	case *parser.CallStmt:
		return &astJSONNode{Kind: "CallStmt", Children: []*astJSONNode{exprToJSON(s.Call)}}
	case *parser.ExprStmt:
		return &astJSONNode{Kind: "ExprStmt", Children: []*astJSONNode{exprToJSON(s.X)}}
	case *parser.Block:
		return blockToJSON(s)
	default:
		return &astJSONNode{Kind: fmt.Sprintf("%T", s)}
	}
}

func exprToJSON(e parser.Expr) *astJSONNode {
	switch e := e.(type) {
	case *parser.BinaryExpr:
		return &astJSONNode{Kind: "Binary", Op: e.Op.String(), Children: []*astJSONNode{exprToJSON(e.Left), exprToJSON(e.Right)}}
	case *parser.UnaryExpr:
		return &astJSONNode{Kind: "Unary", Op: e.Op.String(), Children: []*astJSONNode{exprToJSON(e.Operand)}}
	case *parser.NumberLit:
		return &astJSONNode{Kind: "Number", Value: e.Value}
	case *parser.StringLit:
		return &astJSONNode{Kind: "String", Value: e.Value}
	case *parser.BoolLit:
		if e.Value {
			return &astJSONNode{Kind: "Bool", Value: "true"}
		}
		return &astJSONNode{Kind: "Bool", Value: "false"}
	case *parser.Identifier:
		return &astJSONNode{Kind: "Id", Name: e.Name}
	case *parser.CallExpr:
		n := &astJSONNode{Kind: "Call", Name: e.Callee}
		for _, arg := range e.Args {
			n.Children = append(n.Children, exprToJSON(arg))
		}
		return n
	default:
		return &astJSONNode{Kind: fmt.Sprintf("%T", e)}
	}
}
