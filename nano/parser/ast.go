package parser

// Expr is the expression side of the syntax tree. Nodes are owned by their
// parent and built bottom-up during parsing.
type Expr interface {
	exprNode()
}

type BinaryExpr struct {
	Op    TokenKind
	Left  Expr
	Right Expr
}

type UnaryExpr struct {
	Op      TokenKind
	Operand Expr
}

// NumberLit keeps the exact matched text; NanoCalc never evaluates it.
type NumberLit struct {
	Value string
}

// StringLit keeps the literal as written, quotes and escapes included.
type StringLit struct {
	Value string
}

type BoolLit struct {
	Value bool
}

type Identifier struct {
	Name string
}

type CallExpr struct {
	Callee string
	Args   []Expr
}

func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode()  {}
func (*NumberLit) exprNode()  {}
func (*StringLit) exprNode()  {}
func (*BoolLit) exprNode()    {}
func (*Identifier) exprNode() {}
func (*CallExpr) exprNode()   {}

// Stmt is the statement side of the syntax tree.
type Stmt interface {
	stmtNode()
}

// Program is the root node returned by a successful parse.
type Program struct {
	Stmts []Stmt
}

type LetStmt struct {
	Name  string
	Value Expr
}

type FnDecl struct {
	Name   string
	Params []string
	Body   *Block
}

type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block // nil when there is no else branch
}

type WhileStmt struct {
	Cond Expr
	Body *Block
}

// ForStmt covers "for" "(" forInit ";" expr ";" expr ")" block. Init is nil
// for the empty forInit branch.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Post Expr
	Body *Block
}

type AssignStmt struct {
	Name  string
	Value Expr
}

type CallStmt struct {
	Call *CallExpr
}

type ExprStmt struct {
	X Expr
}

type Block struct {
	Stmts []Stmt
}

func (*LetStmt) stmtNode()    {}
func (*FnDecl) stmtNode()     {}
func (*IfStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()  {}
func (*ForStmt) stmtNode()    {}
func (*AssignStmt) stmtNode() {}
func (*CallStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()   {}
func (*Block) stmtNode()      {}
