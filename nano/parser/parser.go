package parser

// Parser is a recursive-descent parser for the LL(1) NanoCalc grammar. It
// holds exactly one lookahead token, pulled from the lexer on demand, and
// stops at the first lexical or syntactic error. Like the lexer it is
// single-use.
type Parser struct {
	lexer     *Lexer
	lookahead Token
}

// NewParser primes the lookahead, so constructing a parser can already
// surface a lexical error.
func NewParser(lexer *Lexer) (*Parser, error) {
	tok, err := lexer.NextToken()
	if err != nil {
		return nil, err
	}
	return &Parser{lexer: lexer, lookahead: tok}, nil
}

// Parse runs a fresh buffer/lexer/parser pipeline over src and returns the
// program root.
func Parse(src string) (*Program, error) {
	p, err := NewParser(NewLexer(NewInputBuffer(src)))
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

func (p *Parser) eat(kind TokenKind) (Token, error) {
	if p.lookahead.Kind != kind {
		return Token{}, &SyntaxError{
			Kind:     UnexpectedToken,
			Expected: kind,
			Found:    p.lookahead.Kind,
			Line:     p.lookahead.Line,
			Column:   p.lookahead.Column,
		}
	}
	cur := p.lookahead
	next, err := p.lexer.NextToken()
	if err != nil {
		return Token{}, err
	}
	p.lookahead = next
	return cur, nil
}

func (p *Parser) accept(kind TokenKind) (bool, error) {
	if p.lookahead.Kind != kind {
		return false, nil
	}
	if _, err := p.eat(kind); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Parser) check(kind TokenKind) bool {
	return p.lookahead.Kind == kind
}

// program → { statement }
func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{}
	for !p.check(TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	switch p.lookahead.Kind {
	case TokenLet:
		return p.parseLet()
	case TokenFn:
		return p.parseFn()
	case TokenIf:
		return p.parseIf()
	case TokenWhile:
		return p.parseWhile()
	case TokenFor:
		return p.parseFor()
	case TokenIdent:
		return p.parseIdStatement()
	}
	return p.parseExprStmt()
}

// letDecl → "let" ID "=" expr [";"]
func (p *Parser) parseLet() (Stmt, error) {
	if _, err := p.eat(TokenLet); err != nil {
		return nil, err
	}
	name, err := p.eat(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenAssign); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.accept(TokenSemicolon); err != nil {
		return nil, err
	}
	return &LetStmt{Name: name.Literal, Value: value}, nil
}

// fnDecl → "fn" ID "(" [ID ("," ID)*] ")" block
func (p *Parser) parseFn() (Stmt, error) {
	if _, err := p.eat(TokenFn); err != nil {
		return nil, err
	}
	name, err := p.eat(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenLParen); err != nil {
		return nil, err
	}
	var params []string
	if p.check(TokenIdent) {
		param, err := p.eat(TokenIdent)
		if err != nil {
			return nil, err
		}
		params = append(params, param.Literal)
		for {
			ok, err := p.accept(TokenComma)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			param, err := p.eat(TokenIdent)
			if err != nil {
				return nil, err
			}
			params = append(params, param.Literal)
		}
	}
	if _, err := p.eat(TokenRParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &FnDecl{Name: name.Literal, Params: params, Body: body}, nil
}

// block → "{" { statement } "}"
// Reaching EOF before the closing brace is the parser's only explicit
// unbounded-loop guard.
func (p *Parser) parseBlock() (*Block, error) {
	if _, err := p.eat(TokenLBrace); err != nil {
		return nil, err
	}
	block := &Block{}
	for !p.check(TokenRBrace) {
		if p.check(TokenEOF) {
			return nil, &SyntaxError{
				Kind:   UnterminatedBlock,
				Found:  TokenEOF,
				Line:   p.lookahead.Line,
				Column: p.lookahead.Column,
			}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	if _, err := p.eat(TokenRBrace); err != nil {
		return nil, err
	}
	return block, nil
}

// ifStmt → "if" "(" expr ")" block ["else" block]
func (p *Parser) parseIf() (Stmt, error) {
	if _, err := p.eat(TokenIf); err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenLParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenRParen); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{Cond: cond, Then: then}
	hasElse, err := p.accept(TokenElse)
	if err != nil {
		return nil, err
	}
	if hasElse {
		stmt.Else, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// whileStmt → "while" "(" expr ")" block
func (p *Parser) parseWhile() (Stmt, error) {
	if _, err := p.eat(TokenWhile); err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenLParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenRParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// forStmt → "for" "(" forInit ";" expr ";" expr ")" block
func (p *Parser) parseFor() (Stmt, error) {
	if _, err := p.eat(TokenFor); err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenLParen); err != nil {
		return nil, err
	}
	init, err := p.parseForInit()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenSemicolon); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenSemicolon); err != nil {
		return nil, err
	}
	post, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(TokenRParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ForStmt{Init: init, Cond: cond, Post: post, Body: body}, nil
}

// forInit → "let" ID "=" expr | ID ["=" expr] | ε
// Returns nil for the empty branch; the semicolon stays with forStmt.
func (p *Parser) parseForInit() (Stmt, error) {
	switch p.lookahead.Kind {
	case TokenLet:
		if _, err := p.eat(TokenLet); err != nil {
			return nil, err
		}
		name, err := p.eat(TokenIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(TokenAssign); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &LetStmt{Name: name.Literal, Value: value}, nil
	case TokenIdent:
		name, err := p.eat(TokenIdent)
		if err != nil {
			return nil, err
		}
		assigned, err := p.accept(TokenAssign)
		if err != nil {
			return nil, err
		}
		if !assigned {
			return &ExprStmt{X: &Identifier{Name: name.Literal}}, nil
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Name: name.Literal, Value: value}, nil
	}
	return nil, nil
}

// idStatement → ID ("=" expr | callSuffix | ε) [";"]
// A bare identifier with neither "=" nor "(" is accepted as a no-op
// expression statement.
func (p *Parser) parseIdStatement() (Stmt, error) {
	name, err := p.eat(TokenIdent)
	if err != nil {
		return nil, err
	}
	assigned, err := p.accept(TokenAssign)
	if err != nil {
		return nil, err
	}
	if assigned {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.accept(TokenSemicolon); err != nil {
			return nil, err
		}
		return &AssignStmt{Name: name.Literal, Value: value}, nil
	}
	if p.check(TokenLParen) {
		args, err := p.parseCallSuffix()
		if err != nil {
			return nil, err
		}
		if _, err := p.accept(TokenSemicolon); err != nil {
			return nil, err
		}
		return &CallStmt{Call: &CallExpr{Callee: name.Literal, Args: args}}, nil
	}
	if _, err := p.accept(TokenSemicolon); err != nil {
		return nil, err
	}
	return &ExprStmt{X: &Identifier{Name: name.Literal}}, nil
}

// callSuffix → "(" [argList] ")"
func (p *Parser) parseCallSuffix() ([]Expr, error) {
	if _, err := p.eat(TokenLParen); err != nil {
		return nil, err
	}
	var args []Expr
	if !p.check(TokenRParen) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for {
			ok, err := p.accept(TokenComma)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	if _, err := p.eat(TokenRParen); err != nil {
		return nil, err
	}
	return args, nil
}

// exprStmt → expr [";"]
func (p *Parser) parseExprStmt() (Stmt, error) {
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.accept(TokenSemicolon); err != nil {
		return nil, err
	}
	return &ExprStmt{X: x}, nil
}

// Expressions, precedence low to high. Every binary level is
// left-associative and built iteratively.

func (p *Parser) parseExpr() (Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Expr, error) {
	node, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.check(TokenOr) {
		if _, err := p.eat(TokenOr); err != nil {
			return nil, err
		}
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Op: TokenOr, Left: node, Right: rhs}
	}
	return node, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	node, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.check(TokenAnd) {
		if _, err := p.eat(TokenAnd); err != nil {
			return nil, err
		}
		rhs, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Op: TokenAnd, Left: node, Right: rhs}
	}
	return node, nil
}

func (p *Parser) parseEquality() (Expr, error) {
	node, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.check(TokenEQ) || p.check(TokenNEQ) {
		op := p.lookahead.Kind
		if _, err := p.eat(op); err != nil {
			return nil, err
		}
		rhs, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Op: op, Left: node, Right: rhs}
	}
	return node, nil
}

func (p *Parser) parseComparison() (Expr, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.check(TokenLT) || p.check(TokenLE) || p.check(TokenGT) || p.check(TokenGE) {
		op := p.lookahead.Kind
		if _, err := p.eat(op); err != nil {
			return nil, err
		}
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Op: op, Left: node, Right: rhs}
	}
	return node, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.check(TokenPlus) || p.check(TokenMinus) {
		op := p.lookahead.Kind
		if _, err := p.eat(op); err != nil {
			return nil, err
		}
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Op: op, Left: node, Right: rhs}
	}
	return node, nil
}

func (p *Parser) parseFactor() (Expr, error) {
	node, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.check(TokenMultiply) || p.check(TokenDivide) || p.check(TokenMod) {
		op := p.lookahead.Kind
		if _, err := p.eat(op); err != nil {
			return nil, err
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Op: op, Left: node, Right: rhs}
	}
	return node, nil
}

// unary → ("!" | "-" | "+") unary | primary
// Right-recursive, so prefixes stack.
func (p *Parser) parseUnary() (Expr, error) {
	switch p.lookahead.Kind {
	case TokenNot, TokenMinus, TokenPlus:
		op := p.lookahead.Kind
		if _, err := p.eat(op); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Expr, error) {
	switch p.lookahead.Kind {
	case TokenNumber:
		tok, err := p.eat(TokenNumber)
		if err != nil {
			return nil, err
		}
		return &NumberLit{Value: tok.Literal}, nil
	case TokenString:
		tok, err := p.eat(TokenString)
		if err != nil {
			return nil, err
		}
		return &StringLit{Value: tok.Literal}, nil
	case TokenTrue, TokenFalse:
		tok, err := p.eat(p.lookahead.Kind)
		if err != nil {
			return nil, err
		}
		return &BoolLit{Value: tok.Kind == TokenTrue}, nil
	case TokenIdent:
		tok, err := p.eat(TokenIdent)
		if err != nil {
			return nil, err
		}
		if p.check(TokenLParen) {
			args, err := p.parseCallSuffix()
			if err != nil {
				return nil, err
			}
			return &CallExpr{Callee: tok.Literal, Args: args}, nil
		}
		return &Identifier{Name: tok.Literal}, nil
	case TokenLParen:
		if _, err := p.eat(TokenLParen); err != nil {
			return nil, err
		}
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(TokenRParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, &SyntaxError{
		Kind:   InvalidPrimary,
		Found:  p.lookahead.Kind,
		Line:   p.lookahead.Line,
		Column: p.lookahead.Column,
	}
}
