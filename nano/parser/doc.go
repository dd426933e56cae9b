// Package parser implements the NanoCalc front-end: a maximal-munch lexer
// and a single-lookahead recursive-descent parser.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│ InputBuffer │────▶│   Lexer     │────▶│   Parser    │
//	│  (runes)    │     │  (tokens)   │     │   (AST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// The InputBuffer owns the source text and a forward-only cursor. The Lexer
// pulls runes from it and classifies one token per NextToken call, tracking
// 1-based line/column positions through whitespace, comments and multi-line
// tokens. The Parser pulls tokens one at a time (LL(1), no backtracking) and
// builds the Expr/Stmt tree bottom-up.
//
// Both state machines fail fast: the first lexical or syntactic error is
// returned as a *LexError or *SyntaxError and the instance must not be used
// again. Use Parse for the whole pipeline:
//
//	prog, err := parser.Parse(src)
//	if err != nil {
//		fmt.Println(err) // "Erro léxico na linha 3, coluna 7: ..."
//	}
package parser
