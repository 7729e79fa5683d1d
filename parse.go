package calc

import (
	"sort"
	"unicode/utf8"
)

// Expr = num | name | Neg | Plus | Add | Sub | Mul | Div | Pow | Terms | '(' Expr ')'
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr
// Terms = Expr Expr, where the second Expr starts with num, name, or '('

// Expr is a parsed expression that can be evaluated with a constant table.
// An Expr is never modified after parsing.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the sorted list of names used in the expression.
	names []string
}

// parser walks a token sequence.
type parser struct {
	toks []Token
	// k is the index of the next token.
	k int
	// end is the EOF token returned once toks is exhausted.
	end Token
}

// Parse parses an expression so it can be evaluated.
func Parse(src string) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := parser{
		toks: toks,
		end:  Token{Kind: tokenEOF, Pos: utf8.RuneCountInString(src) + 1},
	}
	return p.parse()
}

// ParseTokens parses an expression from a token sequence produced by
// Tokenize.
func ParseTokens(toks []Token) (*Expr, error) {
	p := parser{toks: toks, end: Token{Kind: tokenEOF, Pos: 1}}
	if len(toks) > 0 {
		last := toks[len(toks)-1]
		p.end.Pos = last.Pos + utf8.RuneCountInString(last.Text)
	}
	return p.parse()
}

func (p *parser) parse() (*Expr, error) {
	n, err := p.parseterm(exprprec)
	if err != nil {
		return nil, err
	}
	if tok := p.next(); tok.Kind != tokenEOF {
		return nil, &TrailingTokenError{Col: tok.Pos, Text: tok.Text}
	}
	m := make(map[string]bool)
	n.names(m)
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(m)),
	}
	for k := range m {
		ex.names = append(ex.names, k)
	}
	sort.Strings(ex.names)
	return &ex, nil
}

func (p *parser) peek() Token {
	if p.k < len(p.toks) {
		return p.toks[p.k]
	}
	return p.end
}

func (p *parser) next() Token {
	tok := p.peek()
	if p.k < len(p.toks) {
		p.k++
	}
	return tok
}

// parseterm parses operands joined by operators more binding than until. It
// stops without consuming at a close bracket, the end of the input, or an
// operator that binds no tighter than until.
func (p *parser) parseterm(until operator) (*node, error) {
	n, err := p.parselhs(until)
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		switch tok.Kind {
		case TokenOp:
			prec := binop(tok.Text)
			if prec.op == nodeNone {
				return nil, &UnexpectedTokenError{Col: tok.Pos, Expected: "binary operator", Found: tok.Text}
			}
			if !prec.moreBinding(until) {
				return n, nil
			}
			p.next()
			rhs, err := p.parseterm(prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, pos: tok.Pos, left: n, right: rhs}
		case TokenNum, TokenIdent, TokenOpen:
			// (parsed) x -> (parsed) * (x)
			// (parsed) (expr) -> (parsed) * (expr)
			// a^(parsed) x -> (a^(parsed)) * (x)
			if !termprec.moreBinding(until) {
				return n, nil
			}
			rhs, err := p.parseterm(termprec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeMul, pos: tok.Pos, implicit: true, left: n, right: rhs}
		default:
			// End of expression.
			return n, nil
		}
	}
}

// parselhs parses the first component of a term: a number, a name, a
// bracketed expression, or a unary operator applied to a term.
func (p *parser) parselhs(until operator) (*node, error) {
	tok := p.next()
	switch tok.Kind {
	case TokenNum:
		return &node{kind: nodeNum, num: tok.Num, name: tok.Text, pos: tok.Pos}, nil
	case TokenIdent:
		return &node{kind: nodeName, name: tok.Text, pos: tok.Pos}, nil
	case TokenOp:
		prec := unop(tok.Text)
		if prec.op == nodeNone {
			return nil, &UnexpectedTokenError{Col: tok.Pos, Expected: operand, Found: tok.Text}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := p.parseterm(prec)
		if err != nil {
			return nil, err
		}
		return &node{kind: prec.op, pos: tok.Pos, left: rhs}, nil
	case TokenOpen:
		n, err := p.parseterm(exprprec)
		if err != nil {
			return nil, err
		}
		if end := p.next(); end.Kind != TokenClose {
			// parseterm only stops early on a close bracket, so anything
			// else is the end of the input.
			return nil, &BracketError{Col: tok.Pos}
		}
		return n, nil
	case tokenEOF:
		return nil, &EndOfInputError{Col: tok.Pos, Expected: operand}
	default:
		return nil, &UnexpectedTokenError{Col: tok.Pos, Expected: operand, Found: tok.Text}
	}
}

// operand describes the tokens that can start a term.
const operand = "number, name, or ("

// Names returns the sorted names of the constants the expression uses.
func (e *Expr) Names() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the parsed expression with every
// term parenthesized. The result parses to the same expression.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodeNop}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

var (
	// termprec is the precedence of implicit multiplication. It matches *
	// so that adjacent terms group left to right with * and /.
	termprec = operator{5, false, nodeMul}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true, nodeNone}
)
