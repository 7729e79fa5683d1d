package calc

import (
	"math"
	"strconv"
)

// Eval evaluates the expression using c to resolve names. If c is nil, the
// default constants are used. Division by zero and powers outside the real
// domain give infinities or NaN rather than errors; the only evaluation error
// is a name missing from c.
func (e *Expr) Eval(c *Constants) (float64, error) {
	return e.n.eval(c)
}

// eval computes the node's value. Left operands are always evaluated before
// right operands.
func (n *node) eval(c *Constants) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeName:
		v, ok := c.Lookup(n.name)
		if !ok {
			return 0, &NameError{Name: n.name, Col: n.pos}
		}
		return v, nil
	case nodeNeg:
		v, err := n.left.eval(c)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeNop:
		return n.left.eval(c)
	case nodeAdd:
		l, r, err := n.operands(c)
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case nodeSub:
		l, r, err := n.operands(c)
		if err != nil {
			return 0, err
		}
		return l - r, nil
	case nodeMul:
		l, r, err := n.operands(c)
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case nodeDiv:
		l, r, err := n.operands(c)
		if err != nil {
			return 0, err
		}
		return l / r, nil
	case nodePow:
		l, r, err := n.operands(c)
		if err != nil {
			return 0, err
		}
		return math.Pow(l, r), nil
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

func (n *node) operands(c *Constants) (l, r float64, err error) {
	if l, err = n.left.eval(c); err != nil {
		return 0, 0, err
	}
	if r, err = n.right.eval(c); err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// Evaluate is a shortcut to parse an expression and return its value, using c
// to resolve names. If c is nil, the default constants are used. The error is
// the first one encountered, from lexing, parsing, or evaluation.
func Evaluate(src string, c *Constants) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(c)
}

// NameError is an error from a lookup for a name that is missing from the
// constant table. It implements InputError.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Col is the position of the name in the input.
	Col int
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown constant "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}
