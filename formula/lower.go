package formula

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// lowerer turns participle rules into AST nodes.
type lowerer struct {
	source string
}

var compareOps = map[string]CompareOperator{
	"==": Eq, "!=": NotEq, "<": Lt, "<=": LtE, ">": Gt, ">=": GtE,
}

func (l *lowerer) comparison(r *comparisonRule) (Node, error) {
	left, err := l.sum(r.Head)
	if err != nil {
		return nil, err
	}
	if len(r.Tail) == 0 {
		return left, nil
	}
	cmp := &Compare{
		At:          left.Pos(),
		Left:        left,
		Ops:         make([]CompareOperator, 0, len(r.Tail)),
		Comparators: make([]Node, 0, len(r.Tail)),
	}
	for _, t := range r.Tail {
		operand, err := l.sum(t.Operand)
		if err != nil {
			return nil, err
		}
		cmp.Ops = append(cmp.Ops, compareOps[t.Op])
		cmp.Comparators = append(cmp.Comparators, operand)
	}
	return cmp, nil
}

func (l *lowerer) sum(r *sumRule) (Node, error) {
	node, err := l.term(r.Head)
	if err != nil {
		return nil, err
	}
	for _, t := range r.Tail {
		right, err := l.term(t.Operand)
		if err != nil {
			return nil, err
		}
		op := Add
		if t.Op == "-" {
			op = Sub
		}
		node = &BinaryOp{At: node.Pos(), Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (l *lowerer) term(r *termRule) (Node, error) {
	node, err := l.unary(r.Head)
	if err != nil {
		return nil, err
	}
	for _, t := range r.Tail {
		right, err := l.unary(t.Operand)
		if err != nil {
			return nil, err
		}
		op := Mul
		if t.Op == "/" {
			op = Div
		}
		node = &BinaryOp{At: node.Pos(), Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (l *lowerer) unary(r *unaryRule) (Node, error) {
	if r.Power != nil {
		return l.power(r.Power)
	}
	pos := locate(l.source, r.Pos)
	if r.Op != "-" {
		return nil, syntaxErrorAt(pos, "This syntax is not supported")
	}
	operand, err := l.unary(r.Operand)
	if err != nil {
		return nil, err
	}
	return &UnaryOp{At: pos, Op: Neg, Operand: operand}, nil
}

func (l *lowerer) power(r *powerRule) (Node, error) {
	base, err := l.atom(r.Base)
	if err != nil {
		return nil, err
	}
	if r.Exponent == nil {
		return base, nil
	}
	exp, err := l.unary(r.Exponent)
	if err != nil {
		return nil, err
	}
	return &BinaryOp{At: base.Pos(), Op: Pow, Left: base, Right: exp}, nil
}

func (l *lowerer) atom(r *atomRule) (Node, error) {
	pos := locate(l.source, r.Pos)
	switch {
	case r.Number != nil:
		v, err := parseNumber(*r.Number)
		if err != nil {
			return nil, syntaxErrorAt(pos, "Could not parse: invalid number %q", *r.Number)
		}
		return &Constant{At: pos, Value: v}, nil
	case r.String != nil:
		return nil, syntaxErrorAt(pos, "Literals of this type are not supported")
	case r.Ident != nil:
		switch *r.Ident {
		case "True":
			return &Constant{At: pos, Value: 1}, nil
		case "False":
			return &Constant{At: pos, Value: 0}, nil
		case "None":
			return nil, syntaxErrorAt(pos, "Literals of this type are not supported")
		}
		return &Name{At: pos, ID: *r.Ident}, nil
	case r.Group != nil:
		return l.comparison(r.Group)
	}
	return nil, syntaxErrorAt(pos, "This syntax is not supported")
}

// parseNumber accepts decimal integers and floats, and 0x/0o/0b integers of
// any size. Decimal overflow yields ±Inf rather than an error.
func parseNumber(lit string) (float64, error) {
	if len(lit) > 1 && lit[0] == '0' && strings.ContainsRune("xXoObB", rune(lit[1])) {
		n, ok := new(big.Int).SetString(lit, 0)
		if !ok {
			return 0, strconv.ErrSyntax
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}
