package formula

import (
	"errors"
	"fmt"
	"math"
)

// Bindings resolves identifiers at evaluation time.
type Bindings interface {
	Lookup(name string) (float64, bool)
}

// Vars is a map-backed Bindings.
type Vars map[string]float64

// Lookup implements Bindings.
func (v Vars) Lookup(name string) (float64, bool) {
	f, ok := v[name]
	return f, ok
}

// Evaluate compiles source and evaluates it once against vars.
func Evaluate(source string, vars Bindings) (Value, error) {
	f, err := Compile(source)
	if err != nil {
		return Value{}, err
	}
	return f.Evaluate(vars)
}

// Evaluate computes the formula against b, which may be nil for formulas
// without identifiers. Errors are *SyntaxError (unknown identifier or
// unsupported node) or *RuntimeError (arithmetic failure).
func (f *Formula) Evaluate(b Bindings) (Value, error) {
	v, err := eval(f.root, b)
	if err != nil {
		var se *SyntaxError
		if errors.As(err, &se) {
			return Value{}, se
		}
		return Value{}, &RuntimeError{Err: err}
	}
	return v, nil
}

func eval(n Node, b Bindings) (Value, error) {
	switch n := n.(type) {
	case *Expression:
		return eval(n.Body, b)

	case *Constant:
		return Number(n.Value), nil

	case *Name:
		if b != nil {
			if v, ok := b.Lookup(n.ID); ok {
				return Number(v), nil
			}
		}
		return Value{}, syntaxErrorAt(n.At, "Undefined variable: %s", n.ID)

	case *BinaryOp:
		l, err := eval(n.Left, b)
		if err != nil {
			return Value{}, err
		}
		r, err := eval(n.Right, b)
		if err != nil {
			return Value{}, err
		}
		x, err := arith(n, l.Float(), r.Float())
		if err != nil {
			return Value{}, err
		}
		return Number(x), nil

	case *UnaryOp:
		v, err := eval(n.Operand, b)
		if err != nil {
			return Value{}, err
		}
		if n.Op != Neg {
			return Value{}, syntaxErrorAt(n.At, "Operations of type %s are not supported", n.Op)
		}
		return Number(-v.Float()), nil

	case *Compare:
		return compare(n, b)
	}

	pos := Position{Line: 1, Column: 1}
	if n != nil {
		pos = n.Pos()
	}
	return Value{}, syntaxErrorAt(pos, "This syntax is not supported")
}

func arith(n *BinaryOp, l, r float64) (float64, error) {
	switch n.Op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	case Div:
		if r == 0 {
			return 0, fmt.Errorf("float %w", ErrDivisionByZero)
		}
		return l / r, nil
	case Pow:
		return power(l, r)
	}
	return 0, syntaxErrorAt(n.At, "Operations of type %s are not supported", n.Op)
}

// power follows float exponentiation semantics: a zero base with a negative
// exponent, a complex result and overflow of finite operands are errors.
func power(base, exp float64) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, fmt.Errorf("0.0 cannot be raised to a negative power: %w", ErrDivisionByZero)
	}
	x := math.Pow(base, exp)
	finite := !math.IsInf(base, 0) && !math.IsInf(exp, 0) && !math.IsNaN(base) && !math.IsNaN(exp)
	if finite && math.IsNaN(x) {
		return 0, fmt.Errorf("negative number cannot be raised to a fractional power: %w", ErrDomain)
	}
	if finite && math.IsInf(x, 0) {
		return 0, ErrOverflow
	}
	return x, nil
}

// compare evaluates every operand, then requires all adjacent pairs to hold.
func compare(n *Compare, b Bindings) (Value, error) {
	operands := make([]float64, 0, len(n.Comparators)+1)
	left, err := eval(n.Left, b)
	if err != nil {
		return Value{}, err
	}
	operands = append(operands, left.Float())
	for _, c := range n.Comparators {
		v, err := eval(c, b)
		if err != nil {
			return Value{}, err
		}
		operands = append(operands, v.Float())
	}

	result := true
	for i, op := range n.Ops {
		a, z := operands[i], operands[i+1]
		var ok bool
		switch op {
		case Eq:
			ok = a == z
		case NotEq:
			ok = a != z
		case Lt:
			ok = a < z
		case LtE:
			ok = a <= z
		case Gt:
			ok = a > z
		case GtE:
			ok = a >= z
		default:
			return Value{}, syntaxErrorAt(n.At, "Operations of type %s are not supported", op)
		}
		result = result && ok
	}
	return Bool(result), nil
}
