package formula

import "strconv"

// Kind distinguishes numeric results from comparison results.
type Kind uint8

const (
	// KindNumber is produced by constants, names and arithmetic.
	KindNumber Kind = iota
	// KindBool is produced by comparison chains.
	KindBool
)

// Value is the result of evaluating a formula. Comparisons yield booleans and
// everything else yields float64; the kind is preserved so callers can choose
// between Truthy (traversability) and Float (cost).
type Value struct {
	kind Kind
	num  float64
}

// Number wraps a float64.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, num: 1}
	}
	return Value{kind: KindBool}
}

// Kind returns the value kind.
func (v Value) Kind() Kind { return v.kind }

// IsBool reports whether v came from a comparison.
func (v Value) IsBool() bool { return v.kind == KindBool }

// Float returns the numeric value; booleans convert to 1 or 0.
func (v Value) Float() float64 { return v.num }

// Truthy reports whether v is a true boolean or a non-zero number. NaN is truthy.
func (v Value) Truthy() bool { return v.num != 0 }

// String renders booleans as True/False and numbers in shortest form.
func (v Value) String() string {
	if v.kind == KindBool {
		if v.num != 0 {
			return "True"
		}
		return "False"
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}
