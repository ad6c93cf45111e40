package formula

// Position locates a node in the formula source. Line and Column are 1-based;
// Column counts characters.
type Position struct {
	Line   int
	Column int
}

// Node is implemented by every AST node kind.
type Node interface {
	// Pos returns where the node starts in the source.
	Pos() Position
	node()
}

// BinaryOperator enumerates the arithmetic operators.
type BinaryOperator uint8

const (
	Add BinaryOperator = iota + 1
	Sub
	Mul
	Div
	Pow
)

var binaryNames = [...]string{Add: "+", Sub: "-", Mul: "*", Div: "/", Pow: "**"}

func (op BinaryOperator) String() string {
	if int(op) < len(binaryNames) && binaryNames[op] != "" {
		return binaryNames[op]
	}
	return "?"
}

// UnaryOperator enumerates the unary operators.
type UnaryOperator uint8

const (
	Neg UnaryOperator = iota + 1
)

func (op UnaryOperator) String() string {
	if op == Neg {
		return "-"
	}
	return "?"
}

// CompareOperator enumerates the relational operators.
type CompareOperator uint8

const (
	Eq CompareOperator = iota + 1
	NotEq
	Lt
	LtE
	Gt
	GtE
)

var compareNames = [...]string{Eq: "==", NotEq: "!=", Lt: "<", LtE: "<=", Gt: ">", GtE: ">="}

func (op CompareOperator) String() string {
	if int(op) < len(compareNames) && compareNames[op] != "" {
		return compareNames[op]
	}
	return "?"
}

// Expression is the root of every compiled formula.
type Expression struct {
	At   Position
	Body Node
}

// Constant is a numeric literal.
type Constant struct {
	At    Position
	Value float64
}

// Name is a variable reference resolved against Bindings at evaluation time.
type Name struct {
	At Position
	ID string
}

// BinaryOp applies Op to Left and Right.
type BinaryOp struct {
	At          Position
	Op          BinaryOperator
	Left, Right Node
}

// UnaryOp applies Op to Operand.
type UnaryOp struct {
	At      Position
	Op      UnaryOperator
	Operand Node
}

// Compare is a comparison chain: Left Ops[0] Comparators[0] Ops[1] Comparators[1] ...
// len(Ops) == len(Comparators).
type Compare struct {
	At          Position
	Left        Node
	Ops         []CompareOperator
	Comparators []Node
}

func (n *Expression) Pos() Position { return n.At }
func (n *Constant) Pos() Position   { return n.At }
func (n *Name) Pos() Position       { return n.At }
func (n *BinaryOp) Pos() Position   { return n.At }
func (n *UnaryOp) Pos() Position    { return n.At }
func (n *Compare) Pos() Position    { return n.At }

func (*Expression) node() {}
func (*Constant) node()   {}
func (*Name) node()       {}
func (*BinaryOp) node()   {}
func (*UnaryOp) node()    {}
func (*Compare) node()    {}

// Inspect traverses the tree rooted at n in depth-first order, calling fn for
// each node. Children are skipped when fn returns false.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Expression:
		Inspect(n.Body, fn)
	case *BinaryOp:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *UnaryOp:
		Inspect(n.Operand, fn)
	case *Compare:
		Inspect(n.Left, fn)
		for _, c := range n.Comparators {
			Inspect(c, fn)
		}
	}
}
