package gridpolicy

import "errors"

// ErrNilGrid is returned by Resolve when the grid is nil.
var ErrNilGrid = errors.New("gridpolicy: grid is nil")

// TraversalKind identifies the traversability variant chosen by Resolve.
type TraversalKind uint8

const (
	// TraverseAlways accepts every in-bounds cell.
	TraverseAlways TraversalKind = iota
	// TraverseThreshold tests one layer against optional inclusive bounds.
	TraverseThreshold
	// TraverseFormula evaluates a formula and tests its truthiness.
	TraverseFormula
)

func (k TraversalKind) String() string {
	switch k {
	case TraverseAlways:
		return "always"
	case TraverseThreshold:
		return "threshold"
	case TraverseFormula:
		return "formula"
	}
	return "unknown"
}

// CostKind identifies the cost variant chosen by Resolve.
type CostKind uint8

const (
	// CostConstant charges 1 for every cell.
	CostConstant CostKind = iota
	// CostLayer charges the sample of one layer.
	CostLayer
	// CostFormula charges the numeric result of a formula.
	CostFormula
)

func (k CostKind) String() string {
	switch k {
	case CostConstant:
		return "constant"
	case CostLayer:
		return "layer"
	case CostFormula:
		return "formula"
	}
	return "unknown"
}

// TraversalConfig selects the traversability rule. Layer takes precedence
// over Formula; a blank Formula counts as absent.
//
//	Layer set, no bounds      every cell is traversable
//	Layer set, Min only       v >= Min
//	Layer set, Max only       v <= Max
//	Layer set, Min and Max    Min <= v <= Max
//	Formula set               truthy(formula)
//	neither                   every cell is traversable
type TraversalConfig struct {
	Layer    *int
	Min, Max *float64
	Formula  string
}

// CostConfig selects the cost rule: the sample of Layer, else Formula, else 1.
type CostConfig struct {
	Layer   *int
	Formula string
}

// Int returns a pointer to v, for filling the optional config fields.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for filling the optional config fields.
func Float(v float64) *float64 { return &v }
