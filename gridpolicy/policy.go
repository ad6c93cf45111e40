package gridpolicy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/rasterpath/formula"
	"github.com/katalvlaran/rasterpath/grid"
)

// traversal is the resolved traversability variant.
type traversal struct {
	kind     TraversalKind
	layer    []float64
	layerIdx int
	min, max *float64
	f        *formula.Formula
}

// cost is the resolved cost variant.
type cost struct {
	kind     CostKind
	layer    []float64
	layerIdx int
	f        *formula.Formula
}

// Policy answers traversability and cost queries for one grid.
type Policy struct {
	g *grid.Grid
	t traversal
	c cost
}

// Resolve chooses the traversal and cost variants once and compiles any
// formulas. The returned Policy is immutable.
// Complexity: O(len(formula)) per formula.
func Resolve(g *grid.Grid, tc TraversalConfig, cc CostConfig) (*Policy, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	p := &Policy{g: g}

	// 1) Traversability: layer threshold, then formula, then always.
	switch {
	case tc.Layer != nil:
		samples, err := g.Layer(*tc.Layer)
		if err != nil {
			return nil, fmt.Errorf("gridpolicy: traversability layer: %w", err)
		}
		p.t = traversal{kind: TraverseThreshold, layer: samples, layerIdx: *tc.Layer, min: tc.Min, max: tc.Max}
	case strings.TrimSpace(tc.Formula) != "":
		f, err := formula.Compile(tc.Formula)
		if err != nil {
			return nil, err
		}
		p.t = traversal{kind: TraverseFormula, f: f}
	default:
		p.t = traversal{kind: TraverseAlways}
	}

	// 2) Cost: layer, then formula, then constant.
	switch {
	case cc.Layer != nil:
		samples, err := g.Layer(*cc.Layer)
		if err != nil {
			return nil, fmt.Errorf("gridpolicy: cost layer: %w", err)
		}
		p.c = cost{kind: CostLayer, layer: samples, layerIdx: *cc.Layer}
	case strings.TrimSpace(cc.Formula) != "":
		f, err := formula.Compile(cc.Formula)
		if err != nil {
			return nil, err
		}
		p.c = cost{kind: CostFormula, f: f}
	default:
		p.c = cost{kind: CostConstant}
	}

	return p, nil
}

// Traversable reports whether the cell at pos may be entered. pos must be in
// bounds. Formula evaluation errors are returned unchanged.
func (p *Policy) Traversable(pos grid.Position) (bool, error) {
	switch p.t.kind {
	case TraverseThreshold:
		v := p.t.layer[p.g.Index(pos)]
		// Positive comparisons so NaN (nodata) fails any bound.
		if p.t.min != nil && !(v >= *p.t.min) {
			return false, nil
		}
		if p.t.max != nil && !(v <= *p.t.max) {
			return false, nil
		}
		return true, nil
	case TraverseFormula:
		vars := p.bind(pos)
		v, err := p.t.f.Evaluate(&vars)
		if err != nil {
			return false, err
		}
		return v.Truthy(), nil
	}
	return true, nil
}

// Cost returns the cost of entering the cell at pos. pos must be in bounds.
func (p *Policy) Cost(pos grid.Position) (float64, error) {
	switch p.c.kind {
	case CostLayer:
		return p.c.layer[p.g.Index(pos)], nil
	case CostFormula:
		vars := p.bind(pos)
		v, err := p.c.f.Evaluate(&vars)
		if err != nil {
			return 0, err
		}
		return v.Float(), nil
	}
	return 1, nil
}

// Width returns the grid width.
func (p *Policy) Width() int { return p.g.Width() }

// Height returns the grid height.
func (p *Policy) Height() int { return p.g.Height() }

// Grid returns the grid the policy was resolved against.
func (p *Policy) Grid() *grid.Grid { return p.g }

// TraversalKind returns the resolved traversability variant.
func (p *Policy) TraversalKind() TraversalKind { return p.t.kind }

// CostKind returns the resolved cost variant.
func (p *Policy) CostKind() CostKind { return p.c.kind }

// String summarises both variants, e.g.
// "traverse=threshold(layer=0 min=1) cost=formula(1 + val2 / 10)".
func (p *Policy) String() string {
	var b strings.Builder
	b.WriteString("traverse=")
	b.WriteString(p.t.kind.String())
	switch p.t.kind {
	case TraverseThreshold:
		fmt.Fprintf(&b, "(layer=%d", p.t.layerIdx)
		if p.t.min != nil {
			b.WriteString(" min=" + strconv.FormatFloat(*p.t.min, 'g', -1, 64))
		}
		if p.t.max != nil {
			b.WriteString(" max=" + strconv.FormatFloat(*p.t.max, 'g', -1, 64))
		}
		b.WriteByte(')')
	case TraverseFormula:
		b.WriteString("(" + p.t.f.Source() + ")")
	}

	b.WriteString(" cost=")
	b.WriteString(p.c.kind.String())
	switch p.c.kind {
	case CostLayer:
		fmt.Fprintf(&b, "(layer=%d)", p.c.layerIdx)
	case CostFormula:
		b.WriteString("(" + p.c.f.Source() + ")")
	}
	return b.String()
}

// bind captures the variables of one cell.
func (p *Policy) bind(pos grid.Position) cellVars {
	cv := cellVars{x: pos.X, y: pos.Y}
	cv.n = p.g.Samples(pos, &cv.vals)
	return cv
}
