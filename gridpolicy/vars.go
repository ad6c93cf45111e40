package gridpolicy

import "github.com/katalvlaran/rasterpath/grid"

// cellVars binds x, y and val1..valN for a single cell. A fresh value is
// built for every evaluation.
type cellVars struct {
	x, y int
	vals [grid.MaxLayers]float64
	n    int
}

// Lookup implements formula.Bindings.
func (c *cellVars) Lookup(name string) (float64, bool) {
	switch name {
	case "x":
		return float64(c.x), true
	case "y":
		return float64(c.y), true
	case "val1":
		return c.val(0)
	case "val2":
		return c.val(1)
	case "val3":
		return c.val(2)
	}
	return 0, false
}

func (c *cellVars) val(i int) (float64, bool) {
	if i >= c.n {
		return 0, false
	}
	return c.vals[i], true
}
