package formula_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rasterpath/formula"
)

// ExampleCompile compiles a traversability rule once and evaluates it per cell.
func ExampleCompile() {
	f, err := formula.Compile("0 <= val1 < 100")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, elevation := range []float64{-5, 42, 250} {
		v, _ := f.Evaluate(formula.Vars{"val1": elevation})
		fmt.Printf("val1=%g -> %v\n", elevation, v)
	}
	// Output:
	// val1=-5 -> False
	// val1=42 -> True
	// val1=250 -> False
}

// ExampleEvaluate shows the two error families.
func ExampleEvaluate() {
	v, _ := formula.Evaluate("1 + val2 / 10", formula.Vars{"val2": 25})
	fmt.Println(v)

	_, err := formula.Evaluate("1 + slope", formula.Vars{})
	fmt.Println(err, errors.Is(err, formula.ErrSyntax))

	_, err = formula.Evaluate("x / 0", formula.Vars{"x": 1})
	fmt.Println(err, errors.Is(err, formula.ErrRuntime))
	// Output:
	// 3.5
	// 1:5: Undefined variable: slope true
	// Evaluation failed: float division by zero true
}
