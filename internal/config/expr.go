package config

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
)

// Eval evaluates an arithmetic expression literal to a finite float64.
func Eval(src string) (float64, error) {
	program, err := expr.Compile(src)
	if err != nil {
		return 0, fmt.Errorf("parse expression %q: %w", src, err)
	}
	out, err := expr.Run(program, nil)
	if err != nil {
		return 0, fmt.Errorf("evaluate expression %q: %w", src, err)
	}

	var v float64
	switch n := out.(type) {
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case float64:
		v = n
	default:
		return 0, fmt.Errorf("expression %q is not numeric (got %T)", src, out)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("expression %q is not finite", src)
	}
	return v, nil
}
