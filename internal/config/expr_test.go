package config

import (
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"1", 1},
		{"0.001", 0.001},
		{"60*60*24", 86400},
		{"60*60*24*365", 31536000},
		{"1.0 / 1000.0", 0.001},
		{"60*10", 600},
		{"(2+3)*4.5", 22.5},
	}

	for _, tc := range cases {
		got, err := Eval(tc.src)
		if err != nil {
			t.Errorf("Eval(%q): unexpected error: %v", tc.src, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Eval(%q) = %g, want %g", tc.src, got, tc.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"60*",
		"true",
		`"a year"`,
		"1.0/0.0",
	} {
		if _, err := Eval(src); err == nil {
			t.Errorf("Eval(%q): expected error", src)
		}
	}
}
