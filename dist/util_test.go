// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// releq reports whether got is within relative tolerance tol of
// expect.
func releq(expect, got, tol float64) bool {
	if expect == 0 {
		return math.Abs(got) < tol
	}
	return math.Abs(got/expect-1) < tol
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeq(want, got) {
			t.Errorf("want %s(%v) = %v, got %v", name, x, want, got)
		}
	}
}

// quadOracle integrates f over [lo, hi] by Gauss-Legendre
// quadrature, splitting the range at the given cut points so each
// panel is smooth.
func quadOracle(f func(float64) float64, lo, hi float64, cuts ...float64) float64 {
	pts := []float64{lo}
	for _, c := range cuts {
		if c > lo && c < hi {
			pts = append(pts, c)
		}
	}
	pts = append(pts, hi)
	sort.Float64s(pts)

	var sum float64
	for i := 0; i+1 < len(pts); i++ {
		sum += quad.Fixed(f, pts[i], pts[i+1], 200, nil, 0)
	}
	return sum
}
