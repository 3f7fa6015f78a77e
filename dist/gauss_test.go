// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestGaussPDF(t *testing.T) {
	d := GaussDist{Mu: 1, Sigma: 2}
	testFunc(t, fmt.Sprintf("%+v.PDF", d), d.PDF,
		map[float64]float64{
			1:  1,
			3:  math.Exp(-0.5),
			-1: math.Exp(-0.5),
			5:  math.Exp(-2),
		})
}

func TestGaussIntegral(t *testing.T) {
	d := GaussDist{Mu: 1, Sigma: 2}
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	for _, r := range []Interval{{-3, 0}, {0, 2}, {-10, 10}, {2.5, 7}} {
		tmin := (r.Min - d.Mu) / d.Sigma
		tmax := (r.Max - d.Mu) / d.Sigma
		want := d.Sigma * sq2pi * (norm.CDF(tmax) - norm.CDF(tmin))
		if got := d.Integral(r); !releq(want, got, 1e-10) {
			t.Errorf("want Integral(%v) = %v, got %v", r, want, got)
		}
	}

	whole := d.Integral(Interval{-4, 6})
	parts := d.Integral(Interval{-4, 0.5}) + d.Integral(Interval{0.5, 6})
	if !releq(whole, parts, 1e-12) {
		t.Errorf("want Integral[-4,6] = %v, got %v from adjacent parts", whole, parts)
	}
}
