// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "testing"

func TestPoly3PDF(t *testing.T) {
	p := &Poly3Dist{CoefX: []float64{2}, LowestOrder: 1}
	if got := p.PDF3(3, 0, 0); !aeq(7, got) {
		t.Errorf("want PDF3(3,0,0) = 7, got %v", got)
	}

	// x: 2x, y: y + y², z: 0.5z.
	p = &Poly3Dist{
		CoefX:       []float64{2},
		CoefY:       []float64{1, 1},
		CoefZ:       []float64{0.5},
		LowestOrder: 1,
	}
	testsum := func(x, y, z float64) float64 {
		return 2*x + y + y*y + 0.5*z + 1
	}
	for _, pt := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-1, 0.5, 2}, {0.3, -0.2, 0}} {
		want := testsum(pt[0], pt[1], pt[2])
		if got := p.PDF3(pt[0], pt[1], pt[2]); !aeq(want, got) {
			t.Errorf("want PDF3(%v) = %v, got %v", pt, want, got)
		}
	}

	// LowestOrder 0 drops the constant offset and starts each
	// polynomial at v^0.
	p = &Poly3Dist{CoefX: []float64{2}, LowestOrder: 0}
	if got := p.PDF3(5, 0, 0); !aeq(2, got) {
		t.Errorf("want PDF3(5,0,0) = 2 for LowestOrder 0, got %v", got)
	}

	// LowestOrder 2: c·x².
	p = &Poly3Dist{CoefX: []float64{3}, LowestOrder: 2}
	if got := p.PDF3(2, 0, 0); !aeq(13, got) {
		t.Errorf("want PDF3(2,0,0) = 13 for LowestOrder 2, got %v", got)
	}
}

func TestPoly3Integral(t *testing.T) {
	p := &Poly3Dist{CoefX: []float64{2}, LowestOrder: 1}
	box := Box3{X: Interval{0, 1}}
	if got := p.IntegralDims(box, DimX); !aeq(2, got) {
		t.Errorf("want IntegralDims(x:[0,1], {x}) = 2, got %v", got)
	}

	p = &Poly3Dist{
		CoefX:       []float64{2},
		CoefY:       []float64{1, 1},
		LowestOrder: 1,
	}
	box = Box3{X: Interval{0, 1}, Y: Interval{0, 2}, Z: Interval{0, 3}}

	// ∫2x over x:[0,1] is 1; ∫(y+y²) over y:[0,2] is 2 + 8/3;
	// each scaled by the other integrated range lengths, plus the
	// constant term times all of them.
	want := 1.0*2*3 + (2+8.0/3)*1*3 + 1*1*2*3
	if got := p.IntegralDims(box, DimsAll); !aeq(want, got) {
		t.Errorf("want IntegralDims({x,y,z}) = %v, got %v", want, got)
	}

	want = 1.0*2 + (2 + 8.0/3) + 1*1*2
	if got := p.IntegralDims(box, DimX|DimY); !aeq(want, got) {
		t.Errorf("want IntegralDims({x,y}) = %v, got %v", want, got)
	}

	want = 2 + 8.0/3 + 1*2
	if got := p.IntegralDims(box, DimY); !aeq(want, got) {
		t.Errorf("want IntegralDims({y}) = %v, got %v", want, got)
	}

	// z has no coefficients, so only the constant term
	// contributes.
	if got := p.IntegralDims(box, DimZ); !aeq(3, got) {
		t.Errorf("want IntegralDims({z}) = 3, got %v", got)
	}
}

func TestPoly3IntegralAdditivity(t *testing.T) {
	p := &Poly3Dist{
		CoefX:       []float64{2, -0.3},
		CoefY:       []float64{1, 1},
		CoefZ:       []float64{0.5},
		LowestOrder: 1,
	}
	whole := Box3{X: Interval{0, 1}, Y: Interval{-1, 2}, Z: Interval{0, 3}}
	loHalf := whole
	loHalf.X = Interval{0, 0.4}
	hiHalf := whole
	hiHalf.X = Interval{0.4, 1}

	for _, dims := range []Dims{DimX, DimX | DimY, DimsAll} {
		want := p.IntegralDims(whole, dims)
		got := p.IntegralDims(loHalf, dims) + p.IntegralDims(hiHalf, dims)
		if !releq(want, got, 1e-12) {
			t.Errorf("want IntegralDims(%v) = %v over adjacent boxes, got %v", dims, want, got)
		}
	}
}

func TestPoly3IntegralVsSum(t *testing.T) {
	// Brute-force Riemann sum over the full box as an independent
	// oracle.
	p := &Poly3Dist{
		CoefX:       []float64{1.5, 0.2},
		CoefY:       []float64{-0.1, 0.3},
		CoefZ:       []float64{0.7},
		LowestOrder: 1,
	}
	box := Box3{X: Interval{0, 1}, Y: Interval{0.5, 1.5}, Z: Interval{-1, 1}}

	const n = 200
	hx := box.X.Length() / n
	hy := box.Y.Length() / n
	hz := box.Z.Length() / n
	var sum float64
	for i := 0; i < n; i++ {
		x := box.X.Min + (float64(i)+0.5)*hx
		for j := 0; j < n; j++ {
			y := box.Y.Min + (float64(j)+0.5)*hy
			for k := 0; k < n; k++ {
				z := box.Z.Min + (float64(k)+0.5)*hz
				sum += p.PDF3(x, y, z)
			}
		}
	}
	sum *= hx * hy * hz

	if got := p.IntegralDims(box, DimsAll); !releq(sum, got, 1e-4) {
		t.Errorf("want IntegralDims = %v from Riemann sum, got %v", sum, got)
	}
}

func TestPoly3BadDims(t *testing.T) {
	p := &Poly3Dist{CoefX: []float64{1}, LowestOrder: 1}
	for _, dims := range []Dims{0, 1 << 5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("want IntegralDims(%v) to panic", dims)
				}
			}()
			p.IntegralDims(Box3{}, dims)
		}()
	}
}

func TestPoly3Validate(t *testing.T) {
	if err := (&Poly3Dist{LowestOrder: -1}).Validate(); err == nil {
		t.Error("want Validate error for negative LowestOrder")
	}
	if err := (&Poly3Dist{LowestOrder: 0}).Validate(); err != nil {
		t.Error(err)
	}
}
