// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
)

// A Box3 bounds an integration region for a Poly3Dist, one Interval
// per dimension. Intervals for dimensions not named in the requested
// Dims are ignored.
type Box3 struct {
	X, Y, Z Interval
}

// Poly3Dist is an additively separable polynomial density over three
// independent fit variables:
//
//	p(x,y,z) = P_X(x) + P_Y(y) + P_Z(z) + 1
//
// where each P is Σ c_i·v^(i+LowestOrder) over that dimension's
// coefficient list and the trailing 1 is present only when
// LowestOrder > 0, keeping the shape in the "uniform + correction"
// parameterization. The caller chooses coefficients that keep the
// sum positive over the fit box; Poly3Dist does not enforce
// positivity.
//
// Methods are on *Poly3Dist only because integration reuses an
// internal scratch buffer; the shape itself is immutable and a
// fresh value per goroutine is safe for concurrent use.
type Poly3Dist struct {
	// CoefX, CoefY and CoefZ are the per-dimension coefficient
	// lists, starting at order LowestOrder. An empty list
	// contributes 0 to the sum.
	CoefX, CoefY, CoefZ []float64

	// LowestOrder is the minimum power present in each
	// polynomial. It must be ≥ 0; the default constructor-free
	// zero value of 0 drops the constant offset term.
	LowestOrder int

	wksp []float64 // antiderivative coefficient scratch
}

// Validate checks the parameters.
func (p *Poly3Dist) Validate() error {
	if p.LowestOrder < 0 {
		return errors.New("dist: Poly3Dist: LowestOrder must be >= 0")
	}
	return nil
}

// PDF3 returns the value of the density at (x, y, z).
func (p *Poly3Dist) PDF3(x, y, z float64) float64 {
	v := p.evalPoly(p.CoefX, x) + p.evalPoly(p.CoefY, y) + p.evalPoly(p.CoefZ, z)
	if p.LowestOrder > 0 {
		v++
	}
	return v
}

// evalPoly evaluates Σ coef[i]·v^(i+LowestOrder) by Horner's method.
func (p *Poly3Dist) evalPoly(coef []float64, v float64) float64 {
	if len(coef) == 0 {
		return 0
	}
	ret := coef[len(coef)-1]
	for i := len(coef) - 1; i > 0; i-- {
		ret = coef[i-1] + v*ret
	}
	return ret * math.Pow(v, float64(p.LowestOrder))
}

// IntegralDims returns the integral of the density over box,
// restricted to the dimensions in dims. dims must be one of the
// seven non-empty subsets of {DimX, DimY, DimZ}.
//
// Because the density is additively separable, integrating one
// dimension's polynomial over several dimensions degenerates to its
// one-dimensional termwise integral times the range lengths of the
// other integrated dimensions; the constant offset contributes the
// product of all integrated range lengths.
func (p *Poly3Dist) IntegralDims(box Box3, dims Dims) float64 {
	if dims == 0 || dims&^DimsAll != 0 {
		panic("dist: Poly3Dist: dims must be a non-empty subset of {x,y,z}")
	}

	var sum float64
	if dims.Has(DimX) {
		v := p.integratePoly(p.CoefX, box.X)
		if dims.Has(DimY) {
			v *= box.Y.Length()
		}
		if dims.Has(DimZ) {
			v *= box.Z.Length()
		}
		sum += v
	}
	if dims.Has(DimY) {
		v := p.integratePoly(p.CoefY, box.Y)
		if dims.Has(DimX) {
			v *= box.X.Length()
		}
		if dims.Has(DimZ) {
			v *= box.Z.Length()
		}
		sum += v
	}
	if dims.Has(DimZ) {
		v := p.integratePoly(p.CoefZ, box.Z)
		if dims.Has(DimX) {
			v *= box.X.Length()
		}
		if dims.Has(DimY) {
			v *= box.Y.Length()
		}
		sum += v
	}
	if p.LowestOrder > 0 {
		c := 1.0
		if dims.Has(DimX) {
			c *= box.X.Length()
		}
		if dims.Has(DimY) {
			c *= box.Y.Length()
		}
		if dims.Has(DimZ) {
			c *= box.Z.Length()
		}
		sum += c
	}
	return sum
}

// integratePoly integrates one dimension's polynomial over r,
// evaluating the termwise antiderivative at both bounds by Horner's
// method.
func (p *Poly3Dist) integratePoly(coef []float64, r Interval) float64 {
	if len(coef) == 0 {
		return 0
	}
	p.wksp = p.wksp[:0]
	for i, c := range coef {
		p.wksp = append(p.wksp, c/float64(i+p.LowestOrder+1))
	}
	lo := p.wksp[len(p.wksp)-1]
	hi := lo
	for i := len(p.wksp) - 1; i > 0; i-- {
		lo = p.wksp[i-1] + r.Min*lo
		hi = p.wksp[i-1] + r.Max*hi
	}
	pw := float64(1 + p.LowestOrder)
	return hi*math.Pow(r.Max, pw) - lo*math.Pow(r.Min, pw)
}
