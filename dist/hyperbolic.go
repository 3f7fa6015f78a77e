// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/hepfit/go-hepmath/mathx"
)

// HyperbolicDist is a generalized hyperbolic density: a smooth
// heavy-tailed core built on the modified Bessel function of the
// second kind, with independently configurable power-law tails
// spliced in beyond AlphaL·|Sigma| below and AlphaR·|Sigma| above
// the mode. Each tail's two free constants are solved from the value
// and the first derivative of the core at the splice point, so the
// shape is continuous and once differentiable everywhere.
//
// For Zeta > 0 the core is the full Bessel kernel. For Zeta == 0 the
// kernel degenerates to the Student-like form
//
//	exp(Beta·d)·(1 + d²/Sigma²)^(Lambda-1/2)
//
// which has finite weight only for Lambda < 0; Zeta == 0 with
// Lambda ≥ 0 is an unsupported configuration (see Validate).
//
// The shape has no closed-form integral; see NumIntegral.
type HyperbolicDist struct {
	// Mu and Sigma are the location and width of the core. Sigma
	// is used through |Sigma|.
	Mu, Sigma float64

	// Lambda is the shape order of the core. It may be negative,
	// and must be negative when Zeta == 0.
	Lambda float64

	// Zeta is the concentration of the core, ≥ 0. Larger values
	// make the core more Gaussian; 0 gives the heaviest tails.
	Zeta float64

	// Beta is the asymmetry of the core; 0 is symmetric.
	Beta float64

	// AlphaL and NL place the left tail splice AlphaL·|Sigma|
	// below Mu with power-law order NL. AlphaR and NR do the same
	// on the right.
	AlphaL, NL float64
	AlphaR, NR float64
}

var _ Density = HyperbolicDist{}

// Validate checks the parameters. It returns ErrUnsupported for
// Zeta == 0 with Lambda ≥ 0, which has no defined density.
func (d HyperbolicDist) Validate() error {
	switch {
	case d.Sigma == 0:
		return errors.New("dist: HyperbolicDist: Sigma must be non-zero")
	case d.Zeta < 0:
		return errors.New("dist: HyperbolicDist: Zeta must be non-negative")
	case d.AlphaL <= 0 || d.AlphaR <= 0:
		return errors.New("dist: HyperbolicDist: tail onsets must be positive")
	case d.NL <= 0 || d.NR <= 0:
		return errors.New("dist: HyperbolicDist: tail orders must be positive")
	case d.Zeta == 0 && d.Lambda >= 0:
		return ErrUnsupported
	}
	return nil
}

func (d HyperbolicDist) PDF(x float64) float64 {
	sig := math.Abs(d.Sigma)
	dd := x - d.Mu
	aSig := d.AlphaL * sig
	a2Sig := d.AlphaR * sig

	if d.Zeta > 0 {
		// Solve the core parameterization from (Lambda, Zeta,
		// Sigma). The Bessel ratio is formed in log space;
		// both K values can overflow individually for small
		// Zeta even though the ratio is moderate.
		cons0 := math.Sqrt(d.Zeta)
		phi := math.Exp(mathx.LogBesselK(d.Lambda+1, d.Zeta) - mathx.LogBesselK(d.Lambda, d.Zeta))
		cons1 := sig / math.Sqrt(phi)
		alpha := cons0 / cons1
		beta := d.Beta
		delta := cons0 * cons1

		switch {
		case dd < -aSig:
			k1 := coreEval(-aSig, d.Lambda, alpha, beta, delta)
			k2 := coreDiff(-aSig, d.Lambda, alpha, beta, delta)
			b := -aSig + d.NL*k1/k2
			a := k1 * math.Pow(b+aSig, d.NL)
			return a * math.Pow(b-dd, -d.NL)
		case dd > a2Sig:
			k1 := coreEval(a2Sig, d.Lambda, alpha, beta, delta)
			k2 := coreDiff(a2Sig, d.Lambda, alpha, beta, delta)
			b := -a2Sig - d.NR*k1/k2
			a := k1 * math.Pow(b+a2Sig, d.NR)
			return a * math.Pow(b+dd, -d.NR)
		}
		return coreEval(dd, d.Lambda, alpha, beta, delta)
	}

	if d.Lambda >= 0 {
		panic("dist: HyperbolicDist: Zeta == 0 requires Lambda < 0")
	}

	// Zeta == 0: Student-like kernel with delta = sigma. The tail
	// constants come from the kernel's own closed-form value and
	// derivative at the splice points; no Bessel evaluation is
	// needed in this branch.
	beta := d.Beta
	delta := sig
	switch {
	case dd < -aSig:
		cons1 := math.Exp(-beta * aSig)
		phi := 1 + d.AlphaL*d.AlphaL
		k1 := cons1 * math.Pow(phi, d.Lambda-0.5)
		k2 := beta*k1 - cons1*(d.Lambda-0.5)*math.Pow(phi, d.Lambda-1.5)*2*d.AlphaL/delta
		b := -aSig + d.NL*k1/k2
		a := k1 * math.Pow(b+aSig, d.NL)
		return a * math.Pow(b-dd, -d.NL)
	case dd > a2Sig:
		cons1 := math.Exp(beta * a2Sig)
		phi := 1 + d.AlphaR*d.AlphaR
		k1 := cons1 * math.Pow(phi, d.Lambda-0.5)
		k2 := beta*k1 + cons1*(d.Lambda-0.5)*math.Pow(phi, d.Lambda-1.5)*2*d.AlphaR/delta
		b := -a2Sig - d.NR*k1/k2
		a := k1 * math.Pow(b+a2Sig, d.NR)
		return a * math.Pow(b+dd, -d.NR)
	}
	return math.Exp(beta*dd) * math.Pow(1+dd*dd/(delta*delta), d.Lambda-0.5)
}

// coreEval evaluates the generalized hyperbolic kernel at distance
// dd from the mode. All large factors are assembled in log space and
// exponentiated once, so no intermediate overflows even when the
// Bessel values are individually enormous.
func coreEval(dd, l, alpha, beta, delta float64) float64 {
	gamma := alpha
	dg := delta * gamma
	thing := delta*delta + dd*dd
	logno := l*math.Log(gamma/delta) - logSq2pi - mathx.LogBesselK(l, dg)
	return math.Exp(logno + beta*dd +
		(0.5-l)*(math.Log(alpha)-0.5*math.Log(thing)) +
		mathx.LogBesselK(l-0.5, alpha*math.Sqrt(thing)))
}

// coreDiff is the first derivative of coreEval with respect to dd.
// It is the closed form obtained from K'_ν = -(K_{ν-1}+K_{ν+1})/2
// and is evaluated only at the splice points.
func coreDiff(dd, l, alpha, beta, delta float64) float64 {
	gamma := alpha
	dg := delta * gamma
	thing := delta*delta + dd*dd
	sqthing := math.Sqrt(thing)
	alphasq := alpha * sqthing
	no := math.Pow(gamma/delta, l) / mathx.BesselK(l, dg) / sq2pi
	ns1 := 0.5 - l
	return no * math.Pow(alpha, ns1) * math.Pow(thing, l/2-1.25) *
		(-dd*alphasq*(mathx.BesselK(l-1.5, alphasq)+mathx.BesselK(l+0.5, alphasq)) +
			(2*(beta*thing+dd*l)-dd)*mathx.BesselK(ns1, alphasq)) *
		math.Exp(beta*dd) / 2
}

// NumIntegral returns the integral of PDF over r by Gauss-Legendre
// quadrature, splitting the range at the splice points where the
// integrand is only once differentiable. The shape has no exact
// integral, so unlike Integral on the other shapes this is numeric;
// normalization built on it is the caller's choice.
func (d HyperbolicDist) NumIntegral(r Interval) float64 {
	sig := math.Abs(d.Sigma)
	pts := []float64{r.Min}
	for _, cut := range []float64{d.Mu - d.AlphaL*sig, d.Mu + d.AlphaR*sig} {
		if cut > r.Min && cut < r.Max {
			pts = append(pts, cut)
		}
	}
	pts = append(pts, r.Max)

	var sum float64
	for i := 0; i+1 < len(pts); i++ {
		sum += quad.Fixed(d.PDF, pts[i], pts[i+1], 160, nil, 0)
	}
	return sum
}

func (d HyperbolicDist) Bounds() (float64, float64) {
	sig := math.Abs(d.Sigma)
	return d.Mu - 20*sig, d.Mu + 20*sig
}
