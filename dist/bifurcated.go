// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
)

// BifurcatedTailDist is a unimodal density with an unnormalized
// Gaussian core that transitions into independent power-law tails on
// each side. In standardized units t = (x-Mu)/|Sigma| the shape is
//
//	A_L·(B_L - t)^(-NL)  for t ≤ -|AlphaL|
//	exp(-t²/2)           for -|AlphaL| < t < |AlphaR|
//	A_R·(B_R + t)^(-NR)  for t ≥ |AlphaR|
//
// where each tail's A and B are fixed by requiring the value and the
// first derivative to be continuous at the splice point, so the tail
// is the power-law continuation of the Gaussian there:
//
//	A = (N/|α|)^N·exp(-α²/2),  B = N/|α| - |α|
type BifurcatedTailDist struct {
	// Mu and Sigma are the location and width of the Gaussian
	// core. Sigma is used through |Sigma|.
	Mu, Sigma float64

	// AlphaL sets the left splice point, |AlphaL| standard
	// deviations below the mode, and NL the order of the left
	// power-law tail. NL must be > 1 for the tail to have finite
	// weight; any NL > 0 is accepted for sub-range integrals.
	AlphaL, NL float64

	// AlphaR and NR are the right-side equivalents of AlphaL and
	// NL.
	AlphaR, NR float64

	// ErfLim is the argument magnitude beyond which the error
	// function used by Integral saturates to ±1, avoiding
	// special-function evaluation at extreme arguments at the
	// cost of a sub-machine-precision amount of weight. If
	// ErfLim is zero it defaults to 5. Set it to math.Inf(1) to
	// use the exact error function everywhere.
	ErfLim float64

	// TailOrderTol is the tolerance below which |N-1| selects the
	// logarithmic tail antiderivative instead of the power form,
	// which divides by 1-N. If zero it defaults to 1e-5.
	TailOrderTol float64
}

var _ Integrable = BifurcatedTailDist{}

// Validate checks the parameters. PDF and Integral assume a valid
// parameter set and do not re-check.
func (d BifurcatedTailDist) Validate() error {
	switch {
	case d.Sigma == 0:
		return errors.New("dist: BifurcatedTailDist: Sigma must be non-zero")
	case d.AlphaL == 0 || d.AlphaR == 0:
		return errors.New("dist: BifurcatedTailDist: tail onsets must be non-zero")
	case d.NL <= 0 || d.NR <= 0:
		return errors.New("dist: BifurcatedTailDist: tail orders must be positive")
	}
	return nil
}

func (d BifurcatedTailDist) PDF(x float64) float64 {
	t := (x - d.Mu) / math.Abs(d.Sigma)
	aL := math.Abs(d.AlphaL)
	aR := math.Abs(d.AlphaR)
	switch {
	case t <= -aL:
		a := math.Pow(d.NL/aL, d.NL) * math.Exp(-0.5*aL*aL)
		b := d.NL/aL - aL
		return a / math.Pow(b-t, d.NL)
	case t >= aR:
		a := math.Pow(d.NR/aR, d.NR) * math.Exp(-0.5*aR*aR)
		b := d.NR/aR - aR
		return a / math.Pow(b+t, d.NR)
	}
	return math.Exp(-0.5 * t * t)
}

// Integral returns the exact integral of PDF over r. The range is
// split at the splice points, giving six distinct cases depending on
// where its ends fall; each tail segment uses the power-form
// antiderivative, or the logarithmic one when the tail order is
// within TailOrderTol of 1.
func (d BifurcatedTailDist) Integral(r Interval) float64 {
	sig := math.Abs(d.Sigma)
	tmin := (r.Min - d.Mu) / sig
	tmax := (r.Max - d.Mu) / sig
	aL := math.Abs(d.AlphaL)
	aR := math.Abs(d.AlphaR)

	var sum float64
	if tmin < -aL {
		sum += d.leftTailSeg(tmin, math.Min(tmax, -aL), aL)
	}
	if tmax > -aL && tmin < aR {
		lo := math.Max(tmin, -aL)
		hi := math.Min(tmax, aR)
		sum += sqrtPiOver2 * (d.approxErf(hi/sqrt2) - d.approxErf(lo/sqrt2))
	}
	if tmax > aR {
		sum += d.rightTailSeg(math.Max(tmin, aR), tmax, aR)
	}
	return sig * sum
}

// leftTailSeg integrates the left tail from t0 to t1, both ≤ -aL.
func (d BifurcatedTailDist) leftTailSeg(t0, t1, aL float64) float64 {
	a := math.Pow(d.NL/aL, d.NL) * math.Exp(-0.5*aL*aL)
	b := d.NL/aL - aL
	if d.nearUnit(d.NL) {
		return a * (math.Log(b-t0) - math.Log(b-t1))
	}
	return a / (1 - d.NL) * (math.Pow(b-t0, 1-d.NL) - math.Pow(b-t1, 1-d.NL))
}

// rightTailSeg integrates the right tail from t0 to t1, both ≥ aR.
func (d BifurcatedTailDist) rightTailSeg(t0, t1, aR float64) float64 {
	a := math.Pow(d.NR/aR, d.NR) * math.Exp(-0.5*aR*aR)
	b := d.NR/aR - aR
	if d.nearUnit(d.NR) {
		return a * (math.Log(b+t1) - math.Log(b+t0))
	}
	return a / (1 - d.NR) * (math.Pow(b+t1, 1-d.NR) - math.Pow(b+t0, 1-d.NR))
}

func (d BifurcatedTailDist) nearUnit(n float64) bool {
	tol := d.TailOrderTol
	if tol == 0 {
		tol = 1e-5
	}
	return math.Abs(n-1) < tol
}

func (d BifurcatedTailDist) approxErf(arg float64) float64 {
	lim := d.ErfLim
	if lim == 0 {
		lim = 5
	}
	if arg > lim {
		return 1
	}
	if arg < -lim {
		return -1
	}
	return math.Erf(arg)
}

func (d BifurcatedTailDist) Bounds() (float64, float64) {
	// The power tails decay slowly, so these are looser than for
	// a Gaussian.
	sig := math.Abs(d.Sigma)
	return d.Mu - 20*sig, d.Mu + 20*sig
}
