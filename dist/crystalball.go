// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
)

// CrystalBallDist is a Gaussian core with a single power-law tail:
// the one-sided version of BifurcatedTailDist. For Alpha > 0 the
// tail is below the mode; for Alpha < 0 it is above (the shape is
// mirrored about Mu). The tail constants are again fixed by matching
// value and slope at the splice point |Alpha| standard deviations
// from the mode.
type CrystalBallDist struct {
	// Mu and Sigma are the location and width of the Gaussian
	// core. Sigma is used through |Sigma|.
	Mu, Sigma float64

	// Alpha places the splice point |Alpha| standard deviations
	// from the mode, with the tail on the low side for Alpha > 0.
	// N is the power-law order of the tail.
	Alpha, N float64

	// TailOrderTol is the tolerance below which |N-1| selects the
	// logarithmic tail antiderivative. If zero it defaults to
	// 1e-5.
	TailOrderTol float64

	// ErfLim is the saturation threshold for the error function
	// used by Integral; see BifurcatedTailDist.ErfLim.
	ErfLim float64
}

var _ Integrable = CrystalBallDist{}

// Validate checks the parameters.
func (d CrystalBallDist) Validate() error {
	switch {
	case d.Sigma == 0:
		return errors.New("dist: CrystalBallDist: Sigma must be non-zero")
	case d.Alpha == 0:
		return errors.New("dist: CrystalBallDist: Alpha must be non-zero")
	case d.N <= 0:
		return errors.New("dist: CrystalBallDist: N must be positive")
	}
	return nil
}

func (d CrystalBallDist) PDF(x float64) float64 {
	t := (x - d.Mu) / math.Abs(d.Sigma)
	if d.Alpha < 0 {
		t = -t
	}
	absA := math.Abs(d.Alpha)
	if t > -absA {
		return math.Exp(-0.5 * t * t)
	}
	a := math.Pow(d.N/absA, d.N) * math.Exp(-0.5*absA*absA)
	b := d.N/absA - absA
	return a / math.Pow(b-t, d.N)
}

// Integral returns the exact integral of PDF over r.
func (d CrystalBallDist) Integral(r Interval) float64 {
	sig := math.Abs(d.Sigma)
	tmin := (r.Min - d.Mu) / sig
	tmax := (r.Max - d.Mu) / sig
	if d.Alpha < 0 {
		// Mirror symmetry: integrate the reflected shape over
		// the reflected range.
		tmin, tmax = -tmax, -tmin
	}
	absA := math.Abs(d.Alpha)

	var sum float64
	if tmin < -absA {
		sum += d.tailSeg(tmin, math.Min(tmax, -absA), absA)
	}
	if tmax > -absA {
		lo := math.Max(tmin, -absA)
		sum += sqrtPiOver2 * (d.approxErf(tmax/sqrt2) - d.approxErf(lo/sqrt2))
	}
	return sig * sum
}

// tailSeg integrates the tail from t0 to t1, both ≤ -absA.
func (d CrystalBallDist) tailSeg(t0, t1, absA float64) float64 {
	a := math.Pow(d.N/absA, d.N) * math.Exp(-0.5*absA*absA)
	b := d.N/absA - absA
	tol := d.TailOrderTol
	if tol == 0 {
		tol = 1e-5
	}
	if math.Abs(d.N-1) < tol {
		return a * (math.Log(b-t0) - math.Log(b-t1))
	}
	return a / (1 - d.N) * (math.Pow(b-t0, 1-d.N) - math.Pow(b-t1, 1-d.N))
}

func (d CrystalBallDist) approxErf(arg float64) float64 {
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

func (d CrystalBallDist) Bounds() (float64, float64) {
	sig := math.Abs(d.Sigma)
	return d.Mu - 20*sig, d.Mu + 20*sig
}
