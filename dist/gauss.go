// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
)

// GaussDist is an unnormalized Gaussian shape exp(-(x-Mu)²/2Sigma²).
// Like the other shapes it carries no normalization constant; its
// full-line integral is |Sigma|·√(2π).
type GaussDist struct {
	Mu, Sigma float64
}

var _ Integrable = GaussDist{}

// Validate checks the parameters.
func (d GaussDist) Validate() error {
	if d.Sigma == 0 {
		return errors.New("dist: GaussDist: Sigma must be non-zero")
	}
	return nil
}

func (d GaussDist) PDF(x float64) float64 {
	t := (x - d.Mu) / math.Abs(d.Sigma)
	return math.Exp(-0.5 * t * t)
}

// Integral returns the exact integral of PDF over r, via the error
// function.
func (d GaussDist) Integral(r Interval) float64 {
	sig := math.Abs(d.Sigma)
	tmin := (r.Min - d.Mu) / sig
	tmax := (r.Max - d.Mu) / sig
	return sig * sqrtPiOver2 * (math.Erf(tmax/sqrt2) - math.Erf(tmin/sqrt2))
}

func (d GaussDist) Bounds() (float64, float64) {
	sig := math.Abs(d.Sigma)
	return d.Mu - 6*sig, d.Mu + 6*sig
}
